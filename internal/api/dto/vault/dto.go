package vault

import "slots_backend/internal/api/dto/coin"

type DepositRequest struct {
	Amount uint64 `json:"amount"` // Сумма пополнения банкролла
}

type TreasuryResponse struct {
	Address        string      `json:"address"`
	SpinCount      uint16      `json:"spin_count"`
	GeneratorState string      `json:"generator_state"` // Десятичной строкой, u64 не влезает в JSON number
	RewardPool     coin.Amount `json:"reward_pool"`
	Held           coin.Amount `json:"held"`
	LastPayoutTime int64       `json:"last_payout_time"` // unix секунды
	NextPayoutTime int64       `json:"next_payout_time"`
}

type PlayerVaultResponse struct {
	Address      string      `json:"address"`
	Owner        string      `json:"owner"`
	ClaimedTotal coin.Amount `json:"claimed_total"`
	CreatedAt    int64       `json:"created_at"`
}

type SpinResponse struct {
	ID           string      `json:"id"`
	SpinNumber   uint16      `json:"spin_number"`
	WinDecider   uint64      `json:"win_decider"` // 0-19
	Tier         string      `json:"tier"`        // none, small, big, mega
	Bet          coin.Amount `json:"bet"`
	Payout       coin.Amount `json:"payout"`
	HolderReward coin.Amount `json:"holder_reward"`
	Winnings     coin.Amount `json:"winnings"`
	RewardPool   coin.Amount `json:"reward_pool"`
}

type ClaimResponse struct {
	Claimed      coin.Amount `json:"claimed"`
	ClaimedTotal coin.Amount `json:"claimed_total"`
	Reserved     coin.Amount `json:"reserved"`
}

type PlayerStateResponse struct {
	Vault     PlayerVaultResponse `json:"vault"`
	Held      coin.Amount         `json:"held"`
	Claimable coin.Amount         `json:"claimable"`
	Wallet    coin.Amount         `json:"wallet"`
}
