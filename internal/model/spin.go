package model

import (
	"time"

	"slots_backend/internal/ledger"

	"github.com/google/uuid"
)

// Tier уровень выигрыша спина
type Tier int

const (
	TierNone Tier = iota
	TierSmall
	TierBig
	TierMega
)

func (t Tier) String() string {
	switch t {
	case TierSmall:
		return "small"
	case TierBig:
		return "big"
	case TierMega:
		return "mega"
	default:
		return "none"
	}
}

// SpinResult результат одного спина
type SpinResult struct {
	ID           uuid.UUID
	SpinNumber   uint16
	WinDecider   uint64
	Tier         Tier
	Bet          uint64
	Payout       uint64
	HolderReward uint64
	UserWinnings uint64
	// RewardPool баланс пула после спина
	RewardPool uint64
}

// DistributionResult результат выплаты доли держателю
type DistributionResult struct {
	Holder        ledger.Address
	Share         uint64
	HolderCount   int
	RemainingPool uint64
	// CycleClosed пул опустел и таймер выплат перезапущен
	CycleClosed bool
	PaidAt      time.Time
}

// ClaimResult результат вывода выигрышей
type ClaimResult struct {
	Claimed      uint64
	ClaimedTotal uint64
	Reserved     uint64
}

// PlayerState состояние счёта игрока для чтения
type PlayerState struct {
	Account       PlayerAccount
	Held          uint64
	Claimable     uint64
	WalletBalance uint64
}

// TreasuryState состояние казны для чтения
type TreasuryState struct {
	Treasury Treasury
	Held     uint64
}
