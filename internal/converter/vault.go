package converter

import (
	"strconv"
	"time"

	"slots_backend/internal/api/dto/vault"
	"slots_backend/internal/model"
)

func ToTreasuryResponse(st model.TreasuryState, payoutInterval time.Duration) vault.TreasuryResponse {
	t := st.Treasury
	return vault.TreasuryResponse{
		Address:        t.Address.String(),
		SpinCount:      t.SpinCount,
		GeneratorState: strconv.FormatUint(t.GeneratorState, 10),
		RewardPool:     ToAmount(t.RewardPoolBalance),
		Held:           ToAmount(st.Held),
		LastPayoutTime: t.LastPayoutTime.Unix(),
		NextPayoutTime: t.LastPayoutTime.Add(payoutInterval).Unix(),
	}
}

func ToPlayerVaultResponse(acc model.PlayerAccount) vault.PlayerVaultResponse {
	return vault.PlayerVaultResponse{
		Address:      acc.Address.String(),
		Owner:        acc.Owner.String(),
		ClaimedTotal: ToAmount(acc.ClaimedTotal),
		CreatedAt:    acc.CreatedAt.Unix(),
	}
}

func ToSpinResponse(res model.SpinResult) vault.SpinResponse {
	return vault.SpinResponse{
		ID:           res.ID.String(),
		SpinNumber:   res.SpinNumber,
		WinDecider:   res.WinDecider,
		Tier:         res.Tier.String(),
		Bet:          ToAmount(res.Bet),
		Payout:       ToAmount(res.Payout),
		HolderReward: ToAmount(res.HolderReward),
		Winnings:     ToAmount(res.UserWinnings),
		RewardPool:   ToAmount(res.RewardPool),
	}
}

func ToClaimResponse(res model.ClaimResult) vault.ClaimResponse {
	return vault.ClaimResponse{
		Claimed:      ToAmount(res.Claimed),
		ClaimedTotal: ToAmount(res.ClaimedTotal),
		Reserved:     ToAmount(res.Reserved),
	}
}

func ToPlayerStateResponse(st model.PlayerState) vault.PlayerStateResponse {
	return vault.PlayerStateResponse{
		Vault:     ToPlayerVaultResponse(st.Account),
		Held:      ToAmount(st.Held),
		Claimable: ToAmount(st.Claimable),
		Wallet:    ToAmount(st.WalletBalance),
	}
}
