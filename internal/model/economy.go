package model

import "time"

// Значения по умолчанию экономики слотов
const (
	DefaultBetAmount              uint64 = 100000000
	DefaultHolderRewardPercentage uint8  = 10
	DefaultMinHolderBalance       uint64 = 1000000000
	DefaultPayoutInterval                = 24 * time.Hour
	DefaultReservedMinimum        uint64 = 967440
	DefaultInitialGeneratorState  uint64 = 967440
	DefaultMaxHolders                    = 100
)

// MegaPayoutMultiplier множитель ставки для максимального уровня
const MegaPayoutMultiplier uint64 = 2

// Пороги уровней по winDecider = generatorState % WinDeciderModulo
const (
	WinDeciderModulo uint64 = 20
	megaThreshold    uint64 = 17
	bigThreshold     uint64 = 14
	smallThreshold   uint64 = 8
)

// Economy параметры экономики
type Economy struct {
	BetAmount              uint64
	HolderRewardPercentage uint8
	MinHolderBalance       uint64
	PayoutInterval         time.Duration
	// ReservedMinimum депозит, который остаётся на каждом счёте программы
	ReservedMinimum       uint64
	InitialGeneratorState uint64
	MaxHolders            int
}

// DefaultEconomy экономика с константами по умолчанию
func DefaultEconomy() Economy {
	return Economy{
		BetAmount:              DefaultBetAmount,
		HolderRewardPercentage: DefaultHolderRewardPercentage,
		MinHolderBalance:       DefaultMinHolderBalance,
		PayoutInterval:         DefaultPayoutInterval,
		ReservedMinimum:        DefaultReservedMinimum,
		InitialGeneratorState:  DefaultInitialGeneratorState,
		MaxHolders:             DefaultMaxHolders,
	}
}

// ClassifyTier определяет уровень выигрыша по winDecider
func ClassifyTier(winDecider uint64) Tier {
	switch {
	case winDecider > megaThreshold:
		return TierMega
	case winDecider > bigThreshold:
		return TierBig
	case winDecider > smallThreshold:
		return TierSmall
	default:
		return TierNone
	}
}

// Payout выплата за уровень при ставке bet
func (t Tier) Payout(bet uint64) uint64 {
	switch t {
	case TierMega:
		return bet * MegaPayoutMultiplier
	case TierBig:
		return bet
	case TierSmall:
		return bet / 2
	default:
		return 0
	}
}

// HolderReward доля выигрыша в пул держателей.
// Считается через float64 с отбрасыванием дробной части.
func HolderReward(payout uint64, percentage uint8) uint64 {
	return uint64(float64(payout) * float64(percentage) / 100.0)
}
