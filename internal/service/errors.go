package service

import "github.com/pkg/errors"

// Ошибки операций, различимые для вызывающего
var (
	ErrNotInitialized         = errors.New("treasury is not initialized")
	ErrRegistryNotInitialized = errors.New("holder registry is not initialized")
	ErrAlreadyInitialized     = errors.New("account already initialized")
	ErrPlayerAccountNotFound  = errors.New("player account not found")

	ErrInsufficientStakeFunds = errors.New("insufficient funds to cover the stake")
	ErrTreasuryUnderfunded    = errors.New("treasury cannot cover the payout")
	ErrOverflow               = errors.New("arithmetic overflow")

	ErrInsufficientHolderBalance = errors.New("insufficient balance to register as holder")
	ErrRegistryFull              = errors.New("holder registry is full")
	ErrPayoutTooEarly            = errors.New("not enough time has passed since last payout")
	ErrNoRewardsToDistribute     = errors.New("no rewards available to distribute")
	ErrNoHoldersRegistered       = errors.New("no holders registered")
	ErrNotRegisteredHolder       = errors.New("signer is not a registered holder")

	ErrReserveViolated = errors.New("player account holds less than the reserved minimum")
	ErrInvalidAmount   = errors.New("amount must be positive")

	ErrInvalidSignature = errors.New("invalid signature")
	ErrStaleLogin       = errors.New("login message expired")
	ErrLoginReplayed    = errors.New("login message already used")
	ErrInvalidToken     = errors.New("invalid access token")
)
