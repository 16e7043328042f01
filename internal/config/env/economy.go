package env

import (
	"fmt"
	"os"
	"time"

	"slots_backend/internal/config"
	"slots_backend/internal/model"
	"slots_backend/pkg/safemath"

	"gopkg.in/yaml.v3"
)

const defaultProgramID = "slots"

// Структура файла config.yaml
type economyFile struct {
	ProgramID string `yaml:"program_id"`
	Economy   struct {
		BetAmount              *uint64 `yaml:"bet_amount"`
		HolderRewardPercentage *uint8  `yaml:"holder_reward_percentage"`
		MinHolderBalance       *uint64 `yaml:"min_holder_balance"`
		PayoutInterval         *string `yaml:"payout_interval"`
		ReservedMinimum        *uint64 `yaml:"reserved_minimum"`
		InitialGeneratorState  *uint64 `yaml:"initial_generator_state"`
		MaxHolders             *int    `yaml:"max_holders"`
	} `yaml:"economy"`
}

type economyConfig struct {
	programID string
	economy   model.Economy
}

// NewEconomyConfigFromYAML читает параметры экономики из yaml.
// Незаданные поля берутся из значений по умолчанию.
func NewEconomyConfigFromYAML(path string) (config.EconomyConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read economy config: %w", err)
	}
	return ParseEconomyConfig(data)
}

// ParseEconomyConfig разбирает yaml с параметрами экономики
func ParseEconomyConfig(data []byte) (config.EconomyConfig, error) {
	var f economyFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse economy config: %w", err)
	}

	eco := model.DefaultEconomy()
	if f.Economy.BetAmount != nil {
		eco.BetAmount = *f.Economy.BetAmount
	}
	if f.Economy.HolderRewardPercentage != nil {
		eco.HolderRewardPercentage = *f.Economy.HolderRewardPercentage
	}
	if f.Economy.MinHolderBalance != nil {
		eco.MinHolderBalance = *f.Economy.MinHolderBalance
	}
	if f.Economy.PayoutInterval != nil {
		d, err := time.ParseDuration(*f.Economy.PayoutInterval)
		if err != nil {
			return nil, fmt.Errorf("invalid payout interval: %w", err)
		}
		eco.PayoutInterval = d
	}
	if f.Economy.ReservedMinimum != nil {
		eco.ReservedMinimum = *f.Economy.ReservedMinimum
	}
	if f.Economy.InitialGeneratorState != nil {
		eco.InitialGeneratorState = *f.Economy.InitialGeneratorState
	}
	if f.Economy.MaxHolders != nil {
		eco.MaxHolders = *f.Economy.MaxHolders
	}

	if err := validateEconomy(eco); err != nil {
		return nil, err
	}

	programID := f.ProgramID
	if programID == "" {
		programID = defaultProgramID
	}

	return &economyConfig{programID: programID, economy: eco}, nil
}

func validateEconomy(eco model.Economy) error {
	if eco.BetAmount == 0 {
		return fmt.Errorf("bet amount must be positive")
	}
	// Выплата максимального уровня должна помещаться в u64
	if _, err := safemath.Mul(eco.BetAmount, model.MegaPayoutMultiplier); err != nil {
		return fmt.Errorf("bet amount %d overflows the mega payout", eco.BetAmount)
	}
	if eco.HolderRewardPercentage > 100 {
		return fmt.Errorf("holder reward percentage must be within 0..100")
	}
	if eco.PayoutInterval < 0 {
		return fmt.Errorf("payout interval must not be negative")
	}
	// xorshift с нулевым состоянием навсегда остаётся в нуле
	if eco.InitialGeneratorState == 0 {
		return fmt.Errorf("initial generator state must be non-zero")
	}
	if eco.MaxHolders <= 0 {
		return fmt.Errorf("max holders must be positive")
	}
	return nil
}

func (c *economyConfig) ProgramID() string {
	return c.programID
}

func (c *economyConfig) Economy() model.Economy {
	return c.economy
}
