package env

import (
	"testing"
	"time"

	"slots_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEconomyConfigDefaults(t *testing.T) {
	cfg, err := ParseEconomyConfig([]byte("{}"))
	require.NoError(t, err)
	assert.Equal(t, "slots", cfg.ProgramID())
	assert.Equal(t, model.DefaultEconomy(), cfg.Economy())
}

func TestParseEconomyConfigOverrides(t *testing.T) {
	cfg, err := ParseEconomyConfig([]byte(`
program_id: slots-devnet
economy:
  bet_amount: 1000
  payout_interval: 1h
  max_holders: 3
`))
	require.NoError(t, err)
	assert.Equal(t, "slots-devnet", cfg.ProgramID())

	eco := cfg.Economy()
	assert.Equal(t, uint64(1000), eco.BetAmount)
	assert.Equal(t, time.Hour, eco.PayoutInterval)
	assert.Equal(t, 3, eco.MaxHolders)
	assert.Equal(t, model.DefaultReservedMinimum, eco.ReservedMinimum)
}

func TestParseEconomyConfigRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"zero bet":       "economy:\n  bet_amount: 0\n",
		"percentage":     "economy:\n  holder_reward_percentage: 101\n",
		"zero seed":      "economy:\n  initial_generator_state: 0\n",
		"bad interval":   "economy:\n  payout_interval: soon\n",
		"no holders":     "economy:\n  max_holders: 0\n",
		"negative hours": "economy:\n  payout_interval: -1h\n",
		"huge bet":       "economy:\n  bet_amount: 9223372036854775808\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseEconomyConfig([]byte(doc))
			assert.Error(t, err)
		})
	}
}
