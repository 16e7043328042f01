package player_repo

import (
	"testing"

	"slots_backend/internal/ledger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectAccountQueryLocksRow(t *testing.T) {
	var a ledger.Address
	a[0] = 7

	sqlStr, args, err := selectAccountQuery(a).ToSql()
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT owner, claimed_total, created_at FROM player_accounts WHERE address = $1 FOR UPDATE",
		sqlStr)
	assert.Equal(t, []interface{}{a.String()}, args)
}
