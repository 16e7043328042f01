package converter

import (
	"math/big"

	"slots_backend/internal/api/dto/coin"

	"github.com/shopspring/decimal"
)

// CoinDecimals число знаков базовой единицы в монете
const CoinDecimals = 9

func ToAmount(base uint64) coin.Amount {
	d := decimal.NewFromBigInt(new(big.Int).SetUint64(base), -CoinDecimals)
	return coin.Amount{
		Base:  base,
		Coins: d.String(),
	}
}
