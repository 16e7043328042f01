package model

import (
	"time"

	"slots_backend/internal/ledger"
)

// Treasury казна: банкролл, счётчик спинов, состояние генератора и пул наград держателей
type Treasury struct {
	Address ledger.Address
	// SpinCount переполняется по кругу, это не ошибка
	SpinCount uint16
	// GeneratorState состояние xorshift64*
	GeneratorState uint64
	// RewardPoolBalance часть баланса казны, принадлежащая держателям
	RewardPoolBalance uint64
	LastPayoutTime    time.Time
}

// PlayerAccount счёт накопленных выигрышей игрока
type PlayerAccount struct {
	Address ledger.Address
	Owner   ledger.Address
	// ClaimedTotal сколько всего выведено за всё время
	ClaimedTotal uint64
	CreatedAt    time.Time
}

// HolderRegistry реестр держателей, порядок вставки сохраняется
type HolderRegistry struct {
	Address     ledger.Address
	Holders     []ledger.Address
	LastUpdated time.Time
}

// Contains проверяет членство в реестре
func (r *HolderRegistry) Contains(addr ledger.Address) bool {
	for _, h := range r.Holders {
		if h == addr {
			return true
		}
	}
	return false
}

// Clone возвращает копию с собственным срезом держателей
func (r HolderRegistry) Clone() HolderRegistry {
	holders := make([]ledger.Address, len(r.Holders))
	copy(holders, r.Holders)
	r.Holders = holders
	return r
}
