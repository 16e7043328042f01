package ledger

import (
	"context"

	"github.com/pkg/errors"
)

// Сиды счетов программы
const (
	TreasurySeed       = "treasury"
	PlayerAccountSeed  = "uvault"
	HolderRegistrySeed = "holders"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrAccountExists     = errors.New("account already exists")
	ErrAccountNotFound   = errors.New("account not found")
	ErrSameAccount       = errors.New("transfer to the same account")
)

// Ledger подложка хранения стоимости: счета, их балансы и переводы между ними.
// Все методы выполняются в транзакции из контекста, если она есть.
type Ledger interface {
	// CreateAccount создаёт счёт addr, переводя на него deposit со счёта payer.
	// deposit остаётся неснимаемым минимумом счёта.
	CreateAccount(ctx context.Context, payer, addr Address, deposit uint64) error
	Exists(ctx context.Context, addr Address) (bool, error)
	// Balance возвращает баланс счёта. Несуществующий счёт имеет баланс 0.
	Balance(ctx context.Context, addr Address) (uint64, error)
	// LockBalance как Balance, но блокирует счёт до конца транзакции
	LockBalance(ctx context.Context, addr Address) (uint64, error)
	// Transfer переводит amount. Нулевая сумма ничего не делает.
	// Перевод, после которого баланс from опустился бы ниже его минимума, отклоняется с ErrInsufficientFunds.
	Transfer(ctx context.Context, from, to Address, amount uint64) error
	// Credit зачисляет внешние средства на кошелёк, создавая его при необходимости
	Credit(ctx context.Context, addr Address, amount uint64) error
}

// Program выводит адреса счетов одной программы
type Program struct {
	ID string
}

func NewProgram(id string) Program {
	return Program{ID: id}
}

func (p Program) Treasury() Address {
	return DeriveAddress(p.ID, []byte(TreasurySeed))
}

func (p Program) HolderRegistry() Address {
	return DeriveAddress(p.ID, []byte(HolderRegistrySeed))
}

// PlayerAccount адрес счёта выигрышей игрока
func (p Program) PlayerAccount(owner Address) Address {
	return DeriveAddress(p.ID, []byte(PlayerAccountSeed), owner.Bytes())
}
