package ledger

import (
	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"golang.org/x/crypto/blake2b"
)

// AddressSize размер адреса в байтах
const AddressSize = 32

// Address адрес счёта в леджере. Для кошелька пользователя совпадает с его ed25519 ключом.
type Address [AddressSize]byte

var ErrInvalidAddress = errors.New("invalid address")

// ParseAddress разбирает base58 представление адреса
func ParseAddress(s string) (Address, error) {
	var a Address
	raw, err := base58.Decode(s)
	if err != nil {
		return a, errors.Wrap(ErrInvalidAddress, err.Error())
	}
	if len(raw) != AddressSize {
		return a, errors.Wrapf(ErrInvalidAddress, "expected %d bytes, got %d", AddressSize, len(raw))
	}
	copy(a[:], raw)
	return a, nil
}

// AddressFromBytes копирует срез в адрес
func AddressFromBytes(raw []byte) (Address, error) {
	var a Address
	if len(raw) != AddressSize {
		return a, errors.Wrapf(ErrInvalidAddress, "expected %d bytes, got %d", AddressSize, len(raw))
	}
	copy(a[:], raw)
	return a, nil
}

func (a Address) String() string {
	return base58.Encode(a[:])
}

func (a Address) Bytes() []byte {
	return a[:]
}

// DeriveAddress детерминированно выводит адрес счёта программы из набора сидов.
// Один и тот же programID и сиды всегда дают один и тот же адрес.
func DeriveAddress(programID string, seeds ...[]byte) Address {
	h, _ := blake2b.New256(nil)
	h.Write([]byte(programID))
	for _, s := range seeds {
		// Длина перед сидом, чтобы ("ab","c") и ("a","bc") не совпадали
		h.Write([]byte{byte(len(s))})
		h.Write(s)
	}
	var a Address
	copy(a[:], h.Sum(nil))
	return a
}
