package xorshift

// Multiplier множитель xorshift64*
const Multiplier uint64 = 0x2545F4914F6CDD1D

// Next выполняет один шаг xorshift64* и возвращает новое состояние.
// Чистая функция: одинаковое состояние всегда даёт одинаковый результат.
func Next(state uint64) uint64 {
	state ^= state >> 12
	state ^= state << 25
	state ^= state >> 27
	// Умножение по модулю 2^64
	return state * Multiplier
}

// Sequence возвращает n последовательных состояний начиная с state
func Sequence(state uint64, n int) []uint64 {
	out := make([]uint64, 0, n)
	for i := 0; i < n; i++ {
		state = Next(state)
		out = append(out, state)
	}
	return out
}
