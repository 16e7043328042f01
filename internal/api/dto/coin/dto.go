package coin

// Amount сумма в базовых единицах и в целых монетах для отображения
type Amount struct {
	Base  uint64 `json:"base"`  // Базовые единицы
	Coins string `json:"coins"` // Десятичная запись в монетах
}
