package coin

type AirdropRequest struct {
	Amount uint64 `json:"amount"`
}

type BalanceResponse struct {
	Address string `json:"address"`
	Exists  bool   `json:"exists"`
	Balance Amount `json:"balance"`
}
