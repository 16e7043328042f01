package holders

import "slots_backend/internal/api/dto/coin"

type RegistryResponse struct {
	Address     string   `json:"address"`
	Holders     []string `json:"holders"`
	LastUpdated int64    `json:"last_updated"`
}

type DistributionResponse struct {
	Holder        string      `json:"holder"`
	Share         coin.Amount `json:"share"`
	HolderCount   int         `json:"holder_count"`
	RemainingPool coin.Amount `json:"remaining_pool"`
	CycleClosed   bool        `json:"cycle_closed"`
	PaidAt        int64       `json:"paid_at"`
}
