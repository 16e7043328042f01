package converter

import (
	"slots_backend/internal/api/dto/holders"
	"slots_backend/internal/model"
)

func ToRegistryResponse(reg model.HolderRegistry) holders.RegistryResponse {
	list := make([]string, len(reg.Holders))
	for i, h := range reg.Holders {
		list[i] = h.String()
	}
	return holders.RegistryResponse{
		Address:     reg.Address.String(),
		Holders:     list,
		LastUpdated: reg.LastUpdated.Unix(),
	}
}

func ToDistributionResponse(res model.DistributionResult) holders.DistributionResponse {
	return holders.DistributionResponse{
		Holder:        res.Holder.String(),
		Share:         ToAmount(res.Share),
		HolderCount:   res.HolderCount,
		RemainingPool: ToAmount(res.RemainingPool),
		CycleClosed:   res.CycleClosed,
		PaidAt:        res.PaidAt.Unix(),
	}
}
