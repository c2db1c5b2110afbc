package response

import (
	"github.com/Catalinvisual/AuraMarket/internal/data/entity"
)

type UspResponse struct {
	ID           string `json:"id"`
	Icon         string `json:"icon"`
	Title        string `json:"title"`
	Subtitle     string `json:"subtitle"`
	DisplayOrder int    `json:"displayOrder"`
}

func UspToResponse(usp *entity.UspItem) UspResponse {
	return UspResponse{
		ID:           usp.ID.String(),
		Icon:         usp.Icon,
		Title:        usp.Title,
		Subtitle:     usp.Subtitle,
		DisplayOrder: usp.DisplayOrder,
	}
}
