package request

import "github.com/Catalinvisual/AuraMarket/pkg/utils"

// PageRequest carries the page/limit query params shared by every list
// endpoint (products, orders, users).
type PageRequest struct {
	Page  int `json:"page" validate:"min=1"`
	Limit int `json:"limit" validate:"min=1,max=100"`
}

// Offset is computed from the clamped limit so that page windows stay
// contiguous even when the client sends a limit beyond the cap.
func (p PageRequest) Offset() int {
	return utils.CalculateOffset(p.Page, p.Take())
}

// Take clamps the page size to [1,100], defaulting to 10.
func (p PageRequest) Take() int {
	if p.Limit < 1 {
		return 10
	}
	if p.Limit > 100 {
		return 100
	}
	return p.Limit
}
