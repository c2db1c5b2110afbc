package response

import (
	"time"

	"github.com/Catalinvisual/AuraMarket/internal/data/entity"
)

type TestimonialResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Rating    int       `json:"rating"`
	Avatar    string    `json:"avatar"`
	VideoURL  *string   `json:"videoUrl,omitempty"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

func TestimonialToResponse(testimonial *entity.Testimonial) TestimonialResponse {
	return TestimonialResponse{
		ID:        testimonial.ID.String(),
		Name:      testimonial.Name,
		Role:      testimonial.Role,
		Content:   testimonial.Content,
		Rating:    testimonial.Rating,
		Avatar:    testimonial.Avatar,
		VideoURL:  testimonial.VideoURL,
		IsActive:  testimonial.IsActive,
		CreatedAt: testimonial.CreatedAt,
	}
}
