package request

type TestimonialRequest struct {
	Name     string  `json:"name" validate:"required,min=1,max=100"`
	Role     string  `json:"role"`
	Content  string  `json:"content" validate:"required"`
	Rating   int     `json:"rating" validate:"omitempty,min=1,max=5"`
	Avatar   string  `json:"avatar"`
	VideoURL *string `json:"videoUrl,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
}
