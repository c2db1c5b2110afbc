package request

type UspRequest struct {
	Icon         string `json:"icon" validate:"required,min=1,max=50"`
	Title        string `json:"title" validate:"required,min=1,max=100"`
	Subtitle     string `json:"subtitle"`
	DisplayOrder int    `json:"displayOrder"`
}
