package entity

type Testimonial struct {
	Base
	Name     string  `db:"name"`
	Role     string  `db:"role"`
	Content  string  `db:"content"`
	Rating   int     `db:"rating"` // 1-5
	Avatar   string  `db:"avatar"`
	VideoURL *string `db:"video_url"`
	IsActive bool    `db:"is_active"`
}
