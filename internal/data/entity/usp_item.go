package entity

// UspItem is a storefront benefits-bar entry; the icon name is resolved
// to an actual icon on the client.
type UspItem struct {
	Base
	Icon         string `db:"icon"`
	Title        string `db:"title"`
	Subtitle     string `db:"subtitle"`
	DisplayOrder int    `db:"display_order"`
}
