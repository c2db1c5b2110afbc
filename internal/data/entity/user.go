package entity

type UserRole string

const (
	RoleAdmin    UserRole = "ADMIN"
	RoleCustomer UserRole = "CUSTOMER"
)

type User struct {
	Base
	Email        string   `db:"email"`
	Name         string   `db:"name"`
	PasswordHash string   `db:"password"`
	Role         UserRole `db:"role"`
}
