package repository

import (
	"github.com/Catalinvisual/AuraMarket/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User        UserRepository
	Category    CategoryRepository
	Product     ProductRepository
	Order       OrderRepository
	OrderItem   OrderItemRepository
	Address     AddressRepository
	Testimonial TestimonialRepository
	Usp         UspRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:        NewUserRepository(db, log),
		Category:    NewCategoryRepository(db, log),
		Product:     NewProductRepository(db, log),
		Order:       NewOrderRepository(db, log),
		OrderItem:   NewOrderItemRepository(db, log),
		Address:     NewAddressRepository(db, log),
		Testimonial: NewTestimonialRepository(db, log),
		Usp:         NewUspRepository(db, log),
	}
}
