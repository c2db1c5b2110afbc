package usecase

import (
	"context"
	"strings"

	"github.com/Catalinvisual/AuraMarket/internal/data/entity"
	"github.com/Catalinvisual/AuraMarket/internal/data/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// In-memory repository fakes. Slices keep insertion order; listings that
// sort by created_at DESC in SQL iterate from the end here.

type fakeUserRepo struct {
	users       []*entity.User
	orderCounts map[uuid.UUID]int64
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindAll(ctx context.Context, search string, limit, offset int) ([]*repository.UserWithOrderCount, error) {
	var matched []*repository.UserWithOrderCount
	for _, u := range f.users {
		if !matchesSearch(search, u.Name, u.Email) {
			continue
		}
		matched = append(matched, &repository.UserWithOrderCount{
			User:       *u,
			OrderCount: f.orderCounts[u.ID],
		})
	}
	return paginate(matched, limit, offset), nil
}

func (f *fakeUserRepo) CountAll(ctx context.Context, search string) (int64, error) {
	var count int64
	for _, u := range f.users {
		if matchesSearch(search, u.Name, u.Email) {
			count++
		}
	}
	return count, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	for i, u := range f.users {
		if u.ID == user.ID {
			f.users[i] = user
			return nil
		}
	}
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, u := range f.users {
		if u.ID == id {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeCategoryRepo struct {
	categories []*entity.Category
}

func (f *fakeCategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	f.categories = append(f.categories, category)
	return nil
}

func (f *fakeCategoryRepo) CreateBatch(ctx context.Context, categories []*entity.Category) error {
	f.categories = append(f.categories, categories...)
	return nil
}

func (f *fakeCategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	for _, c := range f.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) FindAll(ctx context.Context) ([]*entity.Category, error) {
	return f.categories, nil
}

func (f *fakeCategoryRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(f.categories)), nil
}

type fakeProductRepo struct {
	products []*entity.Product
}

func (f *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	f.products = append(f.products, product)
	return nil
}

func (f *fakeProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) matches(filter repository.ProductFilter, p *entity.Product) bool {
	if !matchesSearch(filter.Search, p.Name, p.Description) {
		return false
	}
	if filter.CategoryID != nil && p.CategoryID != *filter.CategoryID {
		return false
	}
	if filter.Featured && !p.IsFeatured {
		return false
	}
	return true
}

func (f *fakeProductRepo) FindAll(ctx context.Context, filter repository.ProductFilter, limit, offset int) ([]*entity.Product, error) {
	var matched []*entity.Product
	for i := len(f.products) - 1; i >= 0; i-- {
		if f.matches(filter, f.products[i]) {
			matched = append(matched, f.products[i])
		}
	}
	return paginate(matched, limit, offset), nil
}

func (f *fakeProductRepo) CountAll(ctx context.Context, filter repository.ProductFilter) (int64, error) {
	var count int64
	for _, p := range f.products {
		if f.matches(filter, p) {
			count++
		}
	}
	return count, nil
}

func (f *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error {
	for i, p := range f.products {
		if p.ID == product.ID {
			f.products[i] = product
			return nil
		}
	}
	return nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, p := range f.products {
		if p.ID == id {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeOrderItemRepo struct {
	items []*entity.OrderItem
}

func (f *fakeOrderItemRepo) FindByOrderID(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderItem, error) {
	var matched []*entity.OrderItem
	for _, item := range f.items {
		if item.OrderID == orderID {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

func (f *fakeOrderItemRepo) DeleteByOrderID(ctx context.Context, orderID uuid.UUID) error {
	var kept []*entity.OrderItem
	for _, item := range f.items {
		if item.OrderID != orderID {
			kept = append(kept, item)
		}
	}
	f.items = kept
	return nil
}

type fakeOrderRepo struct {
	orders []*entity.Order
	items  *fakeOrderItemRepo
	users  *fakeUserRepo
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *entity.Order, items []*entity.OrderItem) error {
	f.orders = append(f.orders, order)
	f.items.items = append(f.items.items, items...)
	return nil
}

func (f *fakeOrderRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	for _, o := range f.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, nil
}

func (f *fakeOrderRepo) matches(ctx context.Context, filter repository.OrderFilter, o *entity.Order) bool {
	if filter.Status != nil && o.Status != *filter.Status {
		return false
	}
	if filter.UserID != nil && o.UserID != *filter.UserID {
		return false
	}
	if filter.Search != "" {
		user, _ := f.users.FindByID(ctx, o.UserID)
		name := ""
		if user != nil {
			name = user.Name
		}
		if !matchesSearch(filter.Search, o.ID.String(), name) {
			return false
		}
	}
	return true
}

func (f *fakeOrderRepo) FindAll(ctx context.Context, filter repository.OrderFilter, limit, offset int) ([]*entity.Order, error) {
	var matched []*entity.Order
	for i := len(f.orders) - 1; i >= 0; i-- {
		if f.matches(ctx, filter, f.orders[i]) {
			matched = append(matched, f.orders[i])
		}
	}
	return paginate(matched, limit, offset), nil
}

func (f *fakeOrderRepo) CountAll(ctx context.Context, filter repository.OrderFilter) (int64, error) {
	var count int64
	for _, o := range f.orders {
		if f.matches(ctx, filter, o) {
			count++
		}
	}
	return count, nil
}

func (f *fakeOrderRepo) FindRecent(ctx context.Context, limit int) ([]*entity.Order, error) {
	var recent []*entity.Order
	for i := len(f.orders) - 1; i >= 0 && len(recent) < limit; i-- {
		recent = append(recent, f.orders[i])
	}
	return recent, nil
}

func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	for _, o := range f.orders {
		if o.ID == id {
			o.Status = status
			return nil
		}
	}
	return nil
}

func (f *fakeOrderRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, o := range f.orders {
		if o.ID == id {
			f.orders = append(f.orders[:i], f.orders[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeOrderRepo) SumTotalByStatus(ctx context.Context, status entity.OrderStatus) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, o := range f.orders {
		if o.Status == status {
			sum = sum.Add(o.Total)
		}
	}
	return sum, nil
}

type fakeAddressRepo struct {
	addresses []*entity.Address
}

func (f *fakeAddressRepo) Create(ctx context.Context, address *entity.Address) error {
	f.addresses = append(f.addresses, address)
	return nil
}

type fakeTestimonialRepo struct {
	testimonials []*entity.Testimonial
}

func (f *fakeTestimonialRepo) Create(ctx context.Context, testimonial *entity.Testimonial) error {
	f.testimonials = append(f.testimonials, testimonial)
	return nil
}

func (f *fakeTestimonialRepo) CreateBatch(ctx context.Context, testimonials []*entity.Testimonial) error {
	f.testimonials = append(f.testimonials, testimonials...)
	return nil
}

func (f *fakeTestimonialRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Testimonial, error) {
	for _, t := range f.testimonials {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}

func (f *fakeTestimonialRepo) FindAll(ctx context.Context, activeOnly bool) ([]*entity.Testimonial, error) {
	var matched []*entity.Testimonial
	for i := len(f.testimonials) - 1; i >= 0; i-- {
		if activeOnly && !f.testimonials[i].IsActive {
			continue
		}
		matched = append(matched, f.testimonials[i])
	}
	return matched, nil
}

func (f *fakeTestimonialRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(f.testimonials)), nil
}

func (f *fakeTestimonialRepo) Update(ctx context.Context, testimonial *entity.Testimonial) error {
	for i, t := range f.testimonials {
		if t.ID == testimonial.ID {
			f.testimonials[i] = testimonial
			return nil
		}
	}
	return nil
}

func (f *fakeTestimonialRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, t := range f.testimonials {
		if t.ID == id {
			f.testimonials = append(f.testimonials[:i], f.testimonials[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeUspRepo struct {
	usps []*entity.UspItem
}

func (f *fakeUspRepo) Create(ctx context.Context, usp *entity.UspItem) error {
	f.usps = append(f.usps, usp)
	return nil
}

func (f *fakeUspRepo) CreateBatch(ctx context.Context, usps []*entity.UspItem) error {
	f.usps = append(f.usps, usps...)
	return nil
}

func (f *fakeUspRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.UspItem, error) {
	for _, u := range f.usps {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUspRepo) FindAll(ctx context.Context) ([]*entity.UspItem, error) {
	sorted := make([]*entity.UspItem, len(f.usps))
	copy(sorted, f.usps)
	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			if sorted[j].DisplayOrder < sorted[i].DisplayOrder {
				sorted[i], sorted[j] = sorted[j], sorted[i]
			}
		}
	}
	return sorted, nil
}

func (f *fakeUspRepo) Update(ctx context.Context, usp *entity.UspItem) error {
	for i, u := range f.usps {
		if u.ID == usp.ID {
			f.usps[i] = usp
			return nil
		}
	}
	return nil
}

func (f *fakeUspRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, u := range f.usps {
		if u.ID == id {
			f.usps = append(f.usps[:i], f.usps[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeRepos struct {
	users        *fakeUserRepo
	categories   *fakeCategoryRepo
	products     *fakeProductRepo
	orders       *fakeOrderRepo
	orderItems   *fakeOrderItemRepo
	addresses    *fakeAddressRepo
	testimonials *fakeTestimonialRepo
	usps         *fakeUspRepo
	repo         *repository.Repository
}

func newFakeRepos() *fakeRepos {
	users := &fakeUserRepo{orderCounts: make(map[uuid.UUID]int64)}
	categories := &fakeCategoryRepo{}
	products := &fakeProductRepo{}
	orderItems := &fakeOrderItemRepo{}
	orders := &fakeOrderRepo{items: orderItems, users: users}
	addresses := &fakeAddressRepo{}
	testimonials := &fakeTestimonialRepo{}
	usps := &fakeUspRepo{}

	return &fakeRepos{
		users:        users,
		categories:   categories,
		products:     products,
		orders:       orders,
		orderItems:   orderItems,
		addresses:    addresses,
		testimonials: testimonials,
		usps:         usps,
		repo: &repository.Repository{
			User:        users,
			Category:    categories,
			Product:     products,
			Order:       orders,
			OrderItem:   orderItems,
			Address:     addresses,
			Testimonial: testimonials,
			Usp:         usps,
		},
	}
}

func matchesSearch(search string, fields ...string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
