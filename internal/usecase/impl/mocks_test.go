package impl

import (
	"context"

	"abuadfarms/internal/domain/entity"
	"abuadfarms/internal/domain/repository"
	"abuadfarms/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// Hand-rolled testify mocks for the repository and service interfaces the
// use cases depend on.

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepository) List(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]*entity.User)

	return users, args.Error(1)
}

func (m *mockUserRepository) UpdateRole(ctx context.Context, id int64, role entity.Role) (*entity.User, error) {
	args := m.Called(ctx, id, role)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

type mockProductRepository struct {
	mock.Mock
}

func (m *mockProductRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	args := m.Called(ctx, id)
	product, _ := args.Get(0).(*entity.Product)

	return product, args.Error(1)
}

func (m *mockProductRepository) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	args := m.Called(ctx, filter)
	products, _ := args.Get(0).([]*entity.Product)

	return products, args.Error(1)
}

func (m *mockProductRepository) ListFeatured(ctx context.Context, limit int) ([]*entity.Product, error) {
	args := m.Called(ctx, limit)
	products, _ := args.Get(0).([]*entity.Product)

	return products, args.Error(1)
}

func (m *mockProductRepository) Create(ctx context.Context, product *entity.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *mockProductRepository) Update(ctx context.Context, product *entity.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *mockProductRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockProductRepository) ListCategories(ctx context.Context) ([]*entity.CategoryCount, error) {
	args := m.Called(ctx)
	counts, _ := args.Get(0).([]*entity.CategoryCount)

	return counts, args.Error(1)
}

func (m *mockProductRepository) RenameCategory(ctx context.Context, oldName, newName string) (int64, error) {
	args := m.Called(ctx, oldName, newName)

	return args.Get(0).(int64), args.Error(1)
}

func (m *mockProductRepository) ClearCategory(ctx context.Context, category string) (int64, error) {
	args := m.Called(ctx, category)

	return args.Get(0).(int64), args.Error(1)
}

type mockOrderRepository struct {
	mock.Mock
}

func (m *mockOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *mockOrderRepository) ListWithItemCounts(ctx context.Context) ([]*entity.OrderSummary, error) {
	args := m.Called(ctx)
	summaries, _ := args.Get(0).([]*entity.OrderSummary)

	return summaries, args.Error(1)
}

func (m *mockOrderRepository) FindByNumber(ctx context.Context, orderNumber string, userID *int64) (*entity.Order, error) {
	args := m.Called(ctx, orderNumber, userID)
	order, _ := args.Get(0).(*entity.Order)

	return order, args.Error(1)
}

func (m *mockOrderRepository) UpdateStatus(ctx context.Context, id int64, status string) (*entity.Order, error) {
	args := m.Called(ctx, id, status)
	order, _ := args.Get(0).(*entity.Order)

	return order, args.Error(1)
}

type mockPasswordHasher struct {
	mock.Mock
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Check(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) GenerateToken(user *entity.User) (string, error) {
	args := m.Called(user)

	return args.String(0), args.Error(1)
}

func (m *mockTokenService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	claims, _ := args.Get(0).(*service.Claims)

	return claims, args.Error(1)
}

// fakeTransactionManager runs the callback directly against a factory built
// from the test's mocks; there is no real transaction.
type fakeTransactionManager struct {
	factory *fakeRepositoryFactory
}

type fakeRepositoryFactory struct {
	userRepo    *mockUserRepository
	productRepo *mockProductRepository
	orderRepo   *mockOrderRepository
}

func (f *fakeRepositoryFactory) NewUserRepository() repository.UserRepository {
	return f.userRepo
}

func (f *fakeRepositoryFactory) NewProductRepository() repository.ProductRepository {
	return f.productRepo
}

func (f *fakeRepositoryFactory) NewOrderRepository() repository.OrderRepository {
	return f.orderRepo
}

func (f *fakeTransactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(f.factory)
}
