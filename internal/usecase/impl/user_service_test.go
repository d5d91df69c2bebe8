package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"abuadfarms/internal/domain/entity"
	domainerrors "abuadfarms/internal/domain/errors"
	"abuadfarms/internal/domain/repository"
	"abuadfarms/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockUserRepository
	hasher       *mockPasswordHasher
	tokenService *mockTokenService
}

func createTestUserService(_ *testing.T) userServiceFixtures {
	userRepo := &mockUserRepository{}
	hasher := &mockPasswordHasher{}
	tokenService := &mockTokenService{}
	txManager := &fakeTransactionManager{factory: &fakeRepositoryFactory{userRepo: userRepo}}

	service := NewUserService(UserServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       discardLogger(),
	})

	return userServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.On("Hash", "s3cret").Return("hashed", nil)
	fx.userRepo.On("FindByEmail", ctx, "ada@example.com").Return(nil, repository.ErrUserNotFound)
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.User).ID = 7
	}).Return(nil)
	fx.tokenService.On("GenerateToken", mock.AnythingOfType("*entity.User")).Return("token-123", nil)

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Name:     "Ada Obi",
		Email:    "Ada@Example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)
	assert.Equal(t, "token-123", output.Token)
	assert.Equal(t, int64(7), output.User.ID)
	assert.Equal(t, "ada@example.com", output.User.Email)
	assert.Equal(t, "hashed", output.User.PasswordHash)
}

func TestUserService_Register_ForcesCustomerRole(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.On("Hash", mock.Anything).Return("hashed", nil)
	fx.userRepo.On("FindByEmail", ctx, mock.Anything).Return(nil, repository.ErrUserNotFound)
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	fx.tokenService.On("GenerateToken", mock.Anything).Return("t", nil)

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "pw",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCustomer, output.User.Role)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.On("Hash", mock.Anything).Return("hashed", nil)
	fx.userRepo.On("FindByEmail", ctx, "ada@example.com").
		Return(&entity.User{ID: 1, Email: "ada@example.com"}, nil)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "pw",
	})
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
	fx.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	stored := &entity.User{ID: 3, Email: "ada@example.com", PasswordHash: "hashed", Role: entity.RoleCustomer}
	fx.userRepo.On("FindByEmail", ctx, "ada@example.com").Return(stored, nil)
	fx.hasher.On("Check", "pw", "hashed").Return(true)
	fx.tokenService.On("GenerateToken", stored).Return("token-abc", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ada@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "token-abc", output.Token)
	assert.Equal(t, int64(3), output.User.ID)
}

func TestUserService_Login_UniformFailure(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	// Unknown email and wrong password must be indistinguishable.
	fx.userRepo.On("FindByEmail", ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)
	_, unknownEmailErr := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "pw"})
	assert.ErrorIs(t, unknownEmailErr, domainerrors.ErrInvalidCredentials)

	stored := &entity.User{ID: 3, Email: "ada@example.com", PasswordHash: "hashed"}
	fx.userRepo.On("FindByEmail", ctx, "ada@example.com").Return(stored, nil)
	fx.hasher.On("Check", "wrong", "hashed").Return(false)
	_, wrongPasswordErr := fx.service.Login(ctx, &usecase.LoginInput{Email: "ada@example.com", Password: "wrong"})
	assert.ErrorIs(t, wrongPasswordErr, domainerrors.ErrInvalidCredentials)

	fx.tokenService.AssertNotCalled(t, "GenerateToken", mock.Anything)
}

func TestUserService_UpdateUserRole(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	promoted := &entity.User{ID: 5, Role: entity.RoleAdmin}
	fx.userRepo.On("UpdateRole", ctx, int64(5), entity.RoleAdmin).Return(promoted, nil)

	user, err := fx.service.UpdateUserRole(ctx, &usecase.UpdateUserRoleInput{UserID: 5, Role: "Admin"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, user.Role)
}

func TestUserService_UpdateUserRole_InvalidRole(t *testing.T) {
	fx := createTestUserService(t)

	_, err := fx.service.UpdateUserRole(context.Background(), &usecase.UpdateUserRoleInput{UserID: 5, Role: "superuser"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRole)
	fx.userRepo.AssertNotCalled(t, "UpdateRole", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserService_UpdateUserRole_NotFound(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.On("UpdateRole", ctx, int64(404), entity.RoleAdmin).
		Return(nil, errors.Wrap(repository.ErrUserNotFound, "update"))

	_, err := fx.service.UpdateUserRole(ctx, &usecase.UpdateUserRoleInput{UserID: 404, Role: "admin"})
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
