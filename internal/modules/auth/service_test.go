package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"glowsalon/internal/domain"
	jwtsvc "glowsalon/internal/pkg/jwt"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil && args.Error(0) == nil {
		u.ID = 42 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) Update(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func newTestService(users *MockUserRepo) *Service {
	return NewService(users, jwtsvc.New("test-secret", 15*time.Minute, 24*time.Hour), zap.NewNop())
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt failed: %v", err)
	}
	return string(hash)
}

func TestRegister_CreatesCustomerAndIssuesTokens(t *testing.T) {
	users := new(MockUserRepo)
	users.On("GetByEmail", mock.Anything, "new@mail.kz").Return(nil, gorm.ErrRecordNotFound)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)

	s := newTestService(users)

	res, err := s.Register(context.Background(), RegisterRequest{
		Email:     "New@Mail.kz",
		Password:  "password123",
		FirstName: "Asel",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.RoleCustomer, res.User.Role)
	assert.Equal(t, "new@mail.kz", res.User.Email)
	assert.Empty(t, res.User.PasswordHash)
	assert.NotEmpty(t, res.AccessToken)
	assert.NotEmpty(t, res.RefreshToken)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	users := new(MockUserRepo)
	users.On("GetByEmail", mock.Anything, "taken@mail.kz").
		Return(&domain.User{ID: 1, Email: "taken@mail.kz"}, nil)

	s := newTestService(users)

	_, err := s.Register(context.Background(), RegisterRequest{
		Email:     "taken@mail.kz",
		Password:  "password123",
		FirstName: "Asel",
	})
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestLogin_WrongPassword(t *testing.T) {
	users := new(MockUserRepo)
	users.On("GetByEmail", mock.Anything, "asel@mail.kz").
		Return(&domain.User{ID: 1, Email: "asel@mail.kz", PasswordHash: hashOf(t, "correct")}, nil)

	s := newTestService(users)

	_, err := s.Login(context.Background(), LoginRequest{Email: "asel@mail.kz", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	users := new(MockUserRepo)
	users.On("GetByEmail", mock.Anything, "ghost@mail.kz").Return(nil, gorm.ErrRecordNotFound)

	s := newTestService(users)

	_, err := s.Login(context.Background(), LoginRequest{Email: "ghost@mail.kz", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_BlockedUser(t *testing.T) {
	users := new(MockUserRepo)
	users.On("GetByEmail", mock.Anything, "blocked@mail.kz").
		Return(&domain.User{ID: 1, Email: "blocked@mail.kz", PasswordHash: hashOf(t, "password123"), IsBlocked: true}, nil)

	s := newTestService(users)

	_, err := s.Login(context.Background(), LoginRequest{Email: "blocked@mail.kz", Password: "password123"})
	assert.ErrorIs(t, err, ErrUserBlocked)
}

func TestLogin_Success(t *testing.T) {
	users := new(MockUserRepo)
	users.On("GetByEmail", mock.Anything, "asel@mail.kz").
		Return(&domain.User{ID: 7, Email: "asel@mail.kz", Role: domain.RoleCustomer, PasswordHash: hashOf(t, "password123")}, nil)

	s := newTestService(users)

	res, err := s.Login(context.Background(), LoginRequest{Email: "asel@mail.kz", Password: "password123"})
	assert.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
	assert.NotEmpty(t, res.RefreshToken)
}

func TestRefresh_RejectsAccessToken(t *testing.T) {
	users := new(MockUserRepo)
	j := jwtsvc.New("test-secret", 15*time.Minute, 24*time.Hour)
	s := NewService(users, j, zap.NewNop())

	access, err := j.GenerateAccessToken(7, string(domain.RoleCustomer))
	assert.NoError(t, err)

	_, err = s.Refresh(context.Background(), access)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefresh_IssuesNewPair(t *testing.T) {
	users := new(MockUserRepo)
	users.On("GetByID", mock.Anything, int64(7)).
		Return(&domain.User{ID: 7, Email: "asel@mail.kz", Role: domain.RoleCustomer}, nil)

	j := jwtsvc.New("test-secret", 15*time.Minute, 24*time.Hour)
	s := NewService(users, j, zap.NewNop())

	refresh, err := j.GenerateRefreshToken(7, string(domain.RoleCustomer))
	assert.NoError(t, err)

	res, err := s.Refresh(context.Background(), refresh)
	assert.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
}

func TestPasswordReset_SilentOnUnknownEmail(t *testing.T) {
	users := new(MockUserRepo)
	users.On("GetByEmail", mock.Anything, "ghost@mail.kz").Return(nil, gorm.ErrRecordNotFound)

	s := newTestService(users)

	err := s.RequestPasswordReset(context.Background(), PasswordResetRequest{Email: "ghost@mail.kz"})
	assert.NoError(t, err)
}

func TestPasswordReset_ConfirmSetsNewPassword(t *testing.T) {
	users := new(MockUserRepo)
	stored := &domain.User{ID: 7, Email: "asel@mail.kz", PasswordHash: hashOf(t, "old-password")}
	users.On("GetByID", mock.Anything, int64(7)).Return(stored, nil)
	users.On("Update", mock.Anything, stored).Return(nil)

	j := jwtsvc.New("test-secret", 15*time.Minute, 24*time.Hour)
	s := NewService(users, j, zap.NewNop())

	token, err := j.GeneratePasswordResetToken(7)
	assert.NoError(t, err)

	err = s.ConfirmPasswordReset(context.Background(), PasswordResetConfirmRequest{
		Token:       token,
		NewPassword: "brand-new-pass",
	})
	assert.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("brand-new-pass")))
}

func TestPasswordReset_ConfirmRejectsSessionToken(t *testing.T) {
	users := new(MockUserRepo)
	j := jwtsvc.New("test-secret", 15*time.Minute, 24*time.Hour)
	s := NewService(users, j, zap.NewNop())

	access, err := j.GenerateAccessToken(7, string(domain.RoleCustomer))
	assert.NoError(t, err)

	err = s.ConfirmPasswordReset(context.Background(), PasswordResetConfirmRequest{
		Token:       access,
		NewPassword: "brand-new-pass",
	})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestChangePassword_WrongCurrent(t *testing.T) {
	users := new(MockUserRepo)
	users.On("GetByID", mock.Anything, int64(7)).
		Return(&domain.User{ID: 7, PasswordHash: hashOf(t, "old-password")}, nil)

	s := newTestService(users)

	err := s.ChangePassword(context.Background(), 7, ChangePasswordRequest{
		CurrentPassword: "not-the-password",
		NewPassword:     "new-password-1",
	})
	assert.ErrorIs(t, err, ErrWrongPassword)
}
