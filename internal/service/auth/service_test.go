package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/seu-repo/solartech/internal/domain"
	"github.com/seu-repo/solartech/internal/mocks"
	"github.com/seu-repo/solartech/internal/ports"
	"github.com/seu-repo/solartech/pkg/config"
)

func newTestLogger() *zap.Logger {
	logger, _ := zap.NewDevelopment()
	return logger
}

// Token expiry is checked against the wall clock by the JWT library, so
// these tests run the fake clock at the current time.
func newTestService(users ports.UserRepository) ports.AuthService {
	return NewService(users, mocks.NewFakeClock(time.Now()), config.JWTConfig{
		Secret:               "test-secret",
		AccessTokenDuration:  15 * time.Minute,
		RefreshTokenDuration: 7 * 24 * time.Hour,
	}, newTestLogger())
}

func hashedUser(t *testing.T, password string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return &domain.User{
		ID:       "u1",
		Name:     "Solar Tech Ltda",
		Email:    "admin@solartech.example",
		Password: string(hash),
		Role:     domain.UserRoleCompany,
	}
}

func TestLogin_Success(t *testing.T) {
	ctx := context.Background()
	user := hashedUser(t, "s3cret")
	users := &mocks.MockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			return user, nil
		},
	}
	service := newTestService(users)

	access, refresh, err := service.Login(ctx, user.Email, "s3cret")

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if access == "" || refresh == "" {
		t.Fatal("expected both tokens")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	ctx := context.Background()
	user := hashedUser(t, "s3cret")
	users := &mocks.MockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			return user, nil
		},
	}
	service := newTestService(users)

	_, _, err := service.Login(ctx, user.Email, "wrong")

	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	ctx := context.Background()
	service := newTestService(&mocks.MockUserRepository{})

	_, _, err := service.Login(ctx, "nobody@example.com", "pw")

	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestDemoLogin_CreatesAccountOnce(t *testing.T) {
	// Arrange
	ctx := context.Background()
	store := map[string]*domain.User{}
	users := &mocks.MockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			return store[email], nil
		},
		SaveFunc: func(ctx context.Context, u *domain.User) error {
			store[u.Email] = u
			return nil
		},
	}
	service := newTestService(users)

	// Act
	token1, user1, err := service.DemoLogin(ctx, domain.UserRoleCompany, "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	_, user2, err := service.DemoLogin(ctx, domain.UserRoleCompany, "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// Assert
	if token1 == "" {
		t.Error("expected a token")
	}
	if user1.Name != "Solar Tech Ltda" {
		t.Errorf("expected demo company name, got %q", user1.Name)
	}
	if user1.ID != user2.ID {
		t.Error("expected the demo account to be reused")
	}
	if len(store) != 1 {
		t.Errorf("expected 1 stored account, got %d", len(store))
	}
}

func TestDemoLogin_RejectsUnknownRole(t *testing.T) {
	service := newTestService(&mocks.MockUserRepository{})

	_, _, err := service.DemoLogin(context.Background(), domain.UserRole("admin"), "x")

	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRegister_HashesPasswordAndRejectsDuplicates(t *testing.T) {
	ctx := context.Background()
	store := map[string]*domain.User{}
	users := &mocks.MockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			return store[email], nil
		},
		SaveFunc: func(ctx context.Context, u *domain.User) error {
			store[u.Email] = u
			return nil
		},
	}
	service := newTestService(users)

	user := &domain.User{Name: "N", Email: "n@example.com", Password: "plaintext"}
	if err := service.Register(ctx, user); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if user.Password == "plaintext" {
		t.Error("password must be hashed before storage")
	}
	if user.Role != domain.UserRoleCompany {
		t.Errorf("expected default role 'company', got '%s'", user.Role)
	}

	err := service.Register(ctx, &domain.User{Name: "N2", Email: "n@example.com", Password: "x"})
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestValidateToken_RoundTrip(t *testing.T) {
	ctx := context.Background()
	user := hashedUser(t, "s3cret")
	users := &mocks.MockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			return user, nil
		},
		FindByIDFunc: func(ctx context.Context, id string) (*domain.User, error) {
			if id == user.ID {
				return user, nil
			}
			return nil, nil
		},
	}
	service := newTestService(users)

	access, _, err := service.Login(ctx, user.Email, "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	got, err := service.ValidateToken(ctx, access)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("expected user %s, got %s", user.ID, got.ID)
	}
}

func TestRefreshToken_IssuesNewAccessToken(t *testing.T) {
	ctx := context.Background()
	user := hashedUser(t, "s3cret")
	users := &mocks.MockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			return user, nil
		},
		FindByIDFunc: func(ctx context.Context, id string) (*domain.User, error) {
			return user, nil
		},
	}
	service := newTestService(users)

	access, refresh, err := service.Login(ctx, user.Email, "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	newAccess, err := service.RefreshToken(ctx, refresh)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if newAccess == "" {
		t.Fatal("expected a new access token")
	}

	// Access tokens must not be accepted as refresh tokens.
	if _, err := service.RefreshToken(ctx, access); err == nil {
		t.Fatal("expected refresh with access token to fail")
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	service := newTestService(&mocks.MockUserRepository{})

	if _, err := service.ValidateToken(context.Background(), "not-a-token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}
