package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-donation-wallet/internal/logger"
	"github.com/sbilibin2017/gw-donation-wallet/internal/models"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth.go -destination=auth_mock_test.go -package=services

// Error variables
var (
	ErrUserAlreadyExists  = fmt.Errorf("%w: email already registered", models.ErrConflict)
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// UserStore persists user accounts.
type UserStore interface {
	Create(ctx context.Context, user models.UserDB) error                  // ErrAlreadyExists on a taken email
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)  // ErrNotFound when absent
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) // ErrNotFound when absent
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, role string) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	users   UserStore
	wallets WalletStore
	tx      Transactor
	jwt     JWTGenerator
	now     func() time.Time
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(users UserStore, wallets WalletStore, tx Transactor, jwt JWTGenerator) *AuthService {
	return &AuthService{
		users:   users,
		wallets: wallets,
		tx:      tx,
		jwt:     jwt,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Register creates a user together with an empty wallet.
func (svc *AuthService) Register(ctx context.Context, name, email, password string) (models.UserDB, error) {
	return svc.create(ctx, name, email, password, models.RoleUser)
}

// EnsureAdmin creates the admin account on first start. An existing account is left untouched.
func (svc *AuthService) EnsureAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		logger.Log.Warnw("admin credentials not configured, skipping admin bootstrap")
		return nil
	}

	_, err := svc.users.GetByEmail(ctx, normalizeEmail(email))
	switch {
	case err == nil:
		return nil
	case !errors.Is(err, models.ErrNotFound):
		logger.Log.Errorw("failed to look up admin", "err", err)
		return err
	}

	if _, err := svc.create(ctx, "Administrator", email, password, models.RoleAdmin); err != nil && !errors.Is(err, ErrUserAlreadyExists) {
		return err
	}
	logger.Log.Infow("admin account ensured", "email", email)
	return nil
}

// Login authenticates a user and returns a JWT token.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := svc.users.GetByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, models.ErrNotFound) {
		logger.Log.Warnw("user does not exist", "email", email)
		return "", ErrInvalidCredentials
	}
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Warnw("invalid credentials", "email", email)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID, user.Role)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}

// GetUser returns the profile of a user.
func (svc *AuthService) GetUser(ctx context.Context, userID uuid.UUID) (models.UserDB, error) {
	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		logFailure("get user", err, "userID", userID)
		return models.UserDB{}, err
	}
	return *user, nil
}

func (svc *AuthService) create(ctx context.Context, name, email, password, role string) (models.UserDB, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	if name == "" {
		return models.UserDB{}, fmt.Errorf("%w: name is required", models.ErrValidation)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return models.UserDB{}, fmt.Errorf("%w: invalid email", models.ErrValidation)
	}
	if password == "" {
		return models.UserDB{}, fmt.Errorf("%w: password is required", models.ErrValidation)
	}

	_, err := svc.users.GetByEmail(ctx, email)
	if err == nil {
		logger.Log.Warnw("user already exists", "email", email)
		return models.UserDB{}, ErrUserAlreadyExists
	}
	if !errors.Is(err, models.ErrNotFound) {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return models.UserDB{}, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return models.UserDB{}, err
	}

	now := svc.now()
	user := models.UserDB{
		UserID:       uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = svc.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := svc.users.Create(ctx, user); err != nil {
			return err
		}
		return svc.wallets.Create(ctx, user.UserID)
	})
	if errors.Is(err, models.ErrAlreadyExists) {
		logger.Log.Warnw("user already exists", "email", email)
		return models.UserDB{}, ErrUserAlreadyExists
	}
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return models.UserDB{}, err
	}

	logger.Log.Infow("user registered", "userID", user.UserID, "role", role)
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
