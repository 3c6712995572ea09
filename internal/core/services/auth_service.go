package services

import (
	"context"
	"log"

	"vesselhub/internal/adapters/persistence/repositories"
	"vesselhub/internal/config"
	"vesselhub/internal/core/domain"
	"vesselhub/internal/pkg/jwt"
	"vesselhub/internal/pkg/password"
)

// AuthService handles authentication business logic
type AuthService struct {
	userRepo repositories.UserRepository
	cfg      *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repositories.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// RegisterInput represents registration input
type RegisterInput struct {
	Email     string      `json:"email" validate:"required,email"`
	Password  string      `json:"password" validate:"required,min=8"`
	FirstName string      `json:"first_name"`
	Surname   string      `json:"surname"`
	Role      domain.Role `json:"role" validate:"omitempty,oneof=admin captain crew manager"`
}

// AuthResponse represents a successful login
type AuthResponse struct {
	AccessToken string              `json:"access_token"`
	TokenType   string              `json:"token_type"`
	User        *domain.UserSummary `json:"user"`
}

// Register registers a new user. Returns domain.ErrEmailTaken when the
// email is already registered.
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*domain.User, error) {
	exists, err := s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailTaken
	}

	hashed, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = domain.RoleCrew
	}

	user, err := s.userRepo.Create(ctx, domain.User{
		Email:          input.Email,
		HashedPassword: hashed,
		FirstName:      input.FirstName,
		Surname:        input.Surname,
		Role:           role,
		IsActive:       true,
	})
	if err != nil {
		return nil, err
	}

	log.Printf("User registered: %s (id=%d)", user.Email, user.ID)
	return user, nil
}

// Login authenticates a user by email and password. An unknown email
// and a wrong password return the same failure, so callers cannot
// probe which emails are registered.
func (s *AuthService) Login(ctx context.Context, email, plaintext string) (*AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if !password.Verify(plaintext, user.HashedPassword) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := jwt.GenerateAccessToken(
		user.ID,
		user.Email,
		string(user.Role),
		s.cfg.JWT.Secret,
		s.cfg.JWT.AccessTokenMins,
	)
	if err != nil {
		return nil, err
	}

	log.Printf("User logged in: %s", user.Email)

	return &AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user.Summary(),
	}, nil
}

// ResolveCaller maps a bearer token to the user it asserts. Malformed,
// unsigned and expired tokens, and subjects that no longer resolve to
// a user, all surface as an unauthorized failure.
func (s *AuthService) ResolveCaller(ctx context.Context, token string) (*domain.User, error) {
	claims, err := jwt.ValidateAccessToken(token, s.cfg.JWT.Secret)
	if err != nil {
		if err == jwt.ErrTokenExpired {
			return nil, err
		}
		return nil, domain.ErrUnauthorized
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, domain.ErrUnknownSubject
	}
	return user, nil
}

// RequireRole returns nil when the user's role is one of the allowed
// roles, domain.ErrForbidden otherwise. Pure predicate, no I/O.
func (s *AuthService) RequireRole(user *domain.User, allowed ...domain.Role) error {
	for _, role := range allowed {
		if user.Role == role {
			return nil
		}
	}
	return domain.ErrForbidden
}
