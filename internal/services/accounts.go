package services

import (
	"context"
	"github.com/maxaizer/careerboost/internal/apperrors"
	"github.com/maxaizer/careerboost/internal/entities"
	"github.com/maxaizer/careerboost/internal/logger"
	"github.com/maxaizer/careerboost/internal/repositories"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"strings"
)

type userRepository interface {
	Add(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uint) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
}

type tokenIssuer interface {
	Issue(userID uint) (string, error)
	Parse(token string) (uint, error)
}

type RegisterInput struct {
	Username string `json:"username" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Role     string `json:"role"`
}

type AuthResult struct {
	Token string         `json:"token"`
	User  *entities.User `json:"user"`
}

type Accounts struct {
	users  userRepository
	tokens tokenIssuer
}

func NewAccounts(users userRepository, tokens tokenIssuer) *Accounts {
	return &Accounts{users: users, tokens: tokens}
}

// Register creates a candidate or recruiter account. Admins are provisioned with CreateAdmin.
func (s *Accounts) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	role := entities.RoleCandidate
	if input.Role != "" {
		parsed, err := entities.ToRole(input.Role)
		if err != nil || parsed == entities.RoleAdmin {
			return nil, apperrors.InvalidInput("role must be candidate or recruiter")
		}
		role = parsed
	}

	user, err := s.create(ctx, input, role)
	if err != nil {
		return nil, err
	}
	return s.authResult(user)
}

func (s *Accounts) CreateAdmin(ctx context.Context, username, email, password string) (*entities.User, error) {
	return s.create(ctx, RegisterInput{Username: username, Email: email, Password: password}, entities.RoleAdmin)
}

func (s *Accounts) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, errors.Wrap(err, "load user")
	}
	if user == nil {
		return nil, apperrors.Unauthorized("invalid credentials")
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.Unauthorized("invalid credentials")
	}
	return s.authResult(user)
}

func (s *Accounts) Me(ctx context.Context, caller entities.Caller) (*entities.User, error) {
	user, err := s.users.GetByID(ctx, caller.ID)
	if err != nil {
		return nil, errors.Wrap(err, "load user")
	}
	if user == nil {
		return nil, apperrors.NotFound("user not found")
	}
	return user, nil
}

// Authenticate resolves a bearer token to the caller identity.
func (s *Accounts) Authenticate(ctx context.Context, token string) (entities.Caller, error) {
	if token == "" {
		return entities.Caller{}, apperrors.Unauthorized("missing token")
	}

	id, err := s.tokens.Parse(token)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeAuth).Debugf("token rejected: %v", err)
		return entities.Caller{}, apperrors.Unauthorized("invalid token")
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return entities.Caller{}, errors.Wrap(err, "load user")
	}
	if user == nil {
		return entities.Caller{}, apperrors.Unauthorized("user not found")
	}
	return entities.Caller{ID: user.ID, Role: user.Role}, nil
}

func (s *Accounts) create(ctx context.Context, input RegisterInput, role entities.Role) (*entities.User, error) {
	input.Username = strings.TrimSpace(input.Username)
	input.Email = normalizeEmail(input.Email)
	if err := validateInput(input); err != nil {
		return nil, err
	}

	existing, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, errors.Wrap(err, "check existing user")
	}
	if existing != nil {
		return nil, apperrors.Conflict("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Wrap(err, "hash password")
	}

	user := &entities.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err = s.users.Add(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, apperrors.Conflict("email already registered")
		}
		return nil, errors.Wrap(err, "add user")
	}
	log.Infof("user %d registered with role %s", user.ID, user.Role)
	return user, nil
}

func (s *Accounts) authResult(user *entities.User) (*AuthResult, error) {
	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "issue token")
	}
	return &AuthResult{Token: token, User: user}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
