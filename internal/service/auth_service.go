package service

import (
	"context"
	"errors"
	"time"

	"rebowork/internal/config"
	"rebowork/internal/dto"
	"rebowork/internal/model"
	"rebowork/internal/repository"
	"rebowork/internal/token"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error)
	// Lookup returns the live account behind a token. The access gate uses
	// it to reject tokens of deleted accounts.
	Lookup(ctx context.Context, username string) (*model.User, error)

	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error)
	ListUsers(ctx context.Context) ([]dto.UserResponse, error)
	GetUser(ctx context.Context, username string) (*dto.UserResponse, error)
	UpdateUser(ctx context.Context, username string, req dto.UpdateUserRequest) (*dto.UserResponse, error)
	DeleteUser(ctx context.Context, username string) error
}

type authService struct {
	repo   repository.UserRepository
	tokens *token.Manager
	cfg    *config.Config
	clock  Clock
	cost   int
}

func NewAuthService(repo repository.UserRepository, tokens *token.Manager, cfg *config.Config, clock Clock) AuthService {
	return &authService{repo: repo, tokens: tokens, cfg: cfg, clock: clock, cost: bcryptCost}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.repo.FindByUsername(ctx, req.Username)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		log.Info().Str("username", req.Username).Msg("login rejected: wrong password")
		return nil, ErrInvalidCredentials
	}
	return s.issuePair(user)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error) {
	claims, err := s.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		return nil, ErrInvalidRefresh
	}

	user, err := s.repo.FindByUsername(ctx, claims.Username)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidRefresh
	}
	if err != nil {
		return nil, err
	}
	return s.issuePair(user)
}

func (s *authService) issuePair(user *model.User) (*dto.LoginResponse, error) {
	accessToken, err := s.tokens.Issue(user, time.Duration(s.cfg.JWTExpirationHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.tokens.IssueRefresh(user, time.Duration(s.cfg.JWTRefreshHours)*time.Hour)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		ExpiresIn:    s.cfg.JWTExpirationHours * 3600,
		User:         toUserResponse(user),
	}, nil
}

func (s *authService) Lookup(ctx context.Context, username string) (*model.User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return user, err
}

func (s *authService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error) {
	role := model.Role(*req.StatusIndex)
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	_, err := s.repo.FindByUsername(ctx, req.Username)
	if err == nil {
		return nil, ErrUsernameTaken
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cost)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		ID:          s.clock.NewID(),
		Username:    req.Username,
		Password:    string(hash),
		StatusIndex: role,
		CreatedAt:   model.FormatTimestamp(s.clock.Now()),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	log.Info().Str("username", user.Username).Str("role", role.String()).Msg("user created")
	resp := toUserResponse(user)
	return &resp, nil
}

func (s *authService) ListUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.UserResponse, len(users))
	for i := range users {
		resp[i] = toUserResponse(&users[i])
	}
	return resp, nil
}

func (s *authService) GetUser(ctx context.Context, username string) (*dto.UserResponse, error) {
	user, err := s.Lookup(ctx, username)
	if err != nil {
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

// UpdateUser merges the supplied fields. The username never changes.
func (s *authService) UpdateUser(ctx context.Context, username string, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	var hash []byte
	if req.Password != nil {
		var err error
		hash, err = bcrypt.GenerateFromPassword([]byte(*req.Password), s.cost)
		if err != nil {
			return nil, err
		}
	}
	if req.StatusIndex != nil && !model.Role(*req.StatusIndex).Valid() {
		return nil, ErrInvalidRole
	}

	user, err := s.repo.Update(ctx, username, func(u *model.User) {
		if hash != nil {
			u.Password = string(hash)
		}
		if req.StatusIndex != nil {
			u.StatusIndex = model.Role(*req.StatusIndex)
		}
	})
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

func (s *authService) DeleteUser(ctx context.Context, username string) error {
	err := s.repo.Delete(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}

func toUserResponse(u *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		StatusIndex: int(u.StatusIndex),
		Role:        u.StatusIndex.String(),
		CreatedAt:   u.CreatedAt,
	}
}
