package user

import (
	"context"
)

// Service provides user-related business logic.
type Service struct {
	repo Repository
}

// NewService creates a new user service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register creates a user with a pre-hashed credential. Username and email
// uniqueness is checked before creation.
func (s *Service) Register(ctx context.Context, username, email, hashedPassword string) (User, error) {
	taken, err := s.repo.ExistsByUsername(ctx, username)
	if err != nil {
		return User{}, err
	}
	if !taken {
		taken, err = s.repo.ExistsByEmail(ctx, email)
		if err != nil {
			return User{}, err
		}
	}
	if taken {
		return User{}, ErrAlreadyExists
	}

	newUser := &User{
		Username: username,
		Email:    email,
		Password: hashedPassword,
		Role:     "USER",
	}
	if err := s.repo.Create(ctx, newUser); err != nil {
		return User{}, err
	}
	return *newUser, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByUsername(ctx context.Context, username string) (User, error) {
	return s.repo.GetByUsername(ctx, username)
}

func (s *Service) GetByEmail(ctx context.Context, email string) (User, error) {
	return s.repo.GetByEmail(ctx, email)
}
