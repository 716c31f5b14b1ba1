package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pawmart-backend-go/internal/db"
	"pawmart-backend-go/internal/models"
)

// ErrUserExists is returned when registering an email that is already taken.
var ErrUserExists = errors.New("user already exists")

// userService implements the UserService interface.
type userService struct {
	userRepo db.UserRepository
}

// NewUserService creates a new UserService instance.
func NewUserService(userRepo db.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// Create registers a new user, stamping the creation time server-side.
// Uniqueness is enforced by the store's unique index on email, so two
// concurrent registrations cannot both succeed.
func (s *userService) Create(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	user := &models.User{
		Email:       req.Email,
		DisplayName: req.DisplayName,
		PhotoURL:    req.PhotoURL,
		CreatedAt:   time.Now().UTC(),
	}
	id, err := s.userRepo.Insert(ctx, user)
	if err != nil {
		if errors.Is(err, db.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: %s", ErrUserExists, req.Email)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	user.ID = id
	return user, nil
}
