package identity

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository defines the interface for user persistence
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *User) error

	// Update updates an existing user
	Update(ctx context.Context, user *User) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByEmail finds a user by email
	FindByEmail(ctx context.Context, email string) (*User, error)

	// FindByPhone finds a user by phone
	FindByPhone(ctx context.Context, phone string) (*User, error)

	// FindByIdentifier finds a user by email or phone
	FindByIdentifier(ctx context.Context, identifier string) (*User, error)

	// ExistsByEmail checks if an email already exists
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// ExistsByPhone checks if a phone already exists
	ExistsByPhone(ctx context.Context, phone string) (bool, error)
}
