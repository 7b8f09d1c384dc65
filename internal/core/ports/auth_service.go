package ports

import (
	"context"

	"github.com/contactdesk/customer-api/internal/core/domain"
)

// RegisterInput carries the fields accepted at registration. Gender and
// Location are optional.
type RegisterInput struct {
	Username string
	Name     string
	Password string
	Gender   string
	Location string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login verifies the credentials and returns a signed token alongside the
	// matched user. Unknown usernames and wrong passwords are both reported
	// as domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
