package auth

import (
	"context"

	"github.com/washtime/api/internal/svc/rpc"
)

const Subject = "auth"

// Instance is the auth service client. Login yields a signed token;
// Logout invalidates one. A non-empty email on Logout restricts the
// operation to sessions belonging to that user.
type Instance interface {
	Login(ctx context.Context, email, password string) (string, error)
	Logout(ctx context.Context, token, email string) (bool, error)
}

type authService struct {
	rpc rpc.Instance
}

func New(r rpc.Instance) Instance {
	return &authService{rpc: r}
}

func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	var token string

	err := s.rpc.Call(ctx, Subject, "login", []interface{}{email, password}, &token)
	if err != nil {
		return "", err
	}

	return token, nil
}

func (s *authService) Logout(ctx context.Context, token, email string) (bool, error) {
	var ok bool

	err := s.rpc.Call(ctx, Subject, "logout", []interface{}{token, email}, &ok)
	if err != nil {
		return false, err
	}

	return ok, nil
}
