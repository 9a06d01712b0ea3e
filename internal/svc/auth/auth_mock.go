package auth

import "context"

type Mock struct {
	LoginFunc  func(ctx context.Context, email, password string) (string, error)
	LogoutFunc func(ctx context.Context, token, email string) (bool, error)
}

func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) Login(ctx context.Context, email, password string) (string, error) {
	if m.LoginFunc == nil {
		return "", nil
	}

	return m.LoginFunc(ctx, email, password)
}

func (m *Mock) Logout(ctx context.Context, token, email string) (bool, error) {
	if m.LogoutFunc == nil {
		return false, nil
	}

	return m.LogoutFunc(ctx, token, email)
}
