package user

import (
	"context"

	"github.com/washtime/api/internal/structures"
)

// Mock is a function-backed user service for tests. Unset operations
// return empty results.
type Mock struct {
	FetchFunc     func(ctx context.Context, idOrEmail string, fields []string) (*structures.User, error)
	FindFunc      func(ctx context.Context, filter *structures.UserFilter, fields []string, skip, limit int) ([]*structures.User, error)
	CountFunc     func(ctx context.Context, filter *structures.UserFilter) (int, error)
	UpdateFunc    func(ctx context.Context, data map[string]interface{}, fields []string) (*structures.User, error)
	AddCarFunc    func(ctx context.Context, idOrEmail, carID, regNumber string, fields []string) (*structures.User, error)
	RemoveCarFunc func(ctx context.Context, carID string, fields []string) (*structures.User, error)
}

func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) Fetch(ctx context.Context, idOrEmail string, fields []string) (*structures.User, error) {
	if m.FetchFunc == nil {
		return nil, nil
	}

	return m.FetchFunc(ctx, idOrEmail, fields)
}

func (m *Mock) Find(ctx context.Context, filter *structures.UserFilter, fields []string, skip, limit int) ([]*structures.User, error) {
	if m.FindFunc == nil {
		return nil, nil
	}

	return m.FindFunc(ctx, filter, fields, skip, limit)
}

func (m *Mock) Count(ctx context.Context, filter *structures.UserFilter) (int, error) {
	if m.CountFunc == nil {
		return 0, nil
	}

	return m.CountFunc(ctx, filter)
}

func (m *Mock) Update(ctx context.Context, data map[string]interface{}, fields []string) (*structures.User, error) {
	if m.UpdateFunc == nil {
		return nil, nil
	}

	return m.UpdateFunc(ctx, data, fields)
}

func (m *Mock) AddCar(ctx context.Context, idOrEmail, carID, regNumber string, fields []string) (*structures.User, error) {
	if m.AddCarFunc == nil {
		return nil, nil
	}

	return m.AddCarFunc(ctx, idOrEmail, carID, regNumber, fields)
}

func (m *Mock) RemoveCar(ctx context.Context, carID string, fields []string) (*structures.User, error) {
	if m.RemoveCarFunc == nil {
		return nil, nil
	}

	return m.RemoveCarFunc(ctx, carID, fields)
}
