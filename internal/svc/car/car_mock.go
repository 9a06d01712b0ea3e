package car

import (
	"context"

	"github.com/washtime/api/internal/structures"
)

type Mock struct {
	FetchFunc     func(ctx context.Context, id string, fields []string) (*structures.Car, error)
	FetchManyFunc func(ctx context.Context, ids []string, fields []string) ([]*structures.Car, error)
	ListFunc      func(ctx context.Context, brand string, fields []string) ([]*structures.Car, error)
	BrandsFunc    func(ctx context.Context) ([]string, error)
}

func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) Fetch(ctx context.Context, id string, fields []string) (*structures.Car, error) {
	if m.FetchFunc == nil {
		return nil, nil
	}

	return m.FetchFunc(ctx, id, fields)
}

func (m *Mock) FetchMany(ctx context.Context, ids []string, fields []string) ([]*structures.Car, error) {
	if m.FetchManyFunc == nil {
		return nil, nil
	}

	return m.FetchManyFunc(ctx, ids, fields)
}

func (m *Mock) List(ctx context.Context, brand string, fields []string) ([]*structures.Car, error) {
	if m.ListFunc == nil {
		return nil, nil
	}

	return m.ListFunc(ctx, brand, fields)
}

func (m *Mock) Brands(ctx context.Context) ([]string, error) {
	if m.BrandsFunc == nil {
		return nil, nil
	}

	return m.BrandsFunc(ctx)
}
