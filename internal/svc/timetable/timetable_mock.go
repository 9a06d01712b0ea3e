package timetable

import (
	"context"

	"github.com/washtime/api/internal/structures"
)

type Mock struct {
	FetchFunc   func(ctx context.Context, id string, fields []string) (*structures.Reservation, error)
	ListFunc    func(ctx context.Context, startFrom string, fields []string) ([]*structures.Reservation, error)
	ReserveFunc func(ctx context.Context, reservation *structures.Reservation, fields []string) ([]*structures.Reservation, error)
	CancelFunc  func(ctx context.Context, id string, fields []string) ([]*structures.Reservation, error)
	ClosestFunc func(ctx context.Context, washingType, startFrom string) (*structures.Reservation, error)
	ConfigFunc  func(ctx context.Context) (*structures.TimeTableOptions, error)
}

func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) Fetch(ctx context.Context, id string, fields []string) (*structures.Reservation, error) {
	if m.FetchFunc == nil {
		return nil, nil
	}

	return m.FetchFunc(ctx, id, fields)
}

func (m *Mock) List(ctx context.Context, startFrom string, fields []string) ([]*structures.Reservation, error) {
	if m.ListFunc == nil {
		return nil, nil
	}

	return m.ListFunc(ctx, startFrom, fields)
}

func (m *Mock) Reserve(ctx context.Context, reservation *structures.Reservation, fields []string) ([]*structures.Reservation, error) {
	if m.ReserveFunc == nil {
		return nil, nil
	}

	return m.ReserveFunc(ctx, reservation, fields)
}

func (m *Mock) Cancel(ctx context.Context, id string, fields []string) ([]*structures.Reservation, error) {
	if m.CancelFunc == nil {
		return nil, nil
	}

	return m.CancelFunc(ctx, id, fields)
}

func (m *Mock) Closest(ctx context.Context, washingType, startFrom string) (*structures.Reservation, error) {
	if m.ClosestFunc == nil {
		return nil, nil
	}

	return m.ClosestFunc(ctx, washingType, startFrom)
}

func (m *Mock) Config(ctx context.Context) (*structures.TimeTableOptions, error) {
	if m.ConfigFunc == nil {
		return nil, nil
	}

	return m.ConfigFunc(ctx)
}
