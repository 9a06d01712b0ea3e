package timetable

import (
	"context"

	"github.com/washtime/api/internal/structures"
	"github.com/washtime/api/internal/svc/rpc"
)

const Subject = "time-table"

// Instance is the reservation time-table service client. Reserve and
// Cancel return the updated reservation list so clients can refresh
// their view in one round trip.
type Instance interface {
	Fetch(ctx context.Context, id string, fields []string) (*structures.Reservation, error)
	List(ctx context.Context, startFrom string, fields []string) ([]*structures.Reservation, error)
	Reserve(ctx context.Context, reservation *structures.Reservation, fields []string) ([]*structures.Reservation, error)
	Cancel(ctx context.Context, id string, fields []string) ([]*structures.Reservation, error)
	Closest(ctx context.Context, washingType, startFrom string) (*structures.Reservation, error)
	Config(ctx context.Context) (*structures.TimeTableOptions, error)
}

type timeTableService struct {
	rpc rpc.Instance
}

func New(r rpc.Instance) Instance {
	return &timeTableService{rpc: r}
}

func (s *timeTableService) Fetch(ctx context.Context, id string, fields []string) (*structures.Reservation, error) {
	var reservation *structures.Reservation

	err := s.rpc.Call(ctx, Subject, "fetch", []interface{}{id, fields}, &reservation)
	if err != nil {
		return nil, err
	}

	return reservation, nil
}

func (s *timeTableService) List(ctx context.Context, startFrom string, fields []string) ([]*structures.Reservation, error) {
	var reservations []*structures.Reservation

	err := s.rpc.Call(ctx, Subject, "list", []interface{}{startFrom, fields}, &reservations)
	if err != nil {
		return nil, err
	}

	return reservations, nil
}

func (s *timeTableService) Reserve(ctx context.Context, reservation *structures.Reservation, fields []string) ([]*structures.Reservation, error) {
	var reservations []*structures.Reservation

	err := s.rpc.Call(ctx, Subject, "reserve", []interface{}{reservation, fields}, &reservations)
	if err != nil {
		return nil, err
	}

	return reservations, nil
}

func (s *timeTableService) Cancel(ctx context.Context, id string, fields []string) ([]*structures.Reservation, error) {
	var reservations []*structures.Reservation

	err := s.rpc.Call(ctx, Subject, "cancel", []interface{}{id, fields}, &reservations)
	if err != nil {
		return nil, err
	}

	return reservations, nil
}

func (s *timeTableService) Closest(ctx context.Context, washingType, startFrom string) (*structures.Reservation, error) {
	var reservation *structures.Reservation

	err := s.rpc.Call(ctx, Subject, "closest", []interface{}{washingType, startFrom}, &reservation)
	if err != nil {
		return nil, err
	}

	return reservation, nil
}

func (s *timeTableService) Config(ctx context.Context) (*structures.TimeTableOptions, error) {
	var options *structures.TimeTableOptions

	err := s.rpc.Call(ctx, Subject, "config", nil, &options)
	if err != nil {
		return nil, err
	}

	return options, nil
}
