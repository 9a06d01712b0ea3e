package car

import (
	"context"

	"github.com/washtime/api/internal/structures"
	"github.com/washtime/api/internal/svc/rpc"
)

const Subject = "car"

// Instance is the car catalog service client.
type Instance interface {
	Fetch(ctx context.Context, id string, fields []string) (*structures.Car, error)
	FetchMany(ctx context.Context, ids []string, fields []string) ([]*structures.Car, error)
	List(ctx context.Context, brand string, fields []string) ([]*structures.Car, error)
	Brands(ctx context.Context) ([]string, error)
}

type carService struct {
	rpc rpc.Instance
}

func New(r rpc.Instance) Instance {
	return &carService{rpc: r}
}

func (s *carService) Fetch(ctx context.Context, id string, fields []string) (*structures.Car, error) {
	var car *structures.Car

	err := s.rpc.Call(ctx, Subject, "fetch", []interface{}{id, fields}, &car)
	if err != nil {
		return nil, err
	}

	return car, nil
}

func (s *carService) FetchMany(ctx context.Context, ids []string, fields []string) ([]*structures.Car, error) {
	var cars []*structures.Car

	err := s.rpc.Call(ctx, Subject, "fetchMany", []interface{}{ids, fields}, &cars)
	if err != nil {
		return nil, err
	}

	return cars, nil
}

func (s *carService) List(ctx context.Context, brand string, fields []string) ([]*structures.Car, error) {
	var cars []*structures.Car

	err := s.rpc.Call(ctx, Subject, "list", []interface{}{brand, fields}, &cars)
	if err != nil {
		return nil, err
	}

	return cars, nil
}

func (s *carService) Brands(ctx context.Context) ([]string, error) {
	var brands []string

	err := s.rpc.Call(ctx, Subject, "brands", nil, &brands)
	if err != nil {
		return nil, err
	}

	return brands, nil
}
