package user

import (
	"context"

	"github.com/washtime/api/internal/structures"
	"github.com/washtime/api/internal/svc/rpc"
)

// Subject is the message-queue subject the user service listens on.
const Subject = "user"

// Instance is the user service client. Every read operation takes an
// explicit field projection; the service only returns the listed fields.
type Instance interface {
	Fetch(ctx context.Context, idOrEmail string, fields []string) (*structures.User, error)
	Find(ctx context.Context, filter *structures.UserFilter, fields []string, skip, limit int) ([]*structures.User, error)
	Count(ctx context.Context, filter *structures.UserFilter) (int, error)
	Update(ctx context.Context, data map[string]interface{}, fields []string) (*structures.User, error)
	AddCar(ctx context.Context, idOrEmail, carID, regNumber string, fields []string) (*structures.User, error)
	RemoveCar(ctx context.Context, carID string, fields []string) (*structures.User, error)
}

type userService struct {
	rpc rpc.Instance
}

func New(r rpc.Instance) Instance {
	return &userService{rpc: r}
}

func (s *userService) Fetch(ctx context.Context, idOrEmail string, fields []string) (*structures.User, error) {
	var user *structures.User

	err := s.rpc.Call(ctx, Subject, "fetch", []interface{}{idOrEmail, fields}, &user)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) Find(ctx context.Context, filter *structures.UserFilter, fields []string, skip, limit int) ([]*structures.User, error) {
	var users []*structures.User

	err := s.rpc.Call(ctx, Subject, "find", []interface{}{filter, fields, skip, limit}, &users)
	if err != nil {
		return nil, err
	}

	return users, nil
}

func (s *userService) Count(ctx context.Context, filter *structures.UserFilter) (int, error) {
	var count int

	err := s.rpc.Call(ctx, Subject, "count", []interface{}{filter}, &count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (s *userService) Update(ctx context.Context, data map[string]interface{}, fields []string) (*structures.User, error) {
	var user *structures.User

	err := s.rpc.Call(ctx, Subject, "update", []interface{}{data, fields}, &user)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) AddCar(ctx context.Context, idOrEmail, carID, regNumber string, fields []string) (*structures.User, error) {
	var user *structures.User

	err := s.rpc.Call(ctx, Subject, "addCar", []interface{}{idOrEmail, carID, regNumber, fields}, &user)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) RemoveCar(ctx context.Context, carID string, fields []string) (*structures.User, error) {
	var user *structures.User

	err := s.rpc.Call(ctx, Subject, "removeCar", []interface{}{carID, fields}, &user)
	if err != nil {
		return nil, err
	}

	return user, nil
}
