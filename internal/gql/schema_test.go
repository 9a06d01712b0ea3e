package gql

import (
	"context"
	"testing"

	"github.com/graphql-go/graphql"

	"github.com/washtime/api/internal/configure"
	"github.com/washtime/api/internal/global"
	gqlauth "github.com/washtime/api/internal/gql/auth"
	"github.com/washtime/api/internal/gql/relay"
	"github.com/washtime/api/internal/structures"
	"github.com/washtime/api/internal/svc/auth"
	"github.com/washtime/api/internal/svc/car"
	"github.com/washtime/api/internal/svc/timetable"
	"github.com/washtime/api/internal/svc/user"
	"github.com/washtime/api/internal/testutil"
)

func testContext(t *testing.T) global.Context {
	t.Helper()

	config := &configure.Config{}
	config.Limits.DefaultPage = 10
	config.Limits.MaxPage = 100

	gCtx := global.New(context.Background(), config)
	gCtx.Inst().User = user.NewMock()
	gCtx.Inst().Auth = auth.NewMock()
	gCtx.Inst().Car = car.NewMock()
	gCtx.Inst().TimeTable = timetable.NewMock()

	return gCtx
}

func userMock(gCtx global.Context) *user.Mock {
	return gCtx.Inst().User.(*user.Mock)
}

func execute(t *testing.T, gCtx global.Context, actor *structures.User, query string, variables map[string]interface{}) *graphql.Result {
	t.Helper()

	schema, err := NewSchema(gCtx)
	testutil.IsNil(t, err, "schema builds")

	ectx := context.Context(gCtx)
	if actor != nil {
		ectx = gqlauth.WithActor(ectx, actor)
	}
	ectx = gqlauth.WithScope(ectx, gqlauth.NewScope())

	return graphql.Do(graphql.Params{
		Schema:         schema,
		RequestString:  query,
		VariableValues: variables,
		Context:        ectx,
	})
}

func errorCode(result *graphql.Result) string {
	for _, e := range result.Errors {
		if e.Extensions != nil {
			if code, ok := e.Extensions["code"].(string); ok {
				return code
			}
		}
	}

	return ""
}

func dataMap(t *testing.T, result *graphql.Result, keys ...string) map[string]interface{} {
	t.Helper()

	m, ok := result.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("data: expected map got %v", result.Data)
	}

	for _, key := range keys {
		next, ok := m[key].(map[string]interface{})
		if !ok {
			t.Fatalf("data.%s: expected map got %v", key, m[key])
		}
		m = next
	}

	return m
}

func TestUserQueryProjectsSelection(t *testing.T) {
	t.Parallel()

	gCtx := testContext(t)

	var projected []string
	userMock(gCtx).FetchFunc = func(ctx context.Context, idOrEmail string, fields []string) (*structures.User, error) {
		projected = fields

		testutil.Assert(t, "a@b.c", idOrEmail, "criteria")

		return &structures.User{ID: "u1", FirstName: "Ann", Email: "a@b.c"}, nil
	}

	result := execute(t, gCtx, nil, `{ user(email: "a@b.c") { id firstName } }`, nil)
	testutil.Assert(t, 0, len(result.Errors), "no errors")

	testutil.AssertStrings(t, []string{"_id", "firstName"}, projected, "downstream projection")

	data := dataMap(t, result, "user")
	testutil.Assert(t, "Ann", data["firstName"].(string), "firstName")
	testutil.Assert(t, relay.ToGlobalID("User", "u1"), data["id"].(string), "global id")
}

func TestUserQueryDecodesGlobalID(t *testing.T) {
	t.Parallel()

	gCtx := testContext(t)

	userMock(gCtx).FetchFunc = func(ctx context.Context, idOrEmail string, fields []string) (*structures.User, error) {
		testutil.Assert(t, "u1", idOrEmail, "decoded criteria")

		return &structures.User{ID: "u1"}, nil
	}

	result := execute(t, gCtx, nil,
		`query ($id: ID) { user(id: $id) { firstName } }`,
		map[string]interface{}{"id": relay.ToGlobalID("User", "u1")},
	)
	testutil.Assert(t, 0, len(result.Errors), "no errors")
}

func TestUserQueryWithoutCriteria(t *testing.T) {
	t.Parallel()

	gCtx := testContext(t)

	result := execute(t, gCtx, nil, `{ user { firstName } }`, nil)
	testutil.Assert(t, "USER_CREDENTIALS_ERROR", errorCode(result), "anonymous without criteria")

	userMock(gCtx).FetchFunc = func(ctx context.Context, idOrEmail string, fields []string) (*structures.User, error) {
		testutil.Assert(t, "me@b.c", idOrEmail, "falls back to principal email")

		return &structures.User{ID: "u1", FirstName: "Me"}, nil
	}

	actor := &structures.User{ID: "u1", Email: "me@b.c", IsActive: true}
	result = execute(t, gCtx, actor, `{ user { firstName } }`, nil)
	testutil.Assert(t, 0, len(result.Errors), "no errors")
}

func TestUserEmailGuard(t *testing.T) {
	t.Parallel()

	gCtx := testContext(t)
	userMock(gCtx).FetchFunc = func(ctx context.Context, idOrEmail string, fields []string) (*structures.User, error) {
		return &structures.User{ID: "u1", Email: "a@b.c"}, nil
	}

	stranger := &structures.User{ID: "u2", Email: "x@y.z", IsActive: true}
	result := execute(t, gCtx, stranger, `{ user(email: "a@b.c") { email } }`, nil)
	testutil.Assert(t, "AUTH_ERROR", errorCode(result), "stranger reading email")

	admin := &structures.User{ID: "u9", IsActive: true, IsAdmin: true}
	result = execute(t, gCtx, admin, `{ user(email: "a@b.c") { email } }`, nil)
	testutil.Assert(t, 0, len(result.Errors), "admin reading email")

	owner := &structures.User{ID: "u1", Email: "a@b.c", IsActive: true}
	result = execute(t, gCtx, owner, `{ user(email: "a@b.c") { email } }`, nil)
	testutil.Assert(t, 0, len(result.Errors), "owner reading own email")
}

func TestUserPasswordGuard(t *testing.T) {
	t.Parallel()

	gCtx := testContext(t)
	userMock(gCtx).FetchFunc = func(ctx context.Context, idOrEmail string, fields []string) (*structures.User, error) {
		return &structures.User{ID: "u1", Email: "a@b.c", Password: "hash"}, nil
	}

	owner := &structures.User{ID: "u1", Email: "a@b.c", IsActive: true}
	result := execute(t, gCtx, owner, `{ user(email: "a@b.c") { password } }`, nil)
	testutil.Assert(t, "AUTH_ERROR", errorCode(result), "password is admin-only")

	admin := &structures.User{ID: "u9", IsActive: true, IsAdmin: true}
	result = execute(t, gCtx, admin, `{ user(email: "a@b.c") { password } }`, nil)
	testutil.Assert(t, 0, len(result.Errors), "admin reading password")
}

func TestUsersPagination(t *testing.T) {
	t.Parallel()

	gCtx := testContext(t)

	var gotSkip, gotLimit int
	var projected []string

	userMock(gCtx).CountFunc = func(ctx context.Context, filter *structures.UserFilter) (int, error) {
		return 10, nil
	}
	userMock(gCtx).FindFunc = func(ctx context.Context, filter *structures.UserFilter, fields []string, skip, limit int) ([]*structures.User, error) {
		gotSkip, gotLimit = skip, limit
		projected = fields

		return []*structures.User{
			{ID: "u3", FirstName: "C"},
			{ID: "u4", FirstName: "D"},
			{ID: "u5", FirstName: "E"},
		}, nil
	}

	result := execute(t, gCtx, nil,
		`query ($after: String) {
			users(first: 3, after: $after) {
				totalCount
				edges { cursor node { id firstName } }
				pageInfo { hasNextPage hasPreviousPage }
			}
		}`,
		map[string]interface{}{"after": relay.OffsetToCursor(1)},
	)
	testutil.Assert(t, 0, len(result.Errors), "no errors")

	testutil.Assert(t, 2, gotSkip, "skip is cursor offset plus one")
	testutil.Assert(t, 3, gotLimit, "limit from first")
	testutil.AssertStrings(t, []string{"_id", "firstName"}, projected, "node projection")

	users := dataMap(t, result, "users")
	testutil.Assert(t, 10, users["totalCount"].(int), "total count")

	pageInfo := users["pageInfo"].(map[string]interface{})
	testutil.Assert(t, true, pageInfo["hasNextPage"].(bool), "has next page")
	testutil.Assert(t, true, pageInfo["hasPreviousPage"].(bool), "has previous page")

	edges := users["edges"].([]interface{})
	testutil.Assert(t, 3, len(edges), "edge count")

	first := edges[0].(map[string]interface{})
	testutil.Assert(t, relay.OffsetToCursor(2), first["cursor"].(string), "first cursor")
}

func TestUsersPageSizeClamp(t *testing.T) {
	t.Parallel()

	gCtx := testContext(t)

	var gotLimit int
	userMock(gCtx).FindFunc = func(ctx context.Context, filter *structures.UserFilter, fields []string, skip, limit int) ([]*structures.User, error) {
		gotLimit = limit
		return nil, nil
	}

	result := execute(t, gCtx, nil, `{ users(first: 1000) { totalCount } }`, nil)
	testutil.Assert(t, 0, len(result.Errors), "no errors")
	testutil.Assert(t, 100, gotLimit, "clamped for anonymous requesters")

	admin := &structures.User{ID: "u9", IsActive: true, IsAdmin: true}
	result = execute(t, gCtx, admin, `{ users(first: 1000) { totalCount } }`, nil)
	testutil.Assert(t, 0, len(result.Errors), "no errors")
	testutil.Assert(t, 1000, gotLimit, "admins bypass the clamp")
}

func TestUsersDegradesOnDownstreamFailure(t *testing.T) {
	t.Parallel()

	gCtx := testContext(t)

	userMock(gCtx).CountFunc = func(ctx context.Context, filter *structures.UserFilter) (int, error) {
		return 0, context.DeadlineExceeded
	}

	result := execute(t, gCtx, nil, `{ users { totalCount edges { cursor } } }`, nil)
	testutil.Assert(t, 0, len(result.Errors), "collection reads degrade")

	users := dataMap(t, result, "users")
	testutil.Assert(t, 0, users["totalCount"].(int), "empty total")
}

func TestCarsCollectionMerge(t *testing.T) {
	t.Parallel()

	gCtx := testContext(t)

	userMock(gCtx).FetchFunc = func(ctx context.Context, idOrEmail string, fields []string) (*structures.User, error) {
		return &structures.User{
			ID: "u1",
			Cars: []structures.UserCar{
				{ID: "a1", CarID: "c1", RegNumber: "AA-11-BB"},
				{ID: "a2", CarID: "missing", RegNumber: "XX-00"},
			},
		}, nil
	}

	carMock := gCtx.Inst().Car.(*car.Mock)
	carMock.FetchManyFunc = func(ctx context.Context, ids []string, fields []string) ([]*structures.Car, error) {
		testutil.AssertStrings(t, []string{"c1", "missing"}, ids, "batched catalog lookup")

		return []*structures.Car{{ID: "c1", Make: "BMW", Model: "X5"}}, nil
	}

	result := execute(t, gCtx, nil, `{ user(id: "u1") { cars { id carId regNumber make } } }`, nil)
	testutil.Assert(t, 0, len(result.Errors), "no errors")

	data := dataMap(t, result, "user")
	cars := data["cars"].([]interface{})
	testutil.Assert(t, 1, len(cars), "unmatched catalog entries dropped")

	view := cars[0].(map[string]interface{})
	testutil.Assert(t, relay.ToGlobalID("Car", "a1"), view["id"].(string), "association identity")
	testutil.Assert(t, relay.ToGlobalID("Car", "c1"), view["carId"].(string), "catalog identity")
	testutil.Assert(t, "AA-11-BB", view["regNumber"].(string), "registration number")
	testutil.Assert(t, "BMW", view["make"].(string), "catalog attribute")
}

func TestLogin(t *testing.T) {
	t.Parallel()

	gCtx := testContext(t)

	authMock := gCtx.Inst().Auth.(*auth.Mock)
	authMock.LoginFunc = func(ctx context.Context, email, password string) (string, error) {
		testutil.Assert(t, "a@b.c", email, "login email")
		testutil.Assert(t, "secret", password, "login password")

		return "jwt-token", nil
	}

	userMock(gCtx).FetchFunc = func(ctx context.Context, idOrEmail string, fields []string) (*structures.User, error) {
		// the resolver must force these regardless of the selection
		for _, required := range []string{"_id", "email", "isActive"} {
			found := false
			for _, f := range fields {
				if f == required {
					found = true
					break
				}
			}
			testutil.Assert(t, true, found, "projection includes "+required)
		}

		return &structures.User{ID: "u1", Email: "a@b.c", Password: "hash", IsActive: true}, nil
	}

	result := execute(t, gCtx, nil,
		`mutation {
			login(input: { email: "a@b.c", password: "secret", clientMutationId: "m1" }) {
				token
				clientMutationId
				user { id email password }
			}
		}`, nil)
	testutil.Assert(t, 0, len(result.Errors), "no errors")

	data := dataMap(t, result, "login")
	testutil.Assert(t, "jwt-token", data["token"].(string), "token")
	testutil.Assert(t, "m1", data["clientMutationId"].(string), "client mutation id echoed")

	payloadUser := data["user"].(map[string]interface{})
	testutil.Assert(t, "a@b.c", payloadUser["email"].(string), "own email readable after login")
	testutil.Assert(t, "hash", payloadUser["password"].(string), "own password readable after login")
}

func TestLoginBlockedAccount(t *testing.T) {
	t.Parallel()

	gCtx := testContext(t)

	gCtx.Inst().Auth.(*auth.Mock).LoginFunc = func(ctx context.Context, email, password string) (string, error) {
		return "jwt-token", nil
	}
	userMock(gCtx).FetchFunc = func(ctx context.Context, idOrEmail string, fields []string) (*structures.User, error) {
		return &structures.User{ID: "u1", Email: "a@b.c", IsActive: false}, nil
	}

	result := execute(t, gCtx, nil,
		`mutation { login(input: { email: "a@b.c", password: "secret" }) { token } }`, nil)
	testutil.Assert(t, "USER_ACCOUNT_BLOCKED", errorCode(result), "blocked account")
}

func TestLoginValidation(t *testing.T) {
	t.Parallel()

	gCtx := testContext(t)

	result := execute(t, gCtx, nil,
		`mutation { login(input: { email: "", password: "x" }) { token } }`, nil)
	testutil.Assert(t, "USER_EMAIL_ERROR", errorCode(result), "empty email")

	result = execute(t, gCtx, nil,
		`mutation { login(input: { email: "a@b.c", password: "" }) { token } }`, nil)
	testutil.Assert(t, "USER_PASSWORD_ERROR", errorCode(result), "empty password")
}

func TestAddCarDecodesIdentifiers(t *testing.T) {
	t.Parallel()

	gCtx := testContext(t)

	userMock(gCtx).AddCarFunc = func(ctx context.Context, idOrEmail, carID, regNumber string, fields []string) (*structures.User, error) {
		testutil.Assert(t, "u1", idOrEmail, "defaults to the caller")
		testutil.Assert(t, "c1", carID, "decoded catalog id")
		testutil.Assert(t, "AA-11", regNumber, "registration number")

		return &structures.User{ID: "u1"}, nil
	}

	actor := &structures.User{ID: "u1", Email: "a@b.c", IsActive: true}
	result := execute(t, gCtx, actor,
		`mutation ($carId: ID!) {
			addCar(input: { carId: $carId, regNumber: "AA-11" }) {
				user { id }
			}
		}`,
		map[string]interface{}{"carId": relay.ToGlobalID("Car", "c1")},
	)
	testutil.Assert(t, 0, len(result.Errors), "no errors")
}

func TestAddCarRequiresAuth(t *testing.T) {
	t.Parallel()

	gCtx := testContext(t)

	result := execute(t, gCtx, nil,
		`mutation { addCar(input: { carId: "c1", regNumber: "AA-11" }) { user { id } } }`, nil)
	testutil.Assert(t, "USER_CRITERIA_ERROR", errorCode(result), "anonymous caller has no target")
}

func TestReserve(t *testing.T) {
	t.Parallel()

	gCtx := testContext(t)

	ttMock := gCtx.Inst().TimeTable.(*timetable.Mock)
	ttMock.ReserveFunc = func(ctx context.Context, reservation *structures.Reservation, fields []string) ([]*structures.Reservation, error) {
		testutil.Assert(t, "u1", reservation.UserID, "caller is the owner")
		testutil.Assert(t, "c1", reservation.CarID, "decoded car id")
		testutil.Assert(t, "fast", reservation.Type, "washing type")
		testutil.Assert(t, "2026-09-01T10:00:00Z", reservation.Duration[0], "slot start")

		return []*structures.Reservation{
			{ID: 7, UserID: "u1", CarID: "c1", Type: "fast", Duration: [2]string{"2026-09-01T10:00:00Z", "2026-09-01T10:30:00Z"}},
		}, nil
	}

	actor := &structures.User{ID: "u1", Email: "a@b.c", IsActive: true}
	result := execute(t, gCtx, actor,
		`mutation {
			reserve(input: {
				carId: "c1",
				type: "fast",
				duration: ["2026-09-01T10:00:00Z", "2026-09-01T10:30:00Z"]
			}) {
				reservations { id type start end }
			}
		}`, nil)
	testutil.Assert(t, 0, len(result.Errors), "no errors")

	data := dataMap(t, result, "reserve")
	reservations := data["reservations"].([]interface{})
	testutil.Assert(t, 1, len(reservations), "reservation list")

	slot := reservations[0].(map[string]interface{})
	testutil.Assert(t, relay.ToGlobalID("Reservation", "7"), slot["id"].(string), "reservation id")
	testutil.Assert(t, "2026-09-01T10:30:00Z", slot["end"].(string), "slot end")
}

func TestReserveRequiresAuth(t *testing.T) {
	t.Parallel()

	gCtx := testContext(t)

	result := execute(t, gCtx, nil,
		`mutation {
			reserve(input: { carId: "c1", type: "fast", duration: ["a", "b"] }) {
				reservations { id }
			}
		}`, nil)
	testutil.Assert(t, "AUTH_ERROR", errorCode(result), "anonymous reserve")
}

func TestReserveForbidsForeignTarget(t *testing.T) {
	t.Parallel()

	gCtx := testContext(t)

	actor := &structures.User{ID: "u1", Email: "a@b.c", IsActive: true}
	result := execute(t, gCtx, actor,
		`mutation {
			reserve(input: { userId: "u2", carId: "c1", type: "fast", duration: ["a", "b"] }) {
				reservations { id }
			}
		}`, nil)
	testutil.Assert(t, "AUTH_ERROR", errorCode(result), "booking for someone else")
}

func TestCancelReservationOwnership(t *testing.T) {
	t.Parallel()

	gCtx := testContext(t)

	ttMock := gCtx.Inst().TimeTable.(*timetable.Mock)
	ttMock.FetchFunc = func(ctx context.Context, id string, fields []string) (*structures.Reservation, error) {
		return &structures.Reservation{ID: 7, UserID: "u2"}, nil
	}

	actor := &structures.User{ID: "u1", Email: "a@b.c", IsActive: true}
	result := execute(t, gCtx, actor,
		`mutation { cancelReservation(input: { id: "7" }) { reservations { id } } }`, nil)
	testutil.Assert(t, "AUTH_ERROR", errorCode(result), "cancelling a foreign reservation")

	cancelled := false
	ttMock.CancelFunc = func(ctx context.Context, id string, fields []string) ([]*structures.Reservation, error) {
		cancelled = true
		testutil.Assert(t, "7", id, "decoded reservation id")

		return []*structures.Reservation{}, nil
	}

	owner := &structures.User{ID: "u2", Email: "o@b.c", IsActive: true}
	result = execute(t, gCtx, owner,
		`mutation { cancelReservation(input: { id: "7" }) { reservations { id } } }`, nil)
	testutil.Assert(t, 0, len(result.Errors), "owner cancels")
	testutil.Assert(t, true, cancelled, "cancel reached downstream")
}

func TestNodeQuery(t *testing.T) {
	t.Parallel()

	gCtx := testContext(t)

	carMock := gCtx.Inst().Car.(*car.Mock)
	carMock.FetchFunc = func(ctx context.Context, id string, fields []string) (*structures.Car, error) {
		testutil.Assert(t, "c1", id, "decoded node id")

		return &structures.Car{ID: "c1", Make: "Audi"}, nil
	}

	result := execute(t, gCtx, nil,
		`query ($id: ID!) { node(id: $id) { id ... on Car { make } } }`,
		map[string]interface{}{"id": relay.ToGlobalID("Car", "c1")},
	)
	testutil.Assert(t, 0, len(result.Errors), "no errors")

	node := dataMap(t, result, "node")
	testutil.Assert(t, "Audi", node["make"].(string), "concrete type resolved")
}

func TestUpdateUserRegistration(t *testing.T) {
	t.Parallel()

	gCtx := testContext(t)

	userMock(gCtx).UpdateFunc = func(ctx context.Context, data map[string]interface{}, fields []string) (*structures.User, error) {
		testutil.Assert(t, "a@b.c", data["email"].(string), "email passed through")
		if _, ok := data["_id"]; ok {
			t.Fatal("registration must not carry an id")
		}

		return &structures.User{ID: "u1", Email: "a@b.c", IsActive: true}, nil
	}

	result := execute(t, gCtx, nil,
		`mutation {
			updateUser(input: {
				email: "a@b.c", password: "pw", firstName: "Ann", lastName: "Lee"
			}) {
				id email
			}
		}`, nil)
	testutil.Assert(t, 0, len(result.Errors), "anonymous registration")

	data := dataMap(t, result, "updateUser")
	testutil.Assert(t, "a@b.c", data["email"].(string), "fresh registration reads own email")
}

func TestUpdateUserValidation(t *testing.T) {
	t.Parallel()

	gCtx := testContext(t)

	result := execute(t, gCtx, nil,
		`mutation { updateUser(input: { password: "pw", firstName: "A", lastName: "B" }) { id } }`, nil)
	testutil.Assert(t, "USER_EMAIL_ERROR", errorCode(result), "registration without email")

	result = execute(t, gCtx, nil,
		`mutation { updateUser(input: { email: "a@b.c", firstName: "A", lastName: "B" }) { id } }`, nil)
	testutil.Assert(t, "USER_PASSWORD_ERROR", errorCode(result), "registration without password")

	owner := &structures.User{ID: "u1", Email: "a@b.c", IsActive: true}
	result = execute(t, gCtx, owner,
		`mutation ($id: ID) { updateUser(input: { id: $id }) { id } }`,
		map[string]interface{}{"id": relay.ToGlobalID("User", "u1")},
	)
	testutil.Assert(t, "USER_DATA_ERROR", errorCode(result), "update without data")
}

func TestUpdateUserOwnership(t *testing.T) {
	t.Parallel()

	gCtx := testContext(t)

	userMock(gCtx).UpdateFunc = func(ctx context.Context, data map[string]interface{}, fields []string) (*structures.User, error) {
		testutil.Assert(t, "u1", data["_id"].(string), "decoded target id")

		return &structures.User{ID: "u1", FirstName: "New"}, nil
	}

	target := relay.ToGlobalID("User", "u1")

	stranger := &structures.User{ID: "u2", Email: "x@y.z", IsActive: true}
	result := execute(t, gCtx, stranger,
		`mutation ($id: ID) { updateUser(input: { id: $id, firstName: "New" }) { firstName } }`,
		map[string]interface{}{"id": target},
	)
	testutil.Assert(t, "AUTH_ERROR", errorCode(result), "foreign record")

	owner := &structures.User{ID: "u1", Email: "a@b.c", IsActive: true}
	result = execute(t, gCtx, owner,
		`mutation ($id: ID) { updateUser(input: { id: $id, firstName: "New" }) { firstName } }`,
		map[string]interface{}{"id": target},
	)
	testutil.Assert(t, 0, len(result.Errors), "own record")
}

func TestUpdateUserPrivilegedFlags(t *testing.T) {
	t.Parallel()

	gCtx := testContext(t)

	userMock(gCtx).UpdateFunc = func(ctx context.Context, data map[string]interface{}, fields []string) (*structures.User, error) {
		return &structures.User{ID: "u1"}, nil
	}

	owner := &structures.User{ID: "u1", Email: "a@b.c", IsActive: true}
	result := execute(t, gCtx, owner,
		`mutation ($id: ID) { updateUser(input: { id: $id, isAdmin: true }) { id } }`,
		map[string]interface{}{"id": relay.ToGlobalID("User", "u1")},
	)
	testutil.Assert(t, "AUTH_ERROR", errorCode(result), "members cannot self-promote")

	admin := &structures.User{ID: "u9", IsActive: true, IsAdmin: true}
	result = execute(t, gCtx, admin,
		`mutation ($id: ID) { updateUser(input: { id: $id, isAdmin: true }) { id } }`,
		map[string]interface{}{"id": relay.ToGlobalID("User", "u1")},
	)
	testutil.Assert(t, 0, len(result.Errors), "admins flip privileged flags")
}

func TestLogout(t *testing.T) {
	t.Parallel()

	gCtx := testContext(t)

	authMock := gCtx.Inst().Auth.(*auth.Mock)
	authMock.LogoutFunc = func(ctx context.Context, token, email string) (bool, error) {
		testutil.Assert(t, "jwt-token", token, "token")
		testutil.Assert(t, "a@b.c", email, "members revoke only their own sessions")

		return true, nil
	}

	actor := &structures.User{ID: "u1", Email: "a@b.c", IsActive: true}
	result := execute(t, gCtx, actor,
		`mutation { logout(input: { token: "jwt-token" }) { success } }`, nil)
	testutil.Assert(t, 0, len(result.Errors), "no errors")

	data := dataMap(t, result, "logout")
	testutil.Assert(t, true, data["success"].(bool), "revoked")

	result = execute(t, gCtx, nil,
		`mutation { logout(input: { token: "jwt-token" }) { success } }`, nil)
	testutil.Assert(t, "AUTH_ERROR", errorCode(result), "anonymous logout")
}
