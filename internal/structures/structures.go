package structures

// Domain objects exchanged with the downstream services. Every read
// operation fetches a partial projection, so all fields are optional at
// the wire level and absent fields stay at their zero value.

type User struct {
	ID        string    `json:"_id,omitempty"`
	FirstName string    `json:"firstName,omitempty"`
	LastName  string    `json:"lastName,omitempty"`
	Email     string    `json:"email,omitempty"`
	Password  string    `json:"password,omitempty"`
	IsActive  bool      `json:"isActive,omitempty"`
	IsAdmin   bool      `json:"isAdmin,omitempty"`
	Cars      []UserCar `json:"cars,omitempty"`
}

// UserCar is a car association record embedded in a User. Its ID is the
// identity of the association itself ("this user's car slot"), while
// CarID references a catalog Car owned by the car service.
type UserCar struct {
	ID        string `json:"_id,omitempty"`
	CarID     string `json:"carId,omitempty"`
	RegNumber string `json:"regNumber,omitempty"`
}

// Car is a catalog car. When merged with a user's association record the
// same struct carries the composite view: RegNumber comes from the
// association, CarID keeps the catalog identifier and ID switches to the
// association identity.
type Car struct {
	ID        string `json:"id,omitempty"`
	CarID     string `json:"carId,omitempty"`
	Make      string `json:"make,omitempty"`
	Model     string `json:"model,omitempty"`
	Type      string `json:"type,omitempty"`
	Years     []int  `json:"years,omitempty"`
	RegNumber string `json:"regNumber,omitempty"`
}

const (
	ReservationTypeFast = "fast"
	ReservationTypeStd  = "std"
	ReservationTypeFull = "full"
)

type Reservation struct {
	ID       int64     `json:"id,omitempty"`
	CarID    string    `json:"carId,omitempty"`
	UserID   string    `json:"userId,omitempty"`
	Type     string    `json:"type,omitempty"`
	Duration [2]string `json:"duration"`
}

type BaseTimeOption struct {
	Key      string `json:"key,omitempty"`
	Title    string `json:"title,omitempty"`
	Duration int    `json:"duration,omitempty"`
}

type TimeTableOptions struct {
	Start    string           `json:"start,omitempty"`
	End      string           `json:"end,omitempty"`
	Boxes    int              `json:"boxes,omitempty"`
	BaseTime []BaseTimeOption `json:"baseTime,omitempty"`
}

// UserFilter narrows user list selections. Nil fields are not applied.
type UserFilter struct {
	IsActive *bool `json:"isActive,omitempty"`
	IsAdmin  *bool `json:"isAdmin,omitempty"`
}
