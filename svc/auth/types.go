package auth

import "time"

// Role separates riders from drivers. Each role has its own credential
// store and its own session guard.
type Role string

const (
	RoleRider  Role = "rider"
	RoleDriver Role = "driver"
)

func (r Role) Valid() bool {
	return r == RoleRider || r == RoleDriver
}

func (r Role) String() string { return string(r) }

// Driver availability. New drivers start inactive.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Vehicle types a driver can register with.
const (
	VehicleCar        = "car"
	VehicleMotorcycle = "motorcycle"
	VehicleAuto       = "auto"
)

type FullName struct {
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname,omitempty"`
}

type Vehicle struct {
	Color       string `json:"color"`
	Plate       string `json:"plate"`
	Capacity    int    `json:"capacity"`
	VehicleType string `json:"vehicleType"`
}

// Principal is an authenticated identity: a rider or a driver.
// The password hash is never part of it.
type Principal struct {
	ID        string    `json:"_id"`
	Role      Role      `json:"-"`
	FullName  FullName  `json:"fullname"`
	Email     string    `json:"email"`
	SocketID  *string   `json:"socketId"`
	Vehicle   *Vehicle  `json:"vehicle,omitempty"`
	Status    string    `json:"status,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
