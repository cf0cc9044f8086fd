package account

import (
	"maps"
	"net/http"
	"strings"

	"github.com/dmitrymomot/ridehail/pkg/binder"
	"github.com/dmitrymomot/ridehail/pkg/sanitizer"
	"github.com/dmitrymomot/ridehail/svc/auth"
)

type sanitizable interface {
	Sanitize()
}

// sanitized runs Sanitize on the bound request, so validation sees the
// cleaned values.
func sanitized(bind binder.Func) binder.Func {
	return func(r *http.Request, v any) error {
		if err := bind(r, v); err != nil {
			return err
		}
		if s, ok := v.(sanitizable); ok {
			s.Sanitize()
		}
		return nil
	}
}

type FullNameRequest struct {
	FirstName string `json:"firstname" validate:"required,min=3"`
	LastName  string `json:"lastname" validate:"omitempty,min=3"`
}

func (f *FullNameRequest) Sanitize() {
	f.FirstName = sanitizer.Name(f.FirstName)
	f.LastName = sanitizer.Name(f.LastName)
}

func (f FullNameRequest) toFullName() auth.FullName {
	return auth.FullName{FirstName: f.FirstName, LastName: f.LastName}
}

// RegisterRequest is the rider registration body.
type RegisterRequest struct {
	Email    string          `json:"email" validate:"required,email,min=5"`
	FullName FullNameRequest `json:"fullname"`
	Password string          `json:"password" validate:"required,min=6,max=72"`
}

func (r *RegisterRequest) Sanitize() {
	r.Email = sanitizer.NormalizeEmail(r.Email)
	r.FullName.Sanitize()
}

func (RegisterRequest) ValidationMessages() map[string]string {
	return registrationMessages
}

type VehicleRequest struct {
	Color       string `json:"color" validate:"required,min=3"`
	Plate       string `json:"plate" validate:"required,min=3"`
	Capacity    int    `json:"capacity" validate:"required,min=1"`
	VehicleType string `json:"vehicleType" validate:"required,oneof=car motorcycle auto"`
}

// DriverRegisterRequest is the captain registration body.
type DriverRegisterRequest struct {
	Email    string          `json:"email" validate:"required,email,min=5"`
	FullName FullNameRequest `json:"fullname"`
	Password string          `json:"password" validate:"required,min=6,max=72"`
	Vehicle  VehicleRequest  `json:"vehicle"`
}

func (r *DriverRegisterRequest) Sanitize() {
	r.Email = sanitizer.NormalizeEmail(r.Email)
	r.FullName.Sanitize()
	r.Vehicle.Color = sanitizer.Name(r.Vehicle.Color)
	r.Vehicle.Plate = sanitizer.Apply(r.Vehicle.Plate, sanitizer.Name, strings.ToUpper)
	r.Vehicle.VehicleType = sanitizer.Apply(r.Vehicle.VehicleType, sanitizer.Trim, sanitizer.ToLower)
}

func (DriverRegisterRequest) ValidationMessages() map[string]string {
	return driverMessages
}

// LoginRequest only checks presence. Any other credential problem is
// answered by the service with the generic invalid credentials error.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Sanitize() {
	r.Email = sanitizer.NormalizeEmail(r.Email)
}

func (LoginRequest) ValidationMessages() map[string]string {
	return loginMessages
}

var loginMessages = map[string]string{
	"email":    "Email is required",
	"password": "Password is required",
}

var registrationMessages = map[string]string{
	"email":              "Invalid email",
	"email.min":          "Email must be at least 5 characters long",
	"fullname.firstname": "Firstname must be at least 3 characters long",
	"fullname.lastname":  "Lastname must be at least 3 characters long",
	"password.min":       "Password must be at least 6 characters long",
	"password.max":       "Password must be at most 72 characters long",
	"password":           "Password is required",
}

var driverMessages = func() map[string]string {
	m := map[string]string{
		"vehicle.color":       "Color must be at least 3 characters long",
		"vehicle.plate":       "Plate must be at least 3 characters long",
		"vehicle.capacity":    "Capacity must be at least 1",
		"vehicle.vehicleType": "Invalid vehicle type",
	}
	maps.Copy(m, registrationMessages)
	return m
}()
