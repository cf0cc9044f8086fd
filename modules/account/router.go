package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Mountable interface {
	Handle() http.Handler
}

// RouterOptions selects the role modules to mount. A nil module is skipped.
type RouterOptions struct {
	Riders  Mountable
	Drivers Mountable
}

// Router mounts riders under /users and drivers under /captains.
//
// Example:
//
//	riders := account.NewModule(riderSvc, transport)
//	drivers := account.NewModule(driverSvc, transport)
//
//	r := chi.NewRouter()
//	r.Mount("/", account.Router(account.RouterOptions{
//	    Riders:  riders,
//	    Drivers: drivers,
//	}))
func Router(opts RouterOptions) chi.Router {
	r := chi.NewRouter()
	if opts.Riders != nil {
		r.Mount("/users", opts.Riders.Handle())
	}
	if opts.Drivers != nil {
		r.Mount("/captains", opts.Drivers.Handle())
	}
	return r
}
