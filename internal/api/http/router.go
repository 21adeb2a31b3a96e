package http

import (
	"net/http"

	"carrental-backend/internal/security"
	"carrental-backend/internal/service"

	"github.com/gorilla/mux"
)

// API bundles the services behind the REST surface.
type API struct {
	auth         service.AuthService
	users        service.UserService
	cars         service.CarService
	customers    service.CustomerService
	reservations service.ReservationService
	rentals      service.RentalService
	tokens       security.TokenManager
}

func NewAPI(
	auth service.AuthService,
	users service.UserService,
	cars service.CarService,
	customers service.CustomerService,
	reservations service.ReservationService,
	rentals service.RentalService,
	tokens security.TokenManager,
) *API {
	return &API{
		auth:         auth,
		users:        users,
		cars:         cars,
		customers:    customers,
		reservations: reservations,
		rentals:      rentals,
		tokens:       tokens,
	}
}

// Routes builds the router. Everything except login requires a bearer token.
func (a *API) Routes() *mux.Router {
	r := mux.NewRouter().StrictSlash(true)
	r.Use(RequestLogging)

	r.HandleFunc("/login/access-token", a.handleLogin).Methods(http.MethodPost)

	authed := r.NewRoute().Subrouter()
	authed.Use(BearerAuth(a.tokens))

	authed.HandleFunc("/users/", a.handleListUsers).Methods(http.MethodGet)
	authed.HandleFunc("/users/", a.handleCreateUser).Methods(http.MethodPost)
	authed.HandleFunc("/users/me", a.handleCurrentUser).Methods(http.MethodGet)
	authed.HandleFunc("/users/{id:[0-9]+}", a.handleGetUser).Methods(http.MethodGet)

	authed.HandleFunc("/cars/", a.handleListCars).Methods(http.MethodGet)
	authed.HandleFunc("/cars/", a.handleCreateCar).Methods(http.MethodPost)
	authed.HandleFunc("/cars/query", a.handleSearchCars).Methods(http.MethodPost)
	authed.HandleFunc("/cars/{id:[0-9]+}", a.handleGetCar).Methods(http.MethodGet)
	authed.HandleFunc("/cars/{id:[0-9]+}", a.handleUpdateCar).Methods(http.MethodPut)
	authed.HandleFunc("/cars/{id:[0-9]+}", a.handleDeleteCar).Methods(http.MethodDelete)

	authed.HandleFunc("/customers/", a.handleListCustomers).Methods(http.MethodGet)
	authed.HandleFunc("/customers/", a.handleCreateCustomer).Methods(http.MethodPost)
	authed.HandleFunc("/customers/{id:[0-9]+}", a.handleGetCustomer).Methods(http.MethodGet)
	authed.HandleFunc("/customers/{id:[0-9]+}", a.handleUpdateCustomer).Methods(http.MethodPut)
	authed.HandleFunc("/customers/{id:[0-9]+}", a.handleDeleteCustomer).Methods(http.MethodDelete)

	authed.HandleFunc("/reservations/", a.handleListReservations).Methods(http.MethodGet)
	authed.HandleFunc("/reservations/", a.handleCreateReservation).Methods(http.MethodPost)
	authed.HandleFunc("/reservations/{id:[0-9]+}", a.handleGetReservation).Methods(http.MethodGet)
	authed.HandleFunc("/reservations/{id:[0-9]+}", a.handleUpdateReservation).Methods(http.MethodPut)
	authed.HandleFunc("/reservations/{id:[0-9]+}", a.handleDeleteReservation).Methods(http.MethodDelete)

	authed.HandleFunc("/rentals/", a.handleListRentals).Methods(http.MethodGet)
	authed.HandleFunc("/rentals/", a.handleCreateRental).Methods(http.MethodPost)
	authed.HandleFunc("/rentals/overtime", a.handleOvertimeRentals).Methods(http.MethodGet)
	authed.HandleFunc("/rentals/{id:[0-9]+}", a.handleGetRental).Methods(http.MethodGet)
	authed.HandleFunc("/rentals/{id:[0-9]+}", a.handleUpdateRental).Methods(http.MethodPut)
	authed.HandleFunc("/rentals/{id:[0-9]+}", a.handleDeleteRental).Methods(http.MethodDelete)

	return r
}

// requireAdmin guards the admin-only routes.
func requireAdmin(r *http.Request) error {
	claims := ClaimsFromContext(r.Context())
	if claims == nil || !claims.IsAdmin {
		return service.ErrNotEnoughPermissions
	}
	return nil
}
