package repository

import (
	"context"
	"errors"
	"time"

	"carrental-backend/internal/domain"
)

// ErrReservationNotCollectable is returned by CreateFromReservation when the
// reservation left the NEW status between validation and the transaction.
var ErrReservationNotCollectable = errors.New("reservation is no longer collectable")

type CarRepository interface {
	Create(ctx context.Context, car *domain.Car) error
	GetByID(ctx context.Context, id int32) (*domain.Car, error)
	Update(ctx context.Context, car *domain.Car) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.Car, error)
	Search(ctx context.Context, query domain.CarSearchQuery) ([]domain.Car, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id int32) (*domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.Customer, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) error
	GetByID(ctx context.Context, id int32) (*domain.Reservation, error)
	Update(ctx context.Context, reservation *domain.Reservation) error
	Delete(ctx context.Context, id int32) error
	// ListActive returns reservations with status NEW.
	ListActive(ctx context.Context) ([]domain.Reservation, error)
	ListActiveByCar(ctx context.Context, carID int32) ([]domain.Reservation, error)
	// ListMissed returns NEW reservations whose start date is before the
	// given cutoff, i.e. holds the customer never collected.
	ListMissed(ctx context.Context, before time.Time) ([]domain.Reservation, error)
	CountActiveByCar(ctx context.Context, carID int32) (int32, error)
	CountActiveByCustomer(ctx context.Context, customerID int32) (int32, error)
}

type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	// CreateFromReservation inserts the rental and marks its source
	// reservation COLLECTED in a single transaction.
	CreateFromReservation(ctx context.Context, rental *domain.Rental, reservationID int32) error
	GetByID(ctx context.Context, id int32) (*domain.Rental, error)
	Update(ctx context.Context, rental *domain.Rental) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.Rental, error)
	// ListActiveByCar returns rentals with status IN_PROGRESS for the car.
	ListActiveByCar(ctx context.Context, carID int32) ([]domain.Rental, error)
	// ListOvertime returns IN_PROGRESS rentals whose end date is before now.
	ListOvertime(ctx context.Context, now time.Time) ([]domain.Rental, error)
	CountActiveByCar(ctx context.Context, carID int32) (int32, error)
	CountActiveByCustomer(ctx context.Context, customerID int32) (int32, error)
	CountByReservation(ctx context.Context, reservationID int32) (int32, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}
