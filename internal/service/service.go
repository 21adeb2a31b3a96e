package service

import (
	"context"
	"time"

	"carrental-backend/internal/domain"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
}

type UserService interface {
	CreateUser(ctx context.Context, email, fullName, password string, isAdmin bool) (*domain.User, error)
	GetUser(ctx context.Context, id int32) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}

type CarService interface {
	CreateCar(ctx context.Context, car *domain.Car) (*domain.Car, error)
	GetCar(ctx context.Context, id int32) (*domain.Car, error)
	UpdateCar(ctx context.Context, id int32, car *domain.Car) (*domain.Car, error)
	DeleteCar(ctx context.Context, id int32) error
	ListCars(ctx context.Context) ([]domain.Car, error)
	SearchCars(ctx context.Context, query domain.CarSearchQuery) ([]domain.Car, error)
}

type CustomerService interface {
	CreateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	GetCustomer(ctx context.Context, id int32) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, id int32, customer *domain.Customer) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, id int32) error
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
}

type ReservationService interface {
	CreateReservation(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
	GetReservation(ctx context.Context, id int32) (*domain.Reservation, error)
	UpdateReservation(ctx context.Context, id int32, update domain.ReservationUpdate) (*domain.Reservation, error)
	DeleteReservation(ctx context.Context, id int32) error
	ListActiveReservations(ctx context.Context) ([]domain.Reservation, error)
	// CancelMissedReservations cancels NEW reservations whose start date
	// passed more than the grace period ago. Returns how many were cancelled.
	CancelMissedReservations(ctx context.Context, grace time.Duration) (int, error)
}

type RentalService interface {
	CreateRental(ctx context.Context, rental *domain.Rental) (*domain.Rental, error)
	GetRental(ctx context.Context, id int32) (*domain.Rental, error)
	UpdateRental(ctx context.Context, id int32, update domain.RentalUpdate) (*domain.Rental, error)
	DeleteRental(ctx context.Context, id int32) error
	ListRentals(ctx context.Context) ([]domain.Rental, error)
	ListOvertimeRentals(ctx context.Context) ([]domain.Rental, error)
}

type EmailService interface {
	SendOvertimeReport(ctx context.Context, toEmail string, rentals []domain.Rental) error
}
