package postgres

import (
	"database/sql"

	"carrental-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.CarRepository
	repository.CustomerRepository
	repository.ReservationRepository
	repository.RentalRepository
	repository.UserRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		CarRepository:         NewCarRepository(db),
		CustomerRepository:    NewCustomerRepository(db),
		ReservationRepository: NewReservationRepository(db),
		RentalRepository:      NewRentalRepository(db),
		UserRepository:        NewUserRepository(db),
	}
}
