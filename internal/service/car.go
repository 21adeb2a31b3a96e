package service

import (
	"context"
	"database/sql"
	"errors"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"

	"github.com/lib/pq"
)

type carService struct {
	carRepo         repository.CarRepository
	reservationRepo repository.ReservationRepository
	rentalRepo      repository.RentalRepository
	availability    *AvailabilityChecker
}

func NewCarService(
	carRepo repository.CarRepository,
	reservationRepo repository.ReservationRepository,
	rentalRepo repository.RentalRepository,
	availability *AvailabilityChecker,
) CarService {
	return &carService{
		carRepo:         carRepo,
		reservationRepo: reservationRepo,
		rentalRepo:      rentalRepo,
		availability:    availability,
	}
}

func validateCar(c *domain.Car) error {
	if c.ModelName == "" {
		return &ValidationError{Message: "model_name is required"}
	}
	if !c.Type.Valid() {
		return &ValidationError{Message: "invalid car type"}
	}
	if !c.FuelType.Valid() {
		return &ValidationError{Message: "invalid fuel type"}
	}
	if !c.GearboxType.Valid() {
		return &ValidationError{Message: "invalid gearbox type"}
	}
	if !c.AcType.Valid() {
		return &ValidationError{Message: "invalid ac type"}
	}
	if !c.DriveType.Valid() {
		return &ValidationError{Message: "invalid drive type"}
	}
	if c.NumberOfPassengers <= 0 {
		return &ValidationError{Message: "number_of_passengers has to be greater than zero"}
	}
	if c.PricePerDay <= 0 {
		return &ValidationError{Message: "price_per_day has to be greater than zero"}
	}
	if c.DepositAmount != nil && *c.DepositAmount < 0 {
		return &ValidationError{Message: "deposit_amount cannot be negative"}
	}
	return nil
}

func (s *carService) CreateCar(ctx context.Context, car *domain.Car) (*domain.Car, error) {
	if err := validateCar(car); err != nil {
		return nil, err
	}
	if err := s.carRepo.Create(ctx, car); err != nil {
		return nil, err
	}
	return car, nil
}

func (s *carService) GetCar(ctx context.Context, id int32) (*domain.Car, error) {
	car, err := s.carRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Car")
	}
	return car, nil
}

func (s *carService) UpdateCar(ctx context.Context, id int32, car *domain.Car) (*domain.Car, error) {
	if _, err := s.GetCar(ctx, id); err != nil {
		return nil, err
	}
	if err := validateCar(car); err != nil {
		return nil, err
	}
	car.ID = id
	if err := s.carRepo.Update(ctx, car); err != nil {
		return nil, notFoundOr(err, "Car")
	}
	return car, nil
}

func (s *carService) DeleteCar(ctx context.Context, id int32) error {
	if _, err := s.GetCar(ctx, id); err != nil {
		return err
	}

	reservations, err := s.reservationRepo.CountActiveByCar(ctx, id)
	if err != nil {
		return err
	}
	rentals, err := s.rentalRepo.CountActiveByCar(ctx, id)
	if err != nil {
		return err
	}
	if reservations > 0 || rentals > 0 {
		return &ConflictError{Message: "car has active reservations or rentals"}
	}

	return conflictOnReference(s.carRepo.Delete(ctx, id), "car has reservation or rental history")
}

func (s *carService) ListCars(ctx context.Context) ([]domain.Car, error) {
	return s.carRepo.List(ctx)
}

// SearchCars filters on the SQL criteria first, then drops cars that are not
// free for the requested availability interval.
func (s *carService) SearchCars(ctx context.Context, query domain.CarSearchQuery) ([]domain.Car, error) {
	if query.NumberOfPassengers != nil && query.NumberOfPassengers.Start > query.NumberOfPassengers.End {
		return nil, &ValidationError{Message: "number_of_passengers range start has to be less than or equal to end"}
	}
	if query.PricePerDay != nil && query.PricePerDay.Start > query.PricePerDay.End {
		return nil, &ValidationError{Message: "price_per_day range start has to be less than or equal to end"}
	}
	if query.AvailabilityDates != nil && !query.AvailabilityDates.Interval().Valid() {
		return nil, errStartDateNotBeforeEndDate
	}

	cars, err := s.carRepo.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	if query.AvailabilityDates == nil {
		return cars, nil
	}

	interval := query.AvailabilityDates.Interval()
	available := make([]domain.Car, 0, len(cars))
	for _, car := range cars {
		free, err := s.availability.CarAvailable(ctx, car.ID, interval)
		if err != nil {
			return nil, err
		}
		if free {
			available = append(available, car)
		}
	}
	return available, nil
}

// notFoundOr maps a missing row onto the API's not-found taxonomy and leaves
// every other error untouched.
func notFoundOr(err error, resource string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return &NotFoundError{Resource: resource}
	}
	return err
}

// conflictOnReference maps a foreign-key violation onto the conflict
// taxonomy. Terminal reservations and rentals keep referencing their car and
// customer rows after the active-reference counts pass, so the database can
// still reject the delete.
func conflictOnReference(err error, message string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23503" {
		return &ConflictError{Message: message}
	}
	return err
}
