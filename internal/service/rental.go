package service

import (
	"context"
	"errors"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type rentalService struct {
	rentalRepo      repository.RentalRepository
	reservationRepo repository.ReservationRepository
	carRepo         repository.CarRepository
	customerRepo    repository.CustomerRepository
	availability    *AvailabilityChecker
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	reservationRepo repository.ReservationRepository,
	carRepo repository.CarRepository,
	customerRepo repository.CustomerRepository,
	availability *AvailabilityChecker,
) RentalService {
	return &rentalService{
		rentalRepo:      rentalRepo,
		reservationRepo: reservationRepo,
		carRepo:         carRepo,
		customerRepo:    customerRepo,
		availability:    availability,
	}
}

func (s *rentalService) validateReferences(ctx context.Context, carID, customerID int32) error {
	if _, err := s.carRepo.GetByID(ctx, carID); err != nil {
		return notFoundOr(err, "Car")
	}
	if _, err := s.customerRepo.GetByID(ctx, customerID); err != nil {
		return notFoundOr(err, "Customer")
	}
	return nil
}

// validateReservationSync checks that a rental collected from a reservation
// keeps the reservation's car and customer.
func validateReservationSync(carID, customerID int32, reservation *domain.Reservation) error {
	if carID != reservation.CarID || customerID != reservation.CustomerID {
		return errRentalReservationMismatch
	}
	return nil
}

// CreateRental starts a rental, either standalone or by collecting a NEW
// reservation. The caller-supplied status is ignored; every rental starts
// IN_PROGRESS. Collecting marks the reservation COLLECTED in the same
// transaction as the insert.
func (s *rentalService) CreateRental(ctx context.Context, rental *domain.Rental) (*domain.Rental, error) {
	if err := s.validateReferences(ctx, rental.CarID, rental.CustomerID); err != nil {
		return nil, err
	}
	if err := validateInterval(rental.Interval()); err != nil {
		return nil, err
	}
	if startedInThePast(rental.StartDate, time.Now().UTC()) {
		return nil, errRentalInThePast
	}

	unlock := s.availability.LockCar(rental.CarID)
	defer unlock()

	rental.Status = domain.RentalStatusInProgress

	if rental.ReservationID == nil {
		if err := s.availability.EnsureAvailable(ctx, rental.CarID, rental.Interval(), 0, 0); err != nil {
			return nil, err
		}
		if err := s.rentalRepo.Create(ctx, rental); err != nil {
			return nil, err
		}
		return rental, nil
	}

	reservation, err := s.reservationRepo.GetByID(ctx, *rental.ReservationID)
	if err != nil {
		return nil, notFoundOr(err, "Reservation")
	}
	switch reservation.Status {
	case domain.ReservationStatusCancelled:
		return nil, errUpdatingCancelledReservation
	case domain.ReservationStatusCollected:
		return nil, errUpdatingCollectedReservation
	}
	if err := validateReservationSync(rental.CarID, rental.CustomerID, reservation); err != nil {
		return nil, err
	}
	// The source reservation holds this car for the same period on purpose.
	if err := s.availability.EnsureAvailable(ctx, rental.CarID, rental.Interval(), reservation.ID, 0); err != nil {
		return nil, err
	}

	if err := s.rentalRepo.CreateFromReservation(ctx, rental, reservation.ID); err != nil {
		// A concurrent transaction may have collected or cancelled the
		// reservation after the status check above.
		if errors.Is(err, repository.ErrReservationNotCollectable) {
			return nil, errReservationNotCollectable
		}
		return nil, err
	}
	return rental, nil
}

func (s *rentalService) GetRental(ctx context.Context, id int32) (*domain.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Rental")
	}
	return rental, nil
}

// UpdateRental applies a generic update. Completed rentals reject any change.
// A nil status preserves the stored status; COMPLETED runs the complete
// transition, which is terminal.
func (s *rentalService) UpdateRental(ctx context.Context, id int32, update domain.RentalUpdate) (*domain.Rental, error) {
	rental, err := s.GetRental(ctx, id)
	if err != nil {
		return nil, err
	}
	if rental.Status == domain.RentalStatusCompleted {
		return nil, errUpdatingCompletedRental
	}

	newStatus := rental.Status
	if update.Status != nil {
		if !update.Status.Valid() {
			return nil, &ValidationError{Message: "invalid rental status"}
		}
		newStatus = *update.Status
	}

	if err := s.validateReferences(ctx, update.CarID, update.CustomerID); err != nil {
		return nil, err
	}
	interval := domain.Interval{Start: update.StartDate, End: update.EndDate}
	if err := validateInterval(interval); err != nil {
		return nil, err
	}

	excludeReservation := int32(0)
	if update.ReservationID != nil {
		reservation, err := s.reservationRepo.GetByID(ctx, *update.ReservationID)
		if err != nil {
			return nil, notFoundOr(err, "Reservation")
		}
		if err := validateReservationSync(update.CarID, update.CustomerID, reservation); err != nil {
			return nil, err
		}
		excludeReservation = reservation.ID
	}

	unlock := s.availability.LockCar(update.CarID)
	defer unlock()

	// A rental being completed no longer occupies the car.
	if newStatus == domain.RentalStatusInProgress {
		if err := s.availability.EnsureAvailable(ctx, update.CarID, interval, excludeReservation, id); err != nil {
			return nil, err
		}
	}

	rental.CarID = update.CarID
	rental.CustomerID = update.CustomerID
	rental.ReservationID = update.ReservationID
	rental.StartDate = update.StartDate
	rental.EndDate = update.EndDate
	rental.Status = newStatus

	if err := s.rentalRepo.Update(ctx, rental); err != nil {
		return nil, notFoundOr(err, "Rental")
	}
	return rental, nil
}

func (s *rentalService) DeleteRental(ctx context.Context, id int32) error {
	if _, err := s.GetRental(ctx, id); err != nil {
		return err
	}
	return s.rentalRepo.Delete(ctx, id)
}

func (s *rentalService) ListRentals(ctx context.Context) ([]domain.Rental, error) {
	return s.rentalRepo.List(ctx)
}

func (s *rentalService) ListOvertimeRentals(ctx context.Context) ([]domain.Rental, error) {
	return s.rentalRepo.ListOvertime(ctx, time.Now().UTC())
}
