package service

import (
	"context"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository"
)

type reservationService struct {
	reservationRepo repository.ReservationRepository
	rentalRepo      repository.RentalRepository
	carRepo         repository.CarRepository
	customerRepo    repository.CustomerRepository
	availability    *AvailabilityChecker
}

func NewReservationService(
	reservationRepo repository.ReservationRepository,
	rentalRepo repository.RentalRepository,
	carRepo repository.CarRepository,
	customerRepo repository.CustomerRepository,
	availability *AvailabilityChecker,
) ReservationService {
	return &reservationService{
		reservationRepo: reservationRepo,
		rentalRepo:      rentalRepo,
		carRepo:         carRepo,
		customerRepo:    customerRepo,
		availability:    availability,
	}
}

func validateInterval(interval domain.Interval) error {
	if !interval.Valid() {
		return errStartDateNotBeforeEndDate
	}
	return nil
}

// startedInThePast compares at minute precision, so a start date within the
// current minute still counts as "now".
func startedInThePast(start time.Time, now time.Time) bool {
	return start.Truncate(time.Minute).Before(now.Truncate(time.Minute))
}

func (s *reservationService) validateReferences(ctx context.Context, carID, customerID int32) error {
	if _, err := s.carRepo.GetByID(ctx, carID); err != nil {
		return notFoundOr(err, "Car")
	}
	if _, err := s.customerRepo.GetByID(ctx, customerID); err != nil {
		return notFoundOr(err, "Customer")
	}
	return nil
}

// CreateReservation stores a new hold on a car. The caller-supplied status is
// ignored; every reservation starts NEW.
func (s *reservationService) CreateReservation(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	if err := s.validateReferences(ctx, reservation.CarID, reservation.CustomerID); err != nil {
		return nil, err
	}
	if err := validateInterval(reservation.Interval()); err != nil {
		return nil, err
	}
	if startedInThePast(reservation.StartDate, time.Now().UTC()) {
		return nil, errReservationInThePast
	}

	unlock := s.availability.LockCar(reservation.CarID)
	defer unlock()

	if err := s.availability.EnsureAvailable(ctx, reservation.CarID, reservation.Interval(), 0, 0); err != nil {
		return nil, err
	}

	reservation.Status = domain.ReservationStatusNew
	if err := s.reservationRepo.Create(ctx, reservation); err != nil {
		return nil, err
	}
	return reservation, nil
}

func (s *reservationService) GetReservation(ctx context.Context, id int32) (*domain.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Reservation")
	}
	return reservation, nil
}

// UpdateReservation applies a generic update. Terminal reservations reject
// any change. The status field is never assigned directly: nil preserves the
// stored status, CANCELLED runs the cancel transition and COLLECTED is only
// reachable through rental creation.
func (s *reservationService) UpdateReservation(ctx context.Context, id int32, update domain.ReservationUpdate) (*domain.Reservation, error) {
	reservation, err := s.GetReservation(ctx, id)
	if err != nil {
		return nil, err
	}

	switch reservation.Status {
	case domain.ReservationStatusCancelled:
		return nil, errUpdatingCancelledReservation
	case domain.ReservationStatusCollected:
		return nil, errUpdatingCollectedReservation
	}

	newStatus := reservation.Status
	if update.Status != nil {
		if !update.Status.Valid() {
			return nil, &ValidationError{Message: "invalid reservation status"}
		}
		switch *update.Status {
		case domain.ReservationStatusNew:
			// no transition
		case domain.ReservationStatusCancelled:
			newStatus = domain.ReservationStatusCancelled
		case domain.ReservationStatusCollected:
			return nil, errCollectViaUpdate
		}
	}

	if err := s.validateReferences(ctx, update.CarID, update.CustomerID); err != nil {
		return nil, err
	}
	interval := domain.Interval{Start: update.StartDate, End: update.EndDate}
	if err := validateInterval(interval); err != nil {
		return nil, err
	}

	unlock := s.availability.LockCar(update.CarID)
	defer unlock()

	// A reservation being cancelled no longer occupies the car, so collision
	// checking only applies while it stays NEW.
	if newStatus == domain.ReservationStatusNew {
		if err := s.availability.EnsureAvailable(ctx, update.CarID, interval, id, 0); err != nil {
			return nil, err
		}
	}

	reservation.CarID = update.CarID
	reservation.CustomerID = update.CustomerID
	reservation.StartDate = update.StartDate
	reservation.EndDate = update.EndDate
	reservation.Status = newStatus

	if err := s.reservationRepo.Update(ctx, reservation); err != nil {
		return nil, notFoundOr(err, "Reservation")
	}
	return reservation, nil
}

func (s *reservationService) DeleteReservation(ctx context.Context, id int32) error {
	if _, err := s.GetReservation(ctx, id); err != nil {
		return err
	}

	rentals, err := s.rentalRepo.CountByReservation(ctx, id)
	if err != nil {
		return err
	}
	if rentals > 0 {
		return &ConflictError{Message: "reservation is referenced by a rental"}
	}

	return s.reservationRepo.Delete(ctx, id)
}

func (s *reservationService) ListActiveReservations(ctx context.Context) ([]domain.Reservation, error) {
	return s.reservationRepo.ListActive(ctx)
}

// CancelMissedReservations cancels holds the customer never collected. A
// reservation counts as missed once its start date is more than the grace
// period in the past and it is still NEW.
func (s *reservationService) CancelMissedReservations(ctx context.Context, grace time.Duration) (int, error) {
	cutoff := time.Now().UTC().Add(-grace)
	missed, err := s.reservationRepo.ListMissed(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	cancelled := 0
	for i := range missed {
		reservation := missed[i]
		reservation.Status = domain.ReservationStatusCancelled
		if err := s.reservationRepo.Update(ctx, &reservation); err != nil {
			logger.Error("Failed to cancel missed reservation", "reservation_id", reservation.ID, "error", err)
			continue
		}
		cancelled++
	}
	return cancelled, nil
}
