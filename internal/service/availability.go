package service

import (
	"context"
	"sync"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

// AvailabilityChecker answers whether a car is free for a candidate interval.
// A car is taken by NEW reservations and IN_PROGRESS rentals; cancelled
// reservations and completed rentals never block.
//
// Check-then-create sequences must run under the per-car lock so two
// concurrent requests cannot both see the car free and double-book it.
type AvailabilityChecker struct {
	reservationRepo repository.ReservationRepository
	rentalRepo      repository.RentalRepository

	carLocks sync.Map // car id -> *sync.Mutex
}

func NewAvailabilityChecker(reservationRepo repository.ReservationRepository, rentalRepo repository.RentalRepository) *AvailabilityChecker {
	return &AvailabilityChecker{
		reservationRepo: reservationRepo,
		rentalRepo:      rentalRepo,
	}
}

// LockCar serializes availability-sensitive operations on one car. The
// returned function releases the lock.
func (a *AvailabilityChecker) LockCar(carID int32) func() {
	v, _ := a.carLocks.LoadOrStore(carID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// EnsureAvailable returns a conflict error when the interval collides with an
// active reservation or rental of the car. The exclude ids skip the entity
// being updated, where colliding with itself is meaningless.
func (a *AvailabilityChecker) EnsureAvailable(ctx context.Context, carID int32, interval domain.Interval, excludeReservationID, excludeRentalID int32) error {
	reservations, err := a.reservationRepo.ListActiveByCar(ctx, carID)
	if err != nil {
		return err
	}
	for _, other := range reservations {
		if other.ID == excludeReservationID {
			continue
		}
		if interval.Overlaps(other.Interval()) {
			return errReservationCollision
		}
	}

	rentals, err := a.rentalRepo.ListActiveByCar(ctx, carID)
	if err != nil {
		return err
	}
	for _, other := range rentals {
		if other.ID == excludeRentalID {
			continue
		}
		if interval.Overlaps(other.Interval()) {
			return errRentalCollision
		}
	}

	return nil
}

// CarAvailable is the boolean form of EnsureAvailable, used by the car search
// availability criterion.
func (a *AvailabilityChecker) CarAvailable(ctx context.Context, carID int32, interval domain.Interval) (bool, error) {
	err := a.EnsureAvailable(ctx, carID, interval, 0, 0)
	if err == nil {
		return true, nil
	}
	if _, ok := err.(*ConflictError); ok {
		return false, nil
	}
	return false, err
}
