package service_test

import (
	"context"
	"testing"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type reservationFixture struct {
	reservationRepo *MockReservationRepo
	rentalRepo      *MockRentalRepo
	carRepo         *MockCarRepo
	customerRepo    *MockCustomerRepo
	svc             service.ReservationService
}

func newReservationFixture() *reservationFixture {
	f := &reservationFixture{
		reservationRepo: new(MockReservationRepo),
		rentalRepo:      new(MockRentalRepo),
		carRepo:         new(MockCarRepo),
		customerRepo:    new(MockCustomerRepo),
	}
	availability := service.NewAvailabilityChecker(f.reservationRepo, f.rentalRepo)
	f.svc = service.NewReservationService(f.reservationRepo, f.rentalRepo, f.carRepo, f.customerRepo, availability)
	return f
}

func (f *reservationFixture) expectReferences(ctx context.Context, carID, customerID int32) {
	f.carRepo.On("GetByID", ctx, carID).Return(&domain.Car{ID: carID}, nil)
	f.customerRepo.On("GetByID", ctx, customerID).Return(&domain.Customer{ID: customerID}, nil)
}

func (f *reservationFixture) expectNoCollisions(ctx context.Context, carID int32) {
	f.reservationRepo.On("ListActiveByCar", ctx, carID).Return([]domain.Reservation{}, nil)
	f.rentalRepo.On("ListActiveByCar", ctx, carID).Return([]domain.Rental{}, nil)
}

func futureDate(days int) time.Time {
	return time.Now().UTC().AddDate(0, 0, days).Truncate(time.Hour)
}

func TestReservationService_CreateReservation(t *testing.T) {
	ctx := context.Background()

	t.Run("Success forces NEW status", func(t *testing.T) {
		f := newReservationFixture()
		f.expectReferences(ctx, 1, 2)
		f.expectNoCollisions(ctx, 1)
		f.reservationRepo.On("Create", ctx, mock.AnythingOfType("*domain.Reservation")).Return(nil)

		res, err := f.svc.CreateReservation(ctx, &domain.Reservation{
			CarID:      1,
			CustomerID: 2,
			StartDate:  futureDate(1),
			EndDate:    futureDate(3),
			Status:     domain.ReservationStatusCollected, // caller cannot pick a status
		})
		assert.NoError(t, err)
		assert.Equal(t, domain.ReservationStatusNew, res.Status)
	})

	t.Run("Unknown car", func(t *testing.T) {
		f := newReservationFixture()
		f.carRepo.On("GetByID", ctx, int32(99)).Return(nil, errNoRows())

		_, err := f.svc.CreateReservation(ctx, &domain.Reservation{
			CarID:      99,
			CustomerID: 2,
			StartDate:  futureDate(1),
			EndDate:    futureDate(3),
		})
		assert.Error(t, err)
		var notFound *service.NotFoundError
		assert.ErrorAs(t, err, &notFound)
		assert.Equal(t, "Car", notFound.Resource)
	})

	t.Run("Start date not before end date", func(t *testing.T) {
		f := newReservationFixture()
		f.expectReferences(ctx, 1, 2)

		_, err := f.svc.CreateReservation(ctx, &domain.Reservation{
			CarID:      1,
			CustomerID: 2,
			StartDate:  futureDate(3),
			EndDate:    futureDate(1),
		})
		var validation *service.ValidationError
		assert.ErrorAs(t, err, &validation)
	})

	t.Run("Start date in the past", func(t *testing.T) {
		f := newReservationFixture()
		f.expectReferences(ctx, 1, 2)

		_, err := f.svc.CreateReservation(ctx, &domain.Reservation{
			CarID:      1,
			CustomerID: 2,
			StartDate:  time.Now().UTC().Add(-2 * time.Hour),
			EndDate:    futureDate(1),
		})
		var validation *service.ValidationError
		assert.ErrorAs(t, err, &validation)
		assert.Contains(t, err.Error(), "past")
	})

	t.Run("Collision with active reservation", func(t *testing.T) {
		f := newReservationFixture()
		f.expectReferences(ctx, 1, 2)
		f.reservationRepo.On("ListActiveByCar", ctx, int32(1)).Return([]domain.Reservation{
			{ID: 7, CarID: 1, StartDate: futureDate(2), EndDate: futureDate(4), Status: domain.ReservationStatusNew},
		}, nil)

		_, err := f.svc.CreateReservation(ctx, &domain.Reservation{
			CarID:      1,
			CustomerID: 2,
			StartDate:  futureDate(1),
			EndDate:    futureDate(3),
		})
		var conflict *service.ConflictError
		assert.ErrorAs(t, err, &conflict)
		f.reservationRepo.AssertNotCalled(t, "Create", ctx, mock.Anything)
	})

	t.Run("Back-to-back with existing reservation succeeds", func(t *testing.T) {
		f := newReservationFixture()
		f.expectReferences(ctx, 1, 2)
		f.reservationRepo.On("ListActiveByCar", ctx, int32(1)).Return([]domain.Reservation{
			{ID: 7, CarID: 1, StartDate: futureDate(3), EndDate: futureDate(5), Status: domain.ReservationStatusNew},
		}, nil)
		f.rentalRepo.On("ListActiveByCar", ctx, int32(1)).Return([]domain.Rental{}, nil)
		f.reservationRepo.On("Create", ctx, mock.AnythingOfType("*domain.Reservation")).Return(nil)

		_, err := f.svc.CreateReservation(ctx, &domain.Reservation{
			CarID:      1,
			CustomerID: 2,
			StartDate:  futureDate(1),
			EndDate:    futureDate(3), // ends exactly when the other starts
		})
		assert.NoError(t, err)
	})

	t.Run("Collision with in-progress rental", func(t *testing.T) {
		f := newReservationFixture()
		f.expectReferences(ctx, 1, 2)
		f.reservationRepo.On("ListActiveByCar", ctx, int32(1)).Return([]domain.Reservation{}, nil)
		f.rentalRepo.On("ListActiveByCar", ctx, int32(1)).Return([]domain.Rental{
			{ID: 9, CarID: 1, StartDate: futureDate(2), EndDate: futureDate(4), Status: domain.RentalStatusInProgress},
		}, nil)

		_, err := f.svc.CreateReservation(ctx, &domain.Reservation{
			CarID:      1,
			CustomerID: 2,
			StartDate:  futureDate(1),
			EndDate:    futureDate(3),
		})
		var conflict *service.ConflictError
		assert.ErrorAs(t, err, &conflict)
	})
}

func TestReservationService_UpdateReservation(t *testing.T) {
	ctx := context.Background()

	stored := func(status domain.ReservationStatus) *domain.Reservation {
		return &domain.Reservation{
			ID:         5,
			CarID:      1,
			CustomerID: 2,
			StartDate:  futureDate(1),
			EndDate:    futureDate(3),
			Status:     status,
		}
	}
	update := domain.ReservationUpdate{
		CarID:      1,
		CustomerID: 2,
		StartDate:  futureDate(2),
		EndDate:    futureDate(4),
	}

	t.Run("Nil status preserves stored status", func(t *testing.T) {
		f := newReservationFixture()
		f.reservationRepo.On("GetByID", ctx, int32(5)).Return(stored(domain.ReservationStatusNew), nil)
		f.expectReferences(ctx, 1, 2)
		f.expectNoCollisions(ctx, 1)
		f.reservationRepo.On("Update", ctx, mock.AnythingOfType("*domain.Reservation")).Return(nil)

		res, err := f.svc.UpdateReservation(ctx, 5, update)
		assert.NoError(t, err)
		assert.Equal(t, domain.ReservationStatusNew, res.Status)
		assert.Equal(t, update.StartDate, res.StartDate)
	})

	t.Run("Own interval excluded from collision check", func(t *testing.T) {
		f := newReservationFixture()
		f.reservationRepo.On("GetByID", ctx, int32(5)).Return(stored(domain.ReservationStatusNew), nil)
		f.expectReferences(ctx, 1, 2)
		// The only active hold on the car is the reservation being updated.
		f.reservationRepo.On("ListActiveByCar", ctx, int32(1)).Return([]domain.Reservation{*stored(domain.ReservationStatusNew)}, nil)
		f.rentalRepo.On("ListActiveByCar", ctx, int32(1)).Return([]domain.Rental{}, nil)
		f.reservationRepo.On("Update", ctx, mock.AnythingOfType("*domain.Reservation")).Return(nil)

		_, err := f.svc.UpdateReservation(ctx, 5, update)
		assert.NoError(t, err)
	})

	t.Run("Cancelled reservation rejects update", func(t *testing.T) {
		f := newReservationFixture()
		f.reservationRepo.On("GetByID", ctx, int32(5)).Return(stored(domain.ReservationStatusCancelled), nil)

		_, err := f.svc.UpdateReservation(ctx, 5, update)
		var conflict *service.ConflictError
		assert.ErrorAs(t, err, &conflict)
		assert.Contains(t, err.Error(), "cancelled")
	})

	t.Run("Collected reservation rejects update", func(t *testing.T) {
		f := newReservationFixture()
		f.reservationRepo.On("GetByID", ctx, int32(5)).Return(stored(domain.ReservationStatusCollected), nil)

		_, err := f.svc.UpdateReservation(ctx, 5, update)
		var conflict *service.ConflictError
		assert.ErrorAs(t, err, &conflict)
		assert.Contains(t, err.Error(), "collected")
	})

	t.Run("COLLECTED only reachable through rental creation", func(t *testing.T) {
		f := newReservationFixture()
		f.reservationRepo.On("GetByID", ctx, int32(5)).Return(stored(domain.ReservationStatusNew), nil)

		collected := domain.ReservationStatusCollected
		withStatus := update
		withStatus.Status = &collected

		_, err := f.svc.UpdateReservation(ctx, 5, withStatus)
		var conflict *service.ConflictError
		assert.ErrorAs(t, err, &conflict)
	})

	t.Run("Cancelling skips the collision check", func(t *testing.T) {
		f := newReservationFixture()
		f.reservationRepo.On("GetByID", ctx, int32(5)).Return(stored(domain.ReservationStatusNew), nil)
		f.expectReferences(ctx, 1, 2)
		f.reservationRepo.On("Update", ctx, mock.AnythingOfType("*domain.Reservation")).Return(nil)

		cancelled := domain.ReservationStatusCancelled
		withStatus := update
		withStatus.Status = &cancelled

		res, err := f.svc.UpdateReservation(ctx, 5, withStatus)
		assert.NoError(t, err)
		assert.Equal(t, domain.ReservationStatusCancelled, res.Status)
		f.reservationRepo.AssertNotCalled(t, "ListActiveByCar", ctx, mock.Anything)
	})
}

func TestReservationService_DeleteReservation(t *testing.T) {
	ctx := context.Background()
	stored := &domain.Reservation{ID: 5, CarID: 1, CustomerID: 2, Status: domain.ReservationStatusCollected}

	t.Run("Success", func(t *testing.T) {
		f := newReservationFixture()
		f.reservationRepo.On("GetByID", ctx, int32(5)).Return(stored, nil)
		f.rentalRepo.On("CountByReservation", ctx, int32(5)).Return(int32(0), nil)
		f.reservationRepo.On("Delete", ctx, int32(5)).Return(nil)

		assert.NoError(t, f.svc.DeleteReservation(ctx, 5))
	})

	t.Run("Referenced by rental", func(t *testing.T) {
		f := newReservationFixture()
		f.reservationRepo.On("GetByID", ctx, int32(5)).Return(stored, nil)
		f.rentalRepo.On("CountByReservation", ctx, int32(5)).Return(int32(1), nil)

		err := f.svc.DeleteReservation(ctx, 5)
		var conflict *service.ConflictError
		assert.ErrorAs(t, err, &conflict)
		f.reservationRepo.AssertNotCalled(t, "Delete", ctx, int32(5))
	})
}

func TestReservationService_CancelMissedReservations(t *testing.T) {
	ctx := context.Background()

	t.Run("Cancels every missed hold", func(t *testing.T) {
		f := newReservationFixture()
		missed := []domain.Reservation{
			{ID: 1, CarID: 1, Status: domain.ReservationStatusNew},
			{ID: 2, CarID: 2, Status: domain.ReservationStatusNew},
		}
		f.reservationRepo.On("ListMissed", ctx, mock.AnythingOfType("time.Time")).Return(missed, nil)
		f.reservationRepo.On("Update", ctx, mock.MatchedBy(func(r *domain.Reservation) bool {
			return r.Status == domain.ReservationStatusCancelled
		})).Return(nil)

		cancelled, err := f.svc.CancelMissedReservations(ctx, time.Hour)
		assert.NoError(t, err)
		assert.Equal(t, 2, cancelled)
		f.reservationRepo.AssertNumberOfCalls(t, "Update", 2)
	})

	t.Run("Keeps going after a failed update", func(t *testing.T) {
		f := newReservationFixture()
		missed := []domain.Reservation{
			{ID: 1, Status: domain.ReservationStatusNew},
			{ID: 2, Status: domain.ReservationStatusNew},
		}
		f.reservationRepo.On("ListMissed", ctx, mock.AnythingOfType("time.Time")).Return(missed, nil)
		f.reservationRepo.On("Update", ctx, mock.MatchedBy(func(r *domain.Reservation) bool { return r.ID == 1 })).Return(errNoRows())
		f.reservationRepo.On("Update", ctx, mock.MatchedBy(func(r *domain.Reservation) bool { return r.ID == 2 })).Return(nil)

		cancelled, err := f.svc.CancelMissedReservations(ctx, time.Hour)
		assert.NoError(t, err)
		assert.Equal(t, 1, cancelled)
	})
}
