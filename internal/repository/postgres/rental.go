package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

const rentalColumns = `id, car_id, customer_id, reservation_id, start_date, end_date, status`

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	query := `INSERT INTO rentals (car_id, customer_id, reservation_id, start_date, end_date, status) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRowContext(ctx, query, rt.CarID, rt.CustomerID, rt.ReservationID, rt.StartDate, rt.EndDate, rt.Status).Scan(&rt.ID)
}

// CreateFromReservation collects the reservation and inserts the rental
// atomically. The reservation must still be NEW when the transaction runs.
func (r *rentalRepository) CreateFromReservation(ctx context.Context, rt *domain.Rental, reservationID int32) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE reservations SET status=$1 WHERE id=$2 AND status=$3`,
		domain.ReservationStatusCollected, reservationID, domain.ReservationStatusNew)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("reservation %d: %w", reservationID, repository.ErrReservationNotCollectable)
	}

	query := `INSERT INTO rentals (car_id, customer_id, reservation_id, start_date, end_date, status) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	if err := tx.QueryRowContext(ctx, query, rt.CarID, rt.CustomerID, rt.ReservationID, rt.StartDate, rt.EndDate, rt.Status).Scan(&rt.ID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *rentalRepository) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	rt := &domain.Rental{}
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&rt.ID, &rt.CarID, &rt.CustomerID, &rt.ReservationID, &rt.StartDate, &rt.EndDate, &rt.Status)
	if err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *rentalRepository) Update(ctx context.Context, rt *domain.Rental) error {
	query := `UPDATE rentals SET car_id=$1, customer_id=$2, reservation_id=$3, start_date=$4, end_date=$5, status=$6 WHERE id=$7`
	res, err := r.db.ExecContext(ctx, query, rt.CarID, rt.CustomerID, rt.ReservationID, rt.StartDate, rt.EndDate, rt.Status, rt.ID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *rentalRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM rentals WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *rentalRepository) List(ctx context.Context) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals ORDER BY id`
	return r.listRentals(ctx, query)
}

func (r *rentalRepository) ListActiveByCar(ctx context.Context, carID int32) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE car_id = $1 AND status = $2 ORDER BY id`
	return r.listRentals(ctx, query, carID, domain.RentalStatusInProgress)
}

func (r *rentalRepository) ListOvertime(ctx context.Context, now time.Time) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE status = $1 AND end_date < $2 ORDER BY id`
	return r.listRentals(ctx, query, domain.RentalStatusInProgress, now)
}

func (r *rentalRepository) CountActiveByCar(ctx context.Context, carID int32) (int32, error) {
	var count int32
	query := `SELECT count(*) FROM rentals WHERE car_id = $1 AND status = $2`
	err := r.db.QueryRowContext(ctx, query, carID, domain.RentalStatusInProgress).Scan(&count)
	return count, err
}

func (r *rentalRepository) CountActiveByCustomer(ctx context.Context, customerID int32) (int32, error) {
	var count int32
	query := `SELECT count(*) FROM rentals WHERE customer_id = $1 AND status = $2`
	err := r.db.QueryRowContext(ctx, query, customerID, domain.RentalStatusInProgress).Scan(&count)
	return count, err
}

func (r *rentalRepository) CountByReservation(ctx context.Context, reservationID int32) (int32, error) {
	var count int32
	query := `SELECT count(*) FROM rentals WHERE reservation_id = $1`
	err := r.db.QueryRowContext(ctx, query, reservationID).Scan(&count)
	return count, err
}

func (r *rentalRepository) listRentals(ctx context.Context, query string, args ...interface{}) ([]domain.Rental, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		var rt domain.Rental
		if err := rows.Scan(&rt.ID, &rt.CarID, &rt.CustomerID, &rt.ReservationID, &rt.StartDate, &rt.EndDate, &rt.Status); err != nil {
			return nil, err
		}
		rentals = append(rentals, rt)
	}
	return rentals, rows.Err()
}
