package postgres

import (
	"context"
	"database/sql"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

const reservationColumns = `id, car_id, customer_id, start_date, end_date, status`

type reservationRepository struct {
	db *sql.DB
}

func NewReservationRepository(db *sql.DB) repository.ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) Create(ctx context.Context, rv *domain.Reservation) error {
	query := `INSERT INTO reservations (car_id, customer_id, start_date, end_date, status) VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRowContext(ctx, query, rv.CarID, rv.CustomerID, rv.StartDate, rv.EndDate, rv.Status).Scan(&rv.ID)
}

func (r *reservationRepository) GetByID(ctx context.Context, id int32) (*domain.Reservation, error) {
	rv := &domain.Reservation{}
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&rv.ID, &rv.CarID, &rv.CustomerID, &rv.StartDate, &rv.EndDate, &rv.Status)
	if err != nil {
		return nil, err
	}
	return rv, nil
}

func (r *reservationRepository) Update(ctx context.Context, rv *domain.Reservation) error {
	query := `UPDATE reservations SET car_id=$1, customer_id=$2, start_date=$3, end_date=$4, status=$5 WHERE id=$6`
	res, err := r.db.ExecContext(ctx, query, rv.CarID, rv.CustomerID, rv.StartDate, rv.EndDate, rv.Status, rv.ID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *reservationRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *reservationRepository) ListActive(ctx context.Context) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE status = $1 ORDER BY id`
	return r.list(ctx, query, domain.ReservationStatusNew)
}

func (r *reservationRepository) ListActiveByCar(ctx context.Context, carID int32) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE car_id = $1 AND status = $2 ORDER BY id`
	return r.list(ctx, query, carID, domain.ReservationStatusNew)
}

func (r *reservationRepository) ListMissed(ctx context.Context, before time.Time) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE status = $1 AND start_date < $2 ORDER BY id`
	return r.list(ctx, query, domain.ReservationStatusNew, before)
}

func (r *reservationRepository) CountActiveByCar(ctx context.Context, carID int32) (int32, error) {
	var count int32
	query := `SELECT count(*) FROM reservations WHERE car_id = $1 AND status = $2`
	err := r.db.QueryRowContext(ctx, query, carID, domain.ReservationStatusNew).Scan(&count)
	return count, err
}

func (r *reservationRepository) CountActiveByCustomer(ctx context.Context, customerID int32) (int32, error) {
	var count int32
	query := `SELECT count(*) FROM reservations WHERE customer_id = $1 AND status = $2`
	err := r.db.QueryRowContext(ctx, query, customerID, domain.ReservationStatusNew).Scan(&count)
	return count, err
}

func (r *reservationRepository) list(ctx context.Context, query string, args ...interface{}) ([]domain.Reservation, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reservations []domain.Reservation
	for rows.Next() {
		var rv domain.Reservation
		if err := rows.Scan(&rv.ID, &rv.CarID, &rv.CustomerID, &rv.StartDate, &rv.EndDate, &rv.Status); err != nil {
			return nil, err
		}
		reservations = append(reservations, rv)
	}
	return reservations, rows.Err()
}
