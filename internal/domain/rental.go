package domain

import "time"

type RentalStatus string

const (
	RentalStatusInProgress RentalStatus = "IN_PROGRESS"
	RentalStatusCompleted  RentalStatus = "COMPLETED"
)

func (s RentalStatus) Valid() bool {
	return s == RentalStatusInProgress || s == RentalStatusCompleted
}

// Rental is an active or finished usage period of a car. ReservationID links
// back to the reservation it was collected from, if any.
type Rental struct {
	ID            int32        `json:"id"`
	CarID         int32        `json:"car_id"`
	CustomerID    int32        `json:"customer_id"`
	ReservationID *int32       `json:"reservation_id,omitempty"`
	StartDate     time.Time    `json:"start_date"`
	EndDate       time.Time    `json:"end_date"`
	Status        RentalStatus `json:"status"`
}

func (r *Rental) Interval() Interval {
	return Interval{Start: r.StartDate, End: r.EndDate}
}

// Overtime reports whether the rental is still in progress past its agreed
// end date. This is derived at query time, never stored.
func (r *Rental) Overtime(now time.Time) bool {
	return r.Status == RentalStatusInProgress && now.After(r.EndDate)
}

// RentalUpdate is the payload of a generic rental update. A nil Status
// preserves the stored status.
type RentalUpdate struct {
	CarID         int32         `json:"car_id"`
	CustomerID    int32         `json:"customer_id"`
	ReservationID *int32        `json:"reservation_id"`
	StartDate     time.Time     `json:"start_date"`
	EndDate       time.Time     `json:"end_date"`
	Status        *RentalStatus `json:"status"`
}
