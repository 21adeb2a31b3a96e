package domain

import "time"

type ReservationStatus string

const (
	ReservationStatusNew       ReservationStatus = "NEW"
	ReservationStatusCollected ReservationStatus = "COLLECTED"
	ReservationStatusCancelled ReservationStatus = "CANCELLED"
)

func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationStatusNew, ReservationStatusCollected, ReservationStatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transition may leave this status.
func (s ReservationStatus) Terminal() bool {
	return s == ReservationStatusCollected || s == ReservationStatusCancelled
}

type Reservation struct {
	ID         int32             `json:"id"`
	CarID      int32             `json:"car_id"`
	CustomerID int32             `json:"customer_id"`
	StartDate  time.Time         `json:"start_date"`
	EndDate    time.Time         `json:"end_date"`
	Status     ReservationStatus `json:"status"`
}

func (r *Reservation) Interval() Interval {
	return Interval{Start: r.StartDate, End: r.EndDate}
}

// ReservationUpdate is the payload of a generic reservation update. A nil
// Status preserves the stored status; status transitions are recognized by
// the reservation service, never assigned directly.
type ReservationUpdate struct {
	CarID      int32              `json:"car_id"`
	CustomerID int32              `json:"customer_id"`
	StartDate  time.Time          `json:"start_date"`
	EndDate    time.Time          `json:"end_date"`
	Status     *ReservationStatus `json:"status"`
}
