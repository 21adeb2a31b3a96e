package domain

import "time"

// IntRange is an inclusive integer range criterion.
type IntRange struct {
	Start int32 `json:"start"`
	End   int32 `json:"end"`
}

// DecimalRange is an inclusive decimal range criterion.
type DecimalRange struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// DateRange is the candidate interval of an availability criterion.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (r DateRange) Interval() Interval {
	return Interval{Start: r.Start, End: r.End}
}

// CarSearchQuery holds the optional, AND-combined car search criteria.
// Absent criteria impose no constraint.
type CarSearchQuery struct {
	ModelName          *string       `json:"model_name,omitempty"`
	Type               *CarType      `json:"type,omitempty"`
	FuelType           *FuelType     `json:"fuel_type,omitempty"`
	GearboxType        *GearboxType  `json:"gearbox_type,omitempty"`
	AcType             *AcType       `json:"ac_type,omitempty"`
	DriveType          *DriveType    `json:"drive_type,omitempty"`
	NumberOfPassengers *IntRange     `json:"number_of_passengers,omitempty"`
	PricePerDay        *DecimalRange `json:"price_per_day,omitempty"`
	AvailabilityDates  *DateRange    `json:"availability_dates,omitempty"`
}
