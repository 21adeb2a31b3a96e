package domain

type CarType string

const (
	CarTypeCar   CarType = "CAR"
	CarTypeTruck CarType = "TRUCK"
	CarTypeSport CarType = "SPORT"
)

func (t CarType) Valid() bool {
	switch t {
	case CarTypeCar, CarTypeTruck, CarTypeSport:
		return true
	}
	return false
}

type FuelType string

const (
	FuelTypePetrol FuelType = "PETROL"
	FuelTypeDiesel FuelType = "DIESEL"
	FuelTypeHybrid FuelType = "HYBRID"
	FuelTypeEV     FuelType = "EV"
)

func (t FuelType) Valid() bool {
	switch t {
	case FuelTypePetrol, FuelTypeDiesel, FuelTypeHybrid, FuelTypeEV:
		return true
	}
	return false
}

type GearboxType string

const (
	GearboxTypeAuto   GearboxType = "AUTO"
	GearboxTypeManual GearboxType = "MANUAL"
)

func (t GearboxType) Valid() bool {
	return t == GearboxTypeAuto || t == GearboxTypeManual
}

type AcType string

const (
	AcTypeAuto   AcType = "AUTO"
	AcTypeManual AcType = "MANUAL"
)

func (t AcType) Valid() bool {
	return t == AcTypeAuto || t == AcTypeManual
}

type DriveType string

const (
	DriveTypeFront     DriveType = "FRONT"
	DriveTypeRear      DriveType = "REAR"
	DriveTypeAllWheels DriveType = "ALL_WHEELS"
)

func (t DriveType) Valid() bool {
	switch t {
	case DriveTypeFront, DriveTypeRear, DriveTypeAllWheels:
		return true
	}
	return false
}

// Car is a single rentable vehicle. The truck and sport attribute groups are
// stored for every row but are meaningful only when Type matches.
type Car struct {
	ID                 int32       `json:"id"`
	ModelName          string      `json:"model_name"`
	Type               CarType     `json:"type"`
	FuelType           FuelType    `json:"fuel_type"`
	GearboxType        GearboxType `json:"gearbox_type"`
	AcType             AcType      `json:"ac_type"`
	DriveType          DriveType   `json:"drive_type"`
	NumberOfPassengers int32       `json:"number_of_passengers"`
	NumberOfAirbags    int32       `json:"number_of_airbags"`
	AverageConsumption *float64    `json:"average_consumption,omitempty"`
	BootCapacity       *float64    `json:"boot_capacity,omitempty"`
	PricePerDay        float64     `json:"price_per_day"`
	DepositAmount      *float64    `json:"deposit_amount,omitempty"`
	MileageLimit       *float64    `json:"mileage_limit,omitempty"`
	ImageBase64        *string     `json:"image_base64,omitempty"`

	// TRUCK
	LoadingCapacity *float64 `json:"loading_capacity,omitempty"`
	BootWidth       *float64 `json:"boot_width,omitempty"`
	BootHeight      *float64 `json:"boot_height,omitempty"`
	BootLength      *float64 `json:"boot_length,omitempty"`

	// SPORT
	Horsepower        *int32   `json:"horsepower,omitempty"`
	ZeroToHundredTime *float64 `json:"zero_to_hundred_time,omitempty"`
	EngineCapacity    *float64 `json:"engine_capacity,omitempty"`
}
