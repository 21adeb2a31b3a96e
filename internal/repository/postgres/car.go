package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

const carColumns = `id, model_name, type, fuel_type, gearbox_type, ac_type, drive_type, number_of_passengers, number_of_airbags, average_consumption, boot_capacity, price_per_day, deposit_amount, mileage_limit, image_base64, loading_capacity, boot_width, boot_height, boot_length, horsepower, zero_to_hundred_time, engine_capacity`

type carRepository struct {
	db *sql.DB
}

func NewCarRepository(db *sql.DB) repository.CarRepository {
	return &carRepository{db: db}
}

func scanCar(row interface{ Scan(...any) error }, c *domain.Car) error {
	return row.Scan(&c.ID, &c.ModelName, &c.Type, &c.FuelType, &c.GearboxType, &c.AcType, &c.DriveType,
		&c.NumberOfPassengers, &c.NumberOfAirbags, &c.AverageConsumption, &c.BootCapacity,
		&c.PricePerDay, &c.DepositAmount, &c.MileageLimit, &c.ImageBase64,
		&c.LoadingCapacity, &c.BootWidth, &c.BootHeight, &c.BootLength,
		&c.Horsepower, &c.ZeroToHundredTime, &c.EngineCapacity)
}

func (r *carRepository) Create(ctx context.Context, c *domain.Car) error {
	query := `INSERT INTO cars (model_name, type, fuel_type, gearbox_type, ac_type, drive_type, number_of_passengers, number_of_airbags, average_consumption, boot_capacity, price_per_day, deposit_amount, mileage_limit, image_base64, loading_capacity, boot_width, boot_height, boot_length, horsepower, zero_to_hundred_time, engine_capacity)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		c.ModelName, c.Type, c.FuelType, c.GearboxType, c.AcType, c.DriveType,
		c.NumberOfPassengers, c.NumberOfAirbags, c.AverageConsumption, c.BootCapacity,
		c.PricePerDay, c.DepositAmount, c.MileageLimit, c.ImageBase64,
		c.LoadingCapacity, c.BootWidth, c.BootHeight, c.BootLength,
		c.Horsepower, c.ZeroToHundredTime, c.EngineCapacity).Scan(&c.ID)
}

func (r *carRepository) GetByID(ctx context.Context, id int32) (*domain.Car, error) {
	c := &domain.Car{}
	query := `SELECT ` + carColumns + ` FROM cars WHERE id = $1`
	if err := scanCar(r.db.QueryRowContext(ctx, query, id), c); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *carRepository) Update(ctx context.Context, c *domain.Car) error {
	query := `UPDATE cars SET model_name=$1, type=$2, fuel_type=$3, gearbox_type=$4, ac_type=$5, drive_type=$6, number_of_passengers=$7, number_of_airbags=$8, average_consumption=$9, boot_capacity=$10, price_per_day=$11, deposit_amount=$12, mileage_limit=$13, image_base64=$14, loading_capacity=$15, boot_width=$16, boot_height=$17, boot_length=$18, horsepower=$19, zero_to_hundred_time=$20, engine_capacity=$21 WHERE id=$22`
	res, err := r.db.ExecContext(ctx, query,
		c.ModelName, c.Type, c.FuelType, c.GearboxType, c.AcType, c.DriveType,
		c.NumberOfPassengers, c.NumberOfAirbags, c.AverageConsumption, c.BootCapacity,
		c.PricePerDay, c.DepositAmount, c.MileageLimit, c.ImageBase64,
		c.LoadingCapacity, c.BootWidth, c.BootHeight, c.BootLength,
		c.Horsepower, c.ZeroToHundredTime, c.EngineCapacity, c.ID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *carRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cars WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *carRepository) List(ctx context.Context) ([]domain.Car, error) {
	query := `SELECT ` + carColumns + ` FROM cars ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cars []domain.Car
	for rows.Next() {
		var c domain.Car
		if err := scanCar(rows, &c); err != nil {
			return nil, err
		}
		cars = append(cars, c)
	}
	return cars, rows.Err()
}

// Search builds a WHERE clause from the optional criteria. The availability
// criterion is applied by the car service, not here.
func (r *carRepository) Search(ctx context.Context, q domain.CarSearchQuery) ([]domain.Car, error) {
	var conditions []string
	var args []interface{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if q.ModelName != nil {
		conditions = append(conditions, "model_name ILIKE "+arg("%"+*q.ModelName+"%"))
	}
	if q.Type != nil {
		conditions = append(conditions, "type = "+arg(*q.Type))
	}
	if q.FuelType != nil {
		conditions = append(conditions, "fuel_type = "+arg(*q.FuelType))
	}
	if q.GearboxType != nil {
		conditions = append(conditions, "gearbox_type = "+arg(*q.GearboxType))
	}
	if q.AcType != nil {
		conditions = append(conditions, "ac_type = "+arg(*q.AcType))
	}
	if q.DriveType != nil {
		conditions = append(conditions, "drive_type = "+arg(*q.DriveType))
	}
	if q.NumberOfPassengers != nil {
		conditions = append(conditions, fmt.Sprintf("number_of_passengers BETWEEN %s AND %s",
			arg(q.NumberOfPassengers.Start), arg(q.NumberOfPassengers.End)))
	}
	if q.PricePerDay != nil {
		conditions = append(conditions, fmt.Sprintf("price_per_day BETWEEN %s AND %s",
			arg(q.PricePerDay.Start), arg(q.PricePerDay.End)))
	}

	query := `SELECT ` + carColumns + ` FROM cars`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cars []domain.Car
	for rows.Next() {
		var c domain.Car
		if err := scanCar(rows, &c); err != nil {
			return nil, err
		}
		cars = append(cars, c)
	}
	return cars, rows.Err()
}

func requireRowAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
