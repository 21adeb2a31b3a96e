package service

import (
	"context"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type customerService struct {
	customerRepo    repository.CustomerRepository
	reservationRepo repository.ReservationRepository
	rentalRepo      repository.RentalRepository
}

func NewCustomerService(
	customerRepo repository.CustomerRepository,
	reservationRepo repository.ReservationRepository,
	rentalRepo repository.RentalRepository,
) CustomerService {
	return &customerService{
		customerRepo:    customerRepo,
		reservationRepo: reservationRepo,
		rentalRepo:      rentalRepo,
	}
}

func (s *customerService) CreateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	if customer.FullName == "" {
		return nil, &ValidationError{Message: "full_name is required"}
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) GetCustomer(ctx context.Context, id int32) (*domain.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Customer")
	}
	return customer, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, id int32, customer *domain.Customer) (*domain.Customer, error) {
	if _, err := s.GetCustomer(ctx, id); err != nil {
		return nil, err
	}
	if customer.FullName == "" {
		return nil, &ValidationError{Message: "full_name is required"}
	}
	customer.ID = id
	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, notFoundOr(err, "Customer")
	}
	return customer, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, id int32) error {
	if _, err := s.GetCustomer(ctx, id); err != nil {
		return err
	}

	reservations, err := s.reservationRepo.CountActiveByCustomer(ctx, id)
	if err != nil {
		return err
	}
	rentals, err := s.rentalRepo.CountActiveByCustomer(ctx, id)
	if err != nil {
		return err
	}
	if reservations > 0 || rentals > 0 {
		return &ConflictError{Message: "customer has active reservations or rentals"}
	}

	return conflictOnReference(s.customerRepo.Delete(ctx, id), "customer has reservation or rental history")
}

func (s *customerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return s.customerRepo.List(ctx)
}
