package mocks

import (
	"context"

	"github.com/cdt-manas/Tikat/internal/domain"
)

type MockTheaterRepo struct {
	domain.TheaterRepository
	GetAllFunc  func(ctx context.Context, pagination domain.Pagination) ([]domain.Theater, *domain.Metadata, error)
	GetByIdFunc func(ctx context.Context, id int) (*domain.Theater, error)
	CreateFunc  func(ctx context.Context, theater *domain.Theater) error
	UpdateFunc  func(ctx context.Context, theater *domain.Theater) error
	DeleteFunc  func(ctx context.Context, id int) error
}

func (m *MockTheaterRepo) GetAll(
	ctx context.Context,
	pagination domain.Pagination) ([]domain.Theater, *domain.Metadata, error) {

	return m.GetAllFunc(ctx, pagination)
}

func (m *MockTheaterRepo) GetById(ctx context.Context, id int) (*domain.Theater, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockTheaterRepo) Create(ctx context.Context, theater *domain.Theater) error {
	return m.CreateFunc(ctx, theater)
}

func (m *MockTheaterRepo) Update(ctx context.Context, theater *domain.Theater) error {
	return m.UpdateFunc(ctx, theater)
}

func (m *MockTheaterRepo) Delete(ctx context.Context, id int) error {
	return m.DeleteFunc(ctx, id)
}
