package mocks

import (
	"context"

	"github.com/cdt-manas/Tikat/internal/domain"
)

type MockShowRepo struct {
	domain.ShowRepository
	GetAllFunc  func(ctx context.Context, filters domain.ShowFilters) ([]domain.ShowSummary, error)
	GetByIdFunc func(ctx context.Context, id int) (*domain.Show, error)
	CreateFunc  func(ctx context.Context, show *domain.Show) error
	DeleteFunc  func(ctx context.Context, id int) error
}

func (m *MockShowRepo) GetAll(ctx context.Context, filters domain.ShowFilters) ([]domain.ShowSummary, error) {
	return m.GetAllFunc(ctx, filters)
}

func (m *MockShowRepo) GetById(ctx context.Context, id int) (*domain.Show, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockShowRepo) Create(ctx context.Context, show *domain.Show) error {
	return m.CreateFunc(ctx, show)
}

func (m *MockShowRepo) Delete(ctx context.Context, id int) error {
	return m.DeleteFunc(ctx, id)
}
