package mocks

import (
	"context"

	"github.com/cdt-manas/Tikat/internal/domain"
)

type MockUserRepo struct {
	domain.UserRepository
	GetByIdFunc func(ctx context.Context, id int) (*domain.User, error)
}

func (m *MockUserRepo) GetById(ctx context.Context, id int) (*domain.User, error) {
	return m.GetByIdFunc(ctx, id)
}
