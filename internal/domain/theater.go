package domain

import (
	"context"
	"time"
)

type Theater struct {
	ID        int
	Name      string
	City      string
	Address   string
	Screens   []Screen
	CreatedAt time.Time
}

// ScreenByName returns the screen with the given name, or nil if the
// theater has no such screen.
func (t *Theater) ScreenByName(name string) *Screen {
	for i := range t.Screens {
		if t.Screens[i].Name == name {
			return &t.Screens[i]
		}
	}

	return nil
}

type TheaterRepository interface {
	GetAll(ctx context.Context, pagination Pagination) ([]Theater, *Metadata, error)
	GetById(ctx context.Context, id int) (*Theater, error)
	Create(ctx context.Context, theater *Theater) error
	Update(ctx context.Context, theater *Theater) error
	Delete(ctx context.Context, id int) error
}
