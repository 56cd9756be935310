package memory

import (
	"context"

	"github.com/jhoicas/stockbridge-api/internal/domain/entity"
	"github.com/jhoicas/stockbridge-api/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo tiendas y destinos fijos.
type LocationRepo struct {
	locations []entity.Location
}

func NewLocationRepository(locations []entity.Location) *LocationRepo {
	cp := make([]entity.Location, len(locations))
	copy(cp, locations)
	return &LocationRepo{locations: cp}
}

func (r *LocationRepo) List(ctx context.Context) ([]entity.Location, error) {
	out := make([]entity.Location, len(r.locations))
	copy(out, r.locations)
	return out, nil
}

func (r *LocationRepo) GetByName(ctx context.Context, name string) (*entity.Location, error) {
	for _, l := range r.locations {
		if l.Name == name {
			found := l
			return &found, nil
		}
	}
	return nil, nil
}
