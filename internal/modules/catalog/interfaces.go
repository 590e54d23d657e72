package catalog

import (
	"context"

	"glowsalon/internal/domain"
)

type CategoryRepository interface {
	Create(ctx context.Context, c *domain.Category) error
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
	Update(ctx context.Context, c *domain.Category) error
	Delete(ctx context.Context, id int64) error
}

type ServiceRepository interface {
	Create(ctx context.Context, s *domain.Service) error
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Service, error)
	ListActive(ctx context.Context) ([]domain.Service, error)
	Update(ctx context.Context, s *domain.Service) error
	Deactivate(ctx context.Context, id int64) error
}

type StylistRepository interface {
	Create(ctx context.Context, s *domain.Stylist) error
	GetByID(ctx context.Context, id int64) (*domain.Stylist, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.Stylist, error)
	List(ctx context.Context) ([]domain.Stylist, error)
	FindQualified(ctx context.Context, categoryIDs []int64) ([]domain.Stylist, error)
	Update(ctx context.Context, s *domain.Stylist) error
	ReplaceSpecialties(ctx context.Context, s *domain.Stylist, categories []domain.Category) error
}

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
}

// RatingReader aggregates review scores per stylist.
type RatingReader interface {
	RatingSummary(ctx context.Context, stylistID int64) (avg float64, count int64, err error)
}
