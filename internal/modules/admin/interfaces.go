package admin

import (
	"context"

	"glowsalon/internal/domain"
	"glowsalon/internal/repository"
)

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
	List(ctx context.Context, f repository.UserFilter, limit, offset int) ([]domain.User, int64, error)
	CountByRole(ctx context.Context, role domain.Role) (int64, error)
}

type AppointmentStatsReader interface {
	CountByStatus(ctx context.Context, status domain.AppointmentStatus) (int64, error)
	CompletedRevenue(ctx context.Context) (float64, error)
	TopServices(ctx context.Context, limit int) ([]repository.ServiceBookingCount, error)
}

type StylistCounter interface {
	Count(ctx context.Context) (int64, error)
}

type RatingReader interface {
	AverageRating(ctx context.Context) (float64, error)
}

type SettingRepository interface {
	Upsert(ctx context.Context, s *domain.SalonSetting) error
	GetByKey(ctx context.Context, key string) (*domain.SalonSetting, error)
	List(ctx context.Context) ([]domain.SalonSetting, error)
	Delete(ctx context.Context, key string) error
}
