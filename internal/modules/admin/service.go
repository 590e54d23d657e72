package admin

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"glowsalon/internal/domain"
	"glowsalon/internal/repository"
)

var (
	ErrUserNotFound    = errors.New("user_not_found")
	ErrCannotBlockSelf = errors.New("cannot_block_self")
	ErrSettingNotFound = errors.New("setting_not_found")
)

type Service struct {
	users        UserRepository
	appointments AppointmentStatsReader
	stylists     StylistCounter
	ratings      RatingReader
	settings     SettingRepository
}

func NewService(
	users UserRepository,
	appointments AppointmentStatsReader,
	stylists StylistCounter,
	ratings RatingReader,
	settings SettingRepository,
) *Service {
	return &Service{
		users:        users,
		appointments: appointments,
		stylists:     stylists,
		ratings:      ratings,
		settings:     settings,
	}
}

// Statistics is the dashboard aggregate.
type Statistics struct {
	Customers            int64                              `json:"customers"`
	Stylists             int64                              `json:"stylists"`
	AppointmentsByStatus map[domain.AppointmentStatus]int64 `json:"appointments_by_status"`
	CompletedRevenue     float64                            `json:"completed_revenue"`
	AverageRating        float64                            `json:"average_rating"`
	TopServices          []repository.ServiceBookingCount   `json:"top_services"`
}

func (s *Service) Statistics(ctx context.Context) (*Statistics, error) {
	stats := &Statistics{
		AppointmentsByStatus: make(map[domain.AppointmentStatus]int64),
	}

	var err error
	if stats.Customers, err = s.users.CountByRole(ctx, domain.RoleCustomer); err != nil {
		return nil, err
	}
	if stats.Stylists, err = s.stylists.Count(ctx); err != nil {
		return nil, err
	}

	for _, status := range []domain.AppointmentStatus{
		domain.AppointmentPending,
		domain.AppointmentApproved,
		domain.AppointmentRejected,
		domain.AppointmentCompleted,
		domain.AppointmentCancelled,
		domain.AppointmentRescheduled,
	} {
		n, err := s.appointments.CountByStatus(ctx, status)
		if err != nil {
			return nil, err
		}
		stats.AppointmentsByStatus[status] = n
	}

	if stats.CompletedRevenue, err = s.appointments.CompletedRevenue(ctx); err != nil {
		return nil, err
	}
	if stats.AverageRating, err = s.ratings.AverageRating(ctx); err != nil {
		return nil, err
	}
	if stats.TopServices, err = s.appointments.TopServices(ctx, 5); err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *Service) ListUsers(ctx context.Context, f repository.UserFilter, limit, offset int) ([]domain.User, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	users, total, err := s.users.List(ctx, f, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, total, nil
}

// SetUserBlocked toggles the login block. Admins cannot block themselves.
func (s *Service) SetUserBlocked(ctx context.Context, adminID, userID int64, blocked bool) (*domain.User, error) {
	if blocked && adminID == userID {
		return nil, ErrCannotBlockSelf
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	user.IsBlocked = blocked
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *Service) ListSettings(ctx context.Context) ([]domain.SalonSetting, error) {
	return s.settings.List(ctx)
}

func (s *Service) PutSetting(ctx context.Context, key, value, description string) (*domain.SalonSetting, error) {
	setting := &domain.SalonSetting{
		Key:         strings.TrimSpace(key),
		Value:       value,
		Description: description,
	}
	if err := s.settings.Upsert(ctx, setting); err != nil {
		return nil, err
	}
	return s.settings.GetByKey(ctx, setting.Key)
}

func (s *Service) DeleteSetting(ctx context.Context, key string) error {
	if _, err := s.settings.GetByKey(ctx, key); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSettingNotFound
		}
		return err
	}
	return s.settings.Delete(ctx, key)
}
