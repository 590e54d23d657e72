package catalog

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"glowsalon/internal/domain"
)

type Service struct {
	categories CategoryRepository
	services   ServiceRepository
	stylists   StylistRepository
	users      UserRepository
	ratings    RatingReader
}

func NewService(
	categories CategoryRepository,
	services ServiceRepository,
	stylists StylistRepository,
	users UserRepository,
	ratings RatingReader,
) *Service {
	return &Service{
		categories: categories,
		services:   services,
		stylists:   stylists,
		users:      users,
		ratings:    ratings,
	}
}

// Categories

func (s *Service) CreateCategory(ctx context.Context, req CategoryRequest) (*domain.Category, error) {
	c := &domain.Category{Name: strings.TrimSpace(req.Name)}
	if err := s.categories.Create(ctx, c); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}
	return c, nil
}

func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}

func (s *Service) UpdateCategory(ctx context.Context, id int64, req CategoryRequest) (*domain.Category, error) {
	c, err := s.categories.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	c.Name = strings.TrimSpace(req.Name)
	if err := s.categories.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) DeleteCategory(ctx context.Context, id int64) error {
	if _, err := s.categories.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}
	return s.categories.Delete(ctx, id)
}

// Services

func (s *Service) CreateService(ctx context.Context, req CreateServiceRequest) (*domain.Service, error) {
	if req.CategoryID != nil {
		if _, err := s.categories.GetByID(ctx, *req.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCategoryNotFound
			}
			return nil, err
		}
	}

	svc := &domain.Service{
		Name:            strings.TrimSpace(req.Name),
		Description:     req.Description,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		CategoryID:      req.CategoryID,
		IsActive:        true,
	}
	if err := s.services.Create(ctx, svc); err != nil {
		return nil, err
	}
	return s.services.GetByID(ctx, svc.ID)
}

func (s *Service) GetService(ctx context.Context, id int64) (*domain.Service, error) {
	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return svc, nil
}

func (s *Service) ListServices(ctx context.Context) ([]domain.Service, error) {
	return s.services.ListActive(ctx)
}

func (s *Service) UpdateService(ctx context.Context, id int64, req UpdateServiceRequest) (*domain.Service, error) {
	svc, err := s.GetService(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		svc.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.Price != nil {
		svc.Price = *req.Price
	}
	if req.DurationMinutes != nil {
		svc.DurationMinutes = *req.DurationMinutes
	}
	if req.CategoryID != nil {
		if _, err := s.categories.GetByID(ctx, *req.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCategoryNotFound
			}
			return nil, err
		}
		svc.CategoryID = req.CategoryID
		svc.Category = nil
	}
	if req.IsActive != nil {
		svc.IsActive = *req.IsActive
	}

	if err := s.services.Update(ctx, svc); err != nil {
		return nil, err
	}
	return s.services.GetByID(ctx, svc.ID)
}

// DeactivateService retires a service from the catalog. Existing
// appointments keep their frozen snapshot.
func (s *Service) DeactivateService(ctx context.Context, id int64) error {
	if _, err := s.GetService(ctx, id); err != nil {
		return err
	}
	return s.services.Deactivate(ctx, id)
}

// Stylists

// CreateStylist promotes an existing user to the stylist role and creates
// the profile in one step.
func (s *Service) CreateStylist(ctx context.Context, req CreateStylistRequest) (*domain.Stylist, error) {
	user, err := s.users.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if _, err := s.stylists.GetByUserID(ctx, req.UserID); err == nil {
		return nil, ErrStylistExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err := validateHours(req.WorkingHoursStart, req.WorkingHoursEnd); err != nil {
		return nil, err
	}

	stylist := &domain.Stylist{
		UserID:            user.ID,
		Bio:               req.Bio,
		WorkingHoursStart: req.WorkingHoursStart,
		WorkingHoursEnd:   req.WorkingHoursEnd,
		IsAvailable:       true,
	}
	if err := s.stylists.Create(ctx, stylist); err != nil {
		return nil, err
	}

	if len(req.SpecialtyIDs) > 0 {
		cats, err := s.resolveCategories(ctx, req.SpecialtyIDs)
		if err != nil {
			return nil, err
		}
		if err := s.stylists.ReplaceSpecialties(ctx, stylist, cats); err != nil {
			return nil, err
		}
	}

	if user.Role != domain.RoleStylist {
		user.Role = domain.RoleStylist
		if err := s.users.Update(ctx, user); err != nil {
			return nil, err
		}
	}

	return s.stylists.GetByID(ctx, stylist.ID)
}

func (s *Service) GetStylist(ctx context.Context, id int64) (*StylistView, error) {
	stylist, err := s.stylists.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStylistNotFound
		}
		return nil, err
	}
	return s.decorate(ctx, stylist)
}

func (s *Service) ListStylists(ctx context.Context) ([]StylistView, error) {
	stylists, err := s.stylists.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.decorateAll(ctx, stylists)
}

// ListStylistsForServices returns the stylists qualified to perform every
// one of the given services.
func (s *Service) ListStylistsForServices(ctx context.Context, serviceIDs []int64) ([]StylistView, error) {
	services, err := s.services.GetByIDs(ctx, serviceIDs)
	if err != nil {
		return nil, err
	}
	if len(services) != len(dedupe(serviceIDs)) {
		return nil, ErrServiceNotFound
	}

	seen := make(map[int64]bool)
	var categoryIDs []int64
	for _, svc := range services {
		if svc.CategoryID != nil && !seen[*svc.CategoryID] {
			seen[*svc.CategoryID] = true
			categoryIDs = append(categoryIDs, *svc.CategoryID)
		}
	}

	stylists, err := s.stylists.FindQualified(ctx, categoryIDs)
	if err != nil {
		return nil, err
	}
	return s.decorateAll(ctx, stylists)
}

func (s *Service) UpdateStylist(ctx context.Context, id int64, req UpdateStylistRequest) (*StylistView, error) {
	stylist, err := s.stylists.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStylistNotFound
		}
		return nil, err
	}

	if req.Bio != nil {
		stylist.Bio = *req.Bio
	}
	if req.WorkingHoursStart != nil {
		stylist.WorkingHoursStart = *req.WorkingHoursStart
	}
	if req.WorkingHoursEnd != nil {
		stylist.WorkingHoursEnd = *req.WorkingHoursEnd
	}
	if err := validateHours(stylist.WorkingHoursStart, stylist.WorkingHoursEnd); err != nil {
		return nil, err
	}
	if req.IsAvailable != nil {
		stylist.IsAvailable = *req.IsAvailable
	}
	if req.IsFeatured != nil {
		stylist.IsFeatured = *req.IsFeatured
	}

	if err := s.stylists.Update(ctx, stylist); err != nil {
		return nil, err
	}

	if req.SpecialtyIDs != nil {
		cats, err := s.resolveCategories(ctx, *req.SpecialtyIDs)
		if err != nil {
			return nil, err
		}
		if err := s.stylists.ReplaceSpecialties(ctx, stylist, cats); err != nil {
			return nil, err
		}
	}

	return s.GetStylist(ctx, stylist.ID)
}

func (s *Service) resolveCategories(ctx context.Context, ids []int64) ([]domain.Category, error) {
	cats := make([]domain.Category, 0, len(ids))
	for _, id := range dedupe(ids) {
		c, err := s.categories.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCategoryNotFound
			}
			return nil, err
		}
		cats = append(cats, *c)
	}
	return cats, nil
}

func (s *Service) decorate(ctx context.Context, stylist *domain.Stylist) (*StylistView, error) {
	avg, count, err := s.ratings.RatingSummary(ctx, stylist.ID)
	if err != nil {
		return nil, err
	}
	return &StylistView{Stylist: *stylist, AverageRating: avg, ReviewCount: count}, nil
}

func (s *Service) decorateAll(ctx context.Context, stylists []domain.Stylist) ([]StylistView, error) {
	views := make([]StylistView, 0, len(stylists))
	for i := range stylists {
		v, err := s.decorate(ctx, &stylists[i])
		if err != nil {
			return nil, err
		}
		views = append(views, *v)
	}
	return views, nil
}

func validateHours(start, end string) error {
	var startMin, endMin int
	if start != "" {
		m, err := domain.ParseClock(start)
		if err != nil {
			return ErrInvalidWorkingHours
		}
		startMin = m
	}
	if end != "" {
		m, err := domain.ParseClock(end)
		if err != nil {
			return ErrInvalidWorkingHours
		}
		endMin = m
	}
	if start != "" && end != "" && startMin >= endMin {
		return ErrInvalidWorkingHours
	}
	return nil
}

func dedupe(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
