package favorite

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"glowsalon/internal/domain"
)

var (
	ErrStylistNotFound  = errors.New("stylist_not_found")
	ErrAlreadyFavorite  = errors.New("already_favorite")
	ErrFavoriteNotFound = errors.New("favorite_not_found")
)

type FavoriteRepository interface {
	Add(ctx context.Context, f *domain.FavoriteStylist) error
	Remove(ctx context.Context, customerID, stylistID int64) error
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.FavoriteStylist, error)
	Exists(ctx context.Context, customerID, stylistID int64) (bool, error)
}

type StylistReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Stylist, error)
}

type Service struct {
	favorites FavoriteRepository
	stylists  StylistReader
}

func NewService(favorites FavoriteRepository, stylists StylistReader) *Service {
	return &Service{favorites: favorites, stylists: stylists}
}

func (s *Service) Add(ctx context.Context, customerID, stylistID int64) error {
	if _, err := s.stylists.GetByID(ctx, stylistID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStylistNotFound
		}
		return err
	}

	exists, err := s.favorites.Exists(ctx, customerID, stylistID)
	if err != nil {
		return err
	}
	if exists {
		return ErrAlreadyFavorite
	}

	return s.favorites.Add(ctx, &domain.FavoriteStylist{
		CustomerID: customerID,
		StylistID:  stylistID,
	})
}

func (s *Service) Remove(ctx context.Context, customerID, stylistID int64) error {
	err := s.favorites.Remove(ctx, customerID, stylistID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrFavoriteNotFound
	}
	return err
}

func (s *Service) List(ctx context.Context, customerID int64) ([]domain.FavoriteStylist, error) {
	return s.favorites.ListByCustomer(ctx, customerID)
}
