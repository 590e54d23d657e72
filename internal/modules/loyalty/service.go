package loyalty

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"glowsalon/internal/domain"
)

var (
	ErrInvalidPoints      = errors.New("points must be positive")
	ErrInsufficientPoints = errors.New("insufficient points")
)

// Service works directly against the database: balance changes take a row
// lock on the account inside a transaction, so concurrent earns and
// redemptions serialize.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) GetOrCreateAccount(ctx context.Context, customerID int64) (*domain.LoyaltyAccount, error) {
	account, err := s.getByCustomerID(ctx, customerID)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	account = &domain.LoyaltyAccount{CustomerID: customerID}
	if err := s.db.WithContext(ctx).Create(account).Error; err != nil {
		if isUniqueConstraintError(err) {
			return s.getByCustomerID(ctx, customerID)
		}
		return nil, err
	}
	return account, nil
}

// Earn credits points to the customer's account.
func (s *Service) Earn(ctx context.Context, customerID int64, points int64, note string) error {
	if points <= 0 {
		return ErrInvalidPoints
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var account domain.LoyaltyAccount
		if err := getOrCreateAccountForUpdate(tx, customerID, &account); err != nil {
			return err
		}

		account.Points += points
		if err := tx.Model(&domain.LoyaltyAccount{}).Where("id = ?", account.ID).Update("points", account.Points).Error; err != nil {
			return err
		}

		txn := domain.LoyaltyTransaction{
			AccountID: account.ID,
			Points:    points,
			Type:      domain.LoyaltyEarn,
			Note:      note,
		}
		return tx.Create(&txn).Error
	})
}

// Redeem debits points, failing when the balance does not cover the
// requested amount.
func (s *Service) Redeem(ctx context.Context, customerID int64, points int64, note string) (*domain.LoyaltyAccount, error) {
	if points <= 0 {
		return nil, ErrInvalidPoints
	}

	var account domain.LoyaltyAccount
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := getOrCreateAccountForUpdate(tx, customerID, &account); err != nil {
			return err
		}

		if account.Points < points {
			return ErrInsufficientPoints
		}

		account.Points -= points
		if err := tx.Model(&domain.LoyaltyAccount{}).Where("id = ?", account.ID).Update("points", account.Points).Error; err != nil {
			return err
		}

		txn := domain.LoyaltyTransaction{
			AccountID: account.ID,
			Points:    points,
			Type:      domain.LoyaltyRedeem,
			Note:      note,
		}
		return tx.Create(&txn).Error
	})
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (s *Service) ListTransactions(ctx context.Context, customerID int64) ([]domain.LoyaltyTransaction, error) {
	account, err := s.GetOrCreateAccount(ctx, customerID)
	if err != nil {
		return nil, err
	}

	var txns []domain.LoyaltyTransaction
	err = s.db.WithContext(ctx).
		Where("account_id = ?", account.ID).
		Order("created_at desc").
		Find(&txns).Error
	return txns, err
}

func (s *Service) getByCustomerID(ctx context.Context, customerID int64) (*domain.LoyaltyAccount, error) {
	var account domain.LoyaltyAccount
	if err := s.db.WithContext(ctx).Where("customer_id = ?", customerID).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func getOrCreateAccountForUpdate(tx *gorm.DB, customerID int64, account *domain.LoyaltyAccount) error {
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("customer_id = ?", customerID).
		First(account).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	*account = domain.LoyaltyAccount{CustomerID: customerID}
	if err := tx.Create(account).Error; err != nil {
		if isUniqueConstraintError(err) {
			return tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("customer_id = ?", customerID).
				First(account).Error
		}
		return err
	}
	return nil
}

func isUniqueConstraintError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique constraint") || strings.Contains(msg, "unique failed")
}
