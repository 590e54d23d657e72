package loyalty

import (
	"context"
	"errors"
	"fmt"
	"testing"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "modernc.org/sqlite"

	"glowsalon/internal/domain"
)

func setupTestService(t *testing.T) *Service {
	t.Helper()
	dsn := fmt.Sprintf("file:loyalty_test_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{DriverName: "sqlite", DSN: dsn}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := db.AutoMigrate(&domain.LoyaltyAccount{}, &domain.LoyaltyTransaction{}); err != nil {
		t.Fatalf("failed to migrate db: %v", err)
	}
	return NewService(db)
}

func TestGetOrCreateAccountIsIdempotent(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	account, err := svc.GetOrCreateAccount(ctx, 1001)
	if err != nil {
		t.Fatalf("GetOrCreateAccount returned error: %v", err)
	}
	if account.Points != 0 {
		t.Fatalf("expected zero initial points, got %d", account.Points)
	}

	again, err := svc.GetOrCreateAccount(ctx, 1001)
	if err != nil {
		t.Fatalf("second call returned error: %v", err)
	}
	if account.ID != again.ID {
		t.Fatalf("expected same account id, got %s and %s", account.ID, again.ID)
	}
}

func TestEarnAndRedeemFlow(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	if err := svc.Earn(ctx, 101, 150, "appointment #1"); err != nil {
		t.Fatalf("Earn returned error: %v", err)
	}

	account, err := svc.Redeem(ctx, 101, 40, "discount")
	if err != nil {
		t.Fatalf("Redeem returned error: %v", err)
	}
	if account.Points != 110 {
		t.Fatalf("expected 110 points, got %d", account.Points)
	}

	txns, err := svc.ListTransactions(ctx, 101)
	if err != nil {
		t.Fatalf("ListTransactions returned error: %v", err)
	}
	if len(txns) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(txns))
	}
	types := map[string]bool{}
	for _, txn := range txns {
		types[txn.Type] = true
	}
	if !types[domain.LoyaltyEarn] || !types[domain.LoyaltyRedeem] {
		t.Fatalf("expected both EARN and REDEEM transactions, got %v", types)
	}
}

func TestRedeemRejectsOverdraft(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	if err := svc.Earn(ctx, 102, 30, "appointment #2"); err != nil {
		t.Fatalf("Earn returned error: %v", err)
	}

	_, err := svc.Redeem(ctx, 102, 50, "too much")
	if !errors.Is(err, ErrInsufficientPoints) {
		t.Fatalf("expected ErrInsufficientPoints, got %v", err)
	}

	account, err := svc.GetOrCreateAccount(ctx, 102)
	if err != nil {
		t.Fatalf("GetOrCreateAccount returned error: %v", err)
	}
	if account.Points != 30 {
		t.Fatalf("expected balance untouched at 30, got %d", account.Points)
	}
}

func TestEarnRejectsNonPositivePoints(t *testing.T) {
	svc := setupTestService(t)

	if err := svc.Earn(context.Background(), 103, 0, ""); !errors.Is(err, ErrInvalidPoints) {
		t.Fatalf("expected ErrInvalidPoints, got %v", err)
	}
}
