package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"glowsalon/internal/domain"
)

const (
	defaultPort         = "8080"
	defaultDatabaseURL  = "salon.db"
	defaultJWTSecret    = "change-me-jwt-secret"
	defaultAccessTTL    = "15m"
	defaultRefreshTTL   = "168h"
	defaultSalonOpen    = "08:00"
	defaultSalonClose   = "20:00"
	defaultSlotStepMins = "15"
)

// Scheduling holds the salon-wide scan window and slot granularity for the
// availability enumerator. Injected, never read from package globals.
type Scheduling struct {
	SalonOpen       string
	SalonClose      string
	SlotStepMinutes int
}

func (s Scheduling) OpenMinutes() int {
	m, _ := domain.ParseClock(s.SalonOpen)
	return m
}

func (s Scheduling) CloseMinutes() int {
	m, _ := domain.ParseClock(s.SalonClose)
	return m
}

type Config struct {
	AppEnv      string
	Port        string
	DatabaseURL string
	JWTSecret   string
	AccessTTL   time.Duration
	RefreshTTL  time.Duration
	Scheduling  Scheduling
}

func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err == nil {
		log.Println("loaded configuration from .env")
	}

	cfg := &Config{
		AppEnv:      strings.ToLower(getEnv("APP_ENV", "dev")),
		Port:        getEnv("PORT", defaultPort),
		DatabaseURL: getEnv("DATABASE_URL", defaultDatabaseURL),
		JWTSecret:   strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret)),
	}

	var err error
	if cfg.AccessTTL, err = parseDurationEnv("JWT_ACCESS_TTL", defaultAccessTTL); err != nil {
		return nil, err
	}
	if cfg.RefreshTTL, err = parseDurationEnv("JWT_REFRESH_TTL", defaultRefreshTTL); err != nil {
		return nil, err
	}

	cfg.Scheduling = Scheduling{
		SalonOpen:  getEnv("SALON_OPEN", defaultSalonOpen),
		SalonClose: getEnv("SALON_CLOSE", defaultSalonClose),
	}
	step, err := strconv.Atoi(getEnv("SLOT_STEP_MINUTES", defaultSlotStepMins))
	if err != nil {
		return nil, fmt.Errorf("SLOT_STEP_MINUTES must be an integer: %w", err)
	}
	cfg.Scheduling.SlotStepMinutes = step

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.AccessTTL <= 0 || cfg.RefreshTTL <= 0 {
		return fmt.Errorf("token TTLs must be > 0")
	}
	if cfg.Scheduling.SlotStepMinutes <= 0 {
		return fmt.Errorf("SLOT_STEP_MINUTES must be > 0")
	}
	open, err := domain.ParseClock(cfg.Scheduling.SalonOpen)
	if err != nil {
		return fmt.Errorf("SALON_OPEN: %w", err)
	}
	close, err := domain.ParseClock(cfg.Scheduling.SalonClose)
	if err != nil {
		return fmt.Errorf("SALON_CLOSE: %w", err)
	}
	if close <= open {
		return fmt.Errorf("SALON_CLOSE must be after SALON_OPEN")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDurationEnv(key, fallback string) (time.Duration, error) {
	raw := getEnv(key, fallback)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
