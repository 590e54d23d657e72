package catalog

import "glowsalon/internal/domain"

type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

type CreateServiceRequest struct {
	Name            string  `json:"name" binding:"required"`
	Description     string  `json:"description"`
	Price           float64 `json:"price" binding:"gte=0"`
	DurationMinutes int     `json:"duration_minutes" binding:"required,gte=1"`
	CategoryID      *int64  `json:"category_id"`
}

type UpdateServiceRequest struct {
	Name            *string  `json:"name"`
	Description     *string  `json:"description"`
	Price           *float64 `json:"price"`
	DurationMinutes *int     `json:"duration_minutes"`
	CategoryID      *int64   `json:"category_id"`
	IsActive        *bool    `json:"is_active"`
}

type CreateStylistRequest struct {
	UserID            int64   `json:"user_id" binding:"required"`
	Bio               string  `json:"bio"`
	WorkingHoursStart string  `json:"working_hours_start"`
	WorkingHoursEnd   string  `json:"working_hours_end"`
	SpecialtyIDs      []int64 `json:"specialty_ids"`
}

type UpdateStylistRequest struct {
	Bio               *string  `json:"bio"`
	WorkingHoursStart *string  `json:"working_hours_start"`
	WorkingHoursEnd   *string  `json:"working_hours_end"`
	IsAvailable       *bool    `json:"is_available"`
	IsFeatured        *bool    `json:"is_featured"`
	SpecialtyIDs      *[]int64 `json:"specialty_ids"`
}

// StylistView decorates a stylist with review aggregates.
type StylistView struct {
	domain.Stylist
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int64   `json:"review_count"`
}
