package domain

import "time"

type Category struct {
	ID   int64  `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;not null" validate:"required"`
}

type Service struct {
	ID              int64     `json:"id" gorm:"primaryKey"`
	Name            string    `json:"name" gorm:"not null" validate:"required"`
	Description     string    `json:"description,omitempty" gorm:"type:text"`
	Price           float64   `json:"price" validate:"gte=0"`
	DurationMinutes int       `json:"duration_minutes" gorm:"not null;default:30" validate:"gte=1"`
	CategoryID      *int64    `json:"category_id,omitempty"`
	Category        *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	IsActive        bool      `json:"is_active" gorm:"default:true"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Stylist working hours are clock strings ("15:04"); empty means unbounded
// on that side.
type Stylist struct {
	ID                int64      `json:"id" gorm:"primaryKey"`
	UserID            int64      `json:"user_id" gorm:"uniqueIndex;not null"`
	User              *User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Bio               string     `json:"bio,omitempty" gorm:"type:text"`
	Specialties       []Category `json:"specialties,omitempty" gorm:"many2many:stylist_specialties"`
	WorkingHoursStart string     `json:"working_hours_start,omitempty" gorm:"type:varchar(5)"`
	WorkingHoursEnd   string     `json:"working_hours_end,omitempty" gorm:"type:varchar(5)"`
	IsAvailable       bool       `json:"is_available" gorm:"default:true"`
	IsFeatured        bool       `json:"is_featured"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// HasSpecialties reports whether every given category is covered by the
// stylist's specialty set.
func (s *Stylist) HasSpecialties(categoryIDs []int64) bool {
	have := make(map[int64]bool, len(s.Specialties))
	for _, c := range s.Specialties {
		have[c.ID] = true
	}
	for _, id := range categoryIDs {
		if !have[id] {
			return false
		}
	}
	return true
}

// MissingSpecialties returns the names of required categories the stylist
// does not cover.
func (s *Stylist) MissingSpecialties(required []Category) []string {
	have := make(map[int64]bool, len(s.Specialties))
	for _, c := range s.Specialties {
		have[c.ID] = true
	}
	var missing []string
	for _, c := range required {
		if !have[c.ID] {
			missing = append(missing, c.Name)
		}
	}
	return missing
}
