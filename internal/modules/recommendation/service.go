package recommendation

import (
	"context"
	"strings"

	"glowsalon/internal/domain"
)

// styleRule is one entry in the static suggestion table. The endpoint is
// presented as AI-driven but is keyword matching over this list.
type styleRule struct {
	keywords    []string
	description string
	category    string
}

var rules = []styleRule{
	{
		keywords:    []string{"short", "bob", "pixie"},
		description: "A chin-length layered bob with soft face-framing strands",
		category:    "Hair",
	},
	{
		keywords:    []string{"long", "waves", "curl"},
		description: "Loose beach waves with a center part and subtle balayage",
		category:    "Hair",
	},
	{
		keywords:    []string{"color", "blonde", "bright"},
		description: "Dimensional blonde highlights with a root smudge",
		category:    "Hair",
	},
	{
		keywords:    []string{"nail", "manicure", "gel"},
		description: "Almond-shaped gel set in a muted nude palette",
		category:    "Nails",
	},
	{
		keywords:    []string{"glow", "skin", "facial"},
		description: "Hydrating facial with a brightening vitamin C finish",
		category:    "Beauty",
	},
	{
		keywords:    []string{"event", "wedding", "updo"},
		description: "Polished low chignon with face-framing pieces",
		category:    "Hair",
	},
}

const suggestionCount = 3

type Suggestion struct {
	Description  string `json:"description"`
	Category     string `json:"category"`
	SpecialistID *int64 `json:"specialist_id"`
}

type CategoryRepository interface {
	List(ctx context.Context) ([]domain.Category, error)
}

type StylistRepository interface {
	FindBySpecialty(ctx context.Context, categoryID int64) ([]domain.Stylist, error)
}

type Service struct {
	categories CategoryRepository
	stylists   StylistRepository
}

func NewService(categories CategoryRepository, stylists StylistRepository) *Service {
	return &Service{categories: categories, stylists: stylists}
}

// Recommend returns exactly three suggestions. Rules whose keywords appear
// in the preferences text rank first; the remainder is filled in table
// order so the response is always full and deterministic.
func (s *Service) Recommend(ctx context.Context, preferences string) ([]Suggestion, error) {
	prefs := strings.ToLower(preferences)

	picked := make([]styleRule, 0, suggestionCount)
	used := make(map[int]bool)

	for i, r := range rules {
		if len(picked) == suggestionCount {
			break
		}
		if matches(prefs, r.keywords) {
			picked = append(picked, r)
			used[i] = true
		}
	}
	for i, r := range rules {
		if len(picked) == suggestionCount {
			break
		}
		if !used[i] {
			picked = append(picked, r)
		}
	}

	categoriesByName, err := s.categoryIndex(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Suggestion, 0, len(picked))
	for _, r := range picked {
		sg := Suggestion{Description: r.description, Category: r.category}
		if cat, ok := categoriesByName[strings.ToLower(r.category)]; ok {
			specialists, err := s.stylists.FindBySpecialty(ctx, cat.ID)
			if err != nil {
				return nil, err
			}
			if len(specialists) > 0 {
				id := specialists[0].ID
				sg.SpecialistID = &id
			}
		}
		out = append(out, sg)
	}
	return out, nil
}

func (s *Service) categoryIndex(ctx context.Context) (map[string]domain.Category, error) {
	cats, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	idx := make(map[string]domain.Category, len(cats))
	for _, c := range cats {
		idx[strings.ToLower(c.Name)] = c
	}
	return idx, nil
}

func matches(prefs string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(prefs, k) {
			return true
		}
	}
	return false
}
