package scheduling

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"glowsalon/internal/domain"
)

// ListOpenSlots enumerates open start times for the requested services on
// one day, broken down per qualified stylist. A slot qualifies when its
// start falls inside the stylist's window; the booking may run past the
// declared end, matching the walk-in convention the validator does not
// share. Slots already begun today are dropped.
//
// A named stylist is only existence-checked: the availability/specialty
// filters apply to the open scan, not to an explicit request, which the
// validator re-judges at booking time anyway.
func (s *Service) ListOpenSlots(ctx context.Context, serviceIDs []int64, date time.Time, onlyStylist *int64) ([]StylistSlots, error) {
	req, err := s.resolveServices(ctx, serviceIDs)
	if err != nil {
		return nil, err
	}
	date = domain.NormalizeDate(date)

	var candidates []domain.Stylist
	if onlyStylist != nil {
		st, err := s.stylists.GetByID(ctx, *onlyStylist)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrStylistNotFound
			}
			return nil, err
		}
		candidates = []domain.Stylist{*st}
	} else {
		candidates, err = s.stylists.FindQualified(ctx, req.categoryIDs)
		if err != nil {
			return nil, err
		}
	}

	cutoff := s.todayCutoff(date)

	out := make([]StylistSlots, 0, len(candidates))
	for i := range candidates {
		st := &candidates[i]

		windowStart, windowEnd, ok := s.stylistWindow(st)
		if !ok {
			continue
		}

		existing, err := s.appointments.FindOccupying(ctx, st.ID, date, 0)
		if err != nil {
			return nil, err
		}

		slots := enumerate(windowStart, windowEnd, s.cfg.SlotStepMinutes, req.duration, cutoff, existing)

		out = append(out, StylistSlots{
			StylistID:   st.ID,
			StylistName: stylistName(st),
			Slots:       slots,
		})
	}
	return out, nil
}

// stylistWindow intersects the salon window with the stylist's declared
// hours. ok is false when the intersection is empty or the hours are
// malformed.
func (s *Service) stylistWindow(st *domain.Stylist) (start, end int, ok bool) {
	start = s.cfg.OpenMinutes()
	end = s.cfg.CloseMinutes()

	if st.WorkingHoursStart != "" {
		ws, err := domain.ParseClock(st.WorkingHoursStart)
		if err != nil {
			return 0, 0, false
		}
		if ws > start {
			start = ws
		}
	}
	if st.WorkingHoursEnd != "" {
		we, err := domain.ParseClock(st.WorkingHoursEnd)
		if err != nil {
			return 0, 0, false
		}
		if we < end {
			end = we
		}
	}
	if start >= end {
		return 0, 0, false
	}
	return start, end, true
}

// todayCutoff returns the minute-of-day below which slots are gone, or -1
// when the date is not today.
func (s *Service) todayCutoff(date time.Time) int {
	now := s.now().UTC()
	if !domain.NormalizeDate(now).Equal(date) {
		return -1
	}
	return now.Hour()*60 + now.Minute()
}

// enumerate walks the window in fixed steps. Any slot whose start is
// before the window end qualifies, even if the booking would run past it.
func enumerate(windowStart, windowEnd, step, duration, cutoff int, existing []domain.Appointment) []string {
	slots := []string{}
	for start := windowStart; start < windowEnd; start += step {
		if start <= cutoff {
			continue
		}
		if conflicts(start, start+duration, existing) {
			continue
		}
		slots = append(slots, domain.FormatClock(start))
	}
	return slots
}

func conflicts(start, end int, existing []domain.Appointment) bool {
	for _, e := range existing {
		if domain.IntervalsOverlap(start, end, e.StartMinutes(), e.EndMinutes()) {
			return true
		}
	}
	return false
}

func stylistName(st *domain.Stylist) string {
	if st.User != nil {
		return st.User.FullName()
	}
	return ""
}
