package scheduling

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptySelection      = errors.New("empty_selection")
	ErrServiceNotFound     = errors.New("service_not_found")
	ErrStylistNotFound     = errors.New("stylist_not_found")
	ErrStylistUnavailable  = errors.New("stylist_unavailable")
	ErrMissingSpecialty    = errors.New("missing_specialty")
	ErrOutsideWorkingHours = errors.New("outside_working_hours")
	ErrSlotConflict        = errors.New("slot_conflict")
	ErrNoQualifiedStylist  = errors.New("no_qualified_stylist")
	ErrNoAvailableSlot     = errors.New("no_available_slot")
	ErrAppointmentInPast   = errors.New("appointment_in_past")
	ErrAppointmentNotFound = errors.New("appointment_not_found")
	ErrInvalidTransition   = errors.New("invalid_status_transition")
	ErrForbidden           = errors.New("forbidden")
	ErrValidation          = errors.New("validation_error")
)

// MissingSpecialtyError names the categories the preferred stylist cannot
// serve. errors.Is matches it against ErrMissingSpecialty.
type MissingSpecialtyError struct {
	Categories []string
}

func (e *MissingSpecialtyError) Error() string {
	return fmt.Sprintf("stylist is missing specialties: %s", strings.Join(e.Categories, ", "))
}

func (e *MissingSpecialtyError) Is(target error) bool {
	return target == ErrMissingSpecialty
}
