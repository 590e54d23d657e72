package review

import "errors"

var (
	ErrAppointmentNotFound  = errors.New("appointment_not_found")
	ErrNotYourAppointment   = errors.New("not_your_appointment")
	ErrAppointmentNotDone   = errors.New("appointment_not_completed")
	ErrAlreadyReviewed      = errors.New("already_reviewed")
	ErrAppointmentUnstaffed = errors.New("appointment_unstaffed")
	ErrReviewNotFound       = errors.New("review_not_found")
)
