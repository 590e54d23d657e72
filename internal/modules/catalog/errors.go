package catalog

import "errors"

var (
	ErrCategoryNotFound    = errors.New("category_not_found")
	ErrCategoryInUse       = errors.New("category_in_use")
	ErrServiceNotFound     = errors.New("service_not_found")
	ErrStylistNotFound     = errors.New("stylist_not_found")
	ErrUserNotFound        = errors.New("user_not_found")
	ErrStylistExists       = errors.New("stylist_exists")
	ErrDuplicateName       = errors.New("duplicate_name")
	ErrInvalidWorkingHours = errors.New("invalid_working_hours")
)
