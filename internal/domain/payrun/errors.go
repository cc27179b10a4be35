package payrun

import "errors"

var (
	ErrPayrunNotFound          = errors.New("payrun not found")
	ErrNoAttendanceForPeriod   = errors.New("no attendance recorded for this period")
	ErrInvalidStatusTransition = errors.New("invalid payrun status transition")
	ErrPayrunSettingsNotFound  = errors.New("payrun settings not found")
)
