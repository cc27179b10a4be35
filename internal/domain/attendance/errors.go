package attendance

import "errors"

var (
	ErrAlreadyCheckedIn = errors.New("you have an open session, clock out first")
	ErrNotCheckedIn     = errors.New("you have not clocked in yet")
	ErrNoOpenSession    = errors.New("no open attendance session found")

	ErrAttendanceNotFound = errors.New("attendance record not found")
)
