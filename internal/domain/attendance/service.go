package attendance

import "context"

type AttendanceService interface {
	ClockIn(ctx context.Context, req ClockInRequest) (AttendanceResponse, error)
	ClockOut(ctx context.Context) (AttendanceResponse, error)
	ListMy(ctx context.Context, month, year int) ([]AttendanceResponse, error)
}
