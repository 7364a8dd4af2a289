package attendance

import "context"

// AttendanceService defines check-in/check-out business logic
type AttendanceService interface {
	// CheckIn opens the worker's attendance for today. Opening a labor
	// session is a separate, explicit call.
	CheckIn(ctx context.Context, req CheckInRequest) (AttendanceResponse, error)

	// CheckOut force-closes every active session under the attendance,
	// then closes the attendance itself. Both sub-steps are idempotent so
	// the operation is safe to retry after a partial failure.
	CheckOut(ctx context.Context, req CheckOutRequest) (CheckOutResponse, error)

	Get(ctx context.Context, id string) (AttendanceResponse, error)
	List(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)
}
