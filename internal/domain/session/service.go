package session

import "context"

// SessionService defines labor session business logic
type SessionService interface {
	// Open starts a session under an on-site attendance. The worker and
	// date are copied from the parent record. A worker with an active
	// session cannot open a second one; close the first session before
	// switching exporters.
	Open(ctx context.Context, req OpenSessionRequest) (SessionResponse, error)

	// Close ends an active session
	Close(ctx context.Context, id string) (SessionResponse, error)

	// MarkValidated moves a closed session to its downstream validated
	// state (admin only)
	MarkValidated(ctx context.Context, id string) (SessionResponse, error)

	Get(ctx context.Context, id string) (SessionResponse, error)
	List(ctx context.Context, filter SessionFilter) (ListSessionsResponse, error)
}
