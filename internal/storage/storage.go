package storage

import (
	"context"

	"feedbackportal/internal/model"
)

// Session is the persisted client state: the bearer token and the user it
// belongs to. Lifecycle is tied to login/logout.
type Session struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// Storage persists the session across client invocations.
type Storage interface {
	SaveSession(ctx context.Context, sess Session) error
	// LoadSession returns nil when no session is stored.
	LoadSession(ctx context.Context) (*Session, error)
	ClearSession(ctx context.Context) error
}
