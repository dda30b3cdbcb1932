package ports

import "context"

// SessionData is everything persisted server-side for one session: the
// authenticated user reference (empty when anonymous) and pending one-shot
// flash messages keyed by category.
type SessionData struct {
	UserID string              `json:"user_id,omitempty"`
	Flash  map[string][]string `json:"flash,omitempty"`
}

// AddFlash queues a one-shot message under the given category.
func (d *SessionData) AddFlash(category, message string) {
	if d.Flash == nil {
		d.Flash = make(map[string][]string)
	}
	d.Flash[category] = append(d.Flash[category], message)
}

// SessionStore persists sessions under an opaque token. Get returns
// domain.ErrSessionNotFound for unknown or expired tokens.
type SessionStore interface {
	Create(ctx context.Context, data SessionData) (string, error)
	Get(ctx context.Context, token string) (*SessionData, error)
	Save(ctx context.Context, token string, data SessionData) error
	Delete(ctx context.Context, token string) error
}
