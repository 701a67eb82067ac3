package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

var ErrNotFound = errors.New("session not found")

// User is the sanitized account record kept for an authenticated session.
// It mirrors the users-service response minus the password, which is
// dropped before anything is persisted.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Position string `json:"position"`
}

type Record struct {
	ID        string    `json:"id"`
	User      User      `json:"user"`
	CreatedAt time.Time `json:"createdAt"`
}

// Store is the server-side session registry. Holding sessions here (rather
// than only in the browser) is what makes explicit logout possible.
type Store interface {
	Save(ctx context.Context, rec Record, ttl time.Duration) error
	Find(ctx context.Context, id string) (*Record, error)
	Delete(ctx context.Context, id string) error
}

// decodeRecord treats any unparsable persisted record as an absent session.
func decodeRecord(data []byte) (*Record, error) {
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, ErrNotFound
	}
	if rec.ID == "" {
		return nil, ErrNotFound
	}
	return &rec, nil
}
