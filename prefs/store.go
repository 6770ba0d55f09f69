package prefs

import "context"

// Preference keys. Each key maps to an independent list of strings; there is
// no transactional guarantee across keys.
const (
	KeyKeywords = "keywords"
	KeyNotified = "notified"
)

// Store is the durable per-user preference mapping. Implementations treat a
// missing record as an empty list.
type Store interface {
	Get(ctx context.Context, userID int, key string) ([]string, error)
	Set(ctx context.Context, userID int, key string, values []string) error
}
