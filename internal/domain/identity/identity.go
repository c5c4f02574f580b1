package identity

import "context"

// Directory resolves authenticated user IDs to display identifiers for
// reporting. Credentials and roles live entirely outside this core; the
// boundary hands us pre-validated caller IDs.
type Directory interface {
	ResolveEmail(ctx context.Context, userID string) (string, error)
}

// StaticDirectory is a map-backed Directory for wiring and tests.
// Unknown IDs resolve to themselves so reports never fail on a missing
// directory entry.
type StaticDirectory map[string]string

func (d StaticDirectory) ResolveEmail(_ context.Context, userID string) (string, error) {
	if email, ok := d[userID]; ok {
		return email, nil
	}
	return userID, nil
}
