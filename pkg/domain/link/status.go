package link

import "time"

// Status is the presented state of a link, recomputed from current facts on
// every read. It is never stored or cached.
type Status string

const (
	// StatusActive means the link can be paid right now.
	StatusActive Status = "active"
	// StatusExpired means the expiry timestamp has passed.
	StatusExpired Status = "expired"
	// StatusDisabled means the merchant turned the link off.
	StatusDisabled Status = "disabled"
)

// ResolveStatus derives the presented status of a link. Priority order, first
// match wins: disabled beats expired beats active. A disabled-but-unexpired
// link reports disabled; an enabled-but-expired link reports expired.
func ResolveStatus(enabled bool, expiresAt *time.Time, now time.Time) Status {
	if !enabled {
		return StatusDisabled
	}
	if expiresAt != nil && expiresAt.Before(now) {
		return StatusExpired
	}
	return StatusActive
}

// StatusAt resolves the link's status against the given clock reading.
func (l *PaymentLink) StatusAt(now time.Time) Status {
	return ResolveStatus(l.Enabled, l.ExpiresAt, now)
}
