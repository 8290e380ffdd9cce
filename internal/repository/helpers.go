package repository

import (
	"time"
)

// nowUTC returns the current UTC time truncated to the second, matching the
// RFC3339 precision the timestamps are stored with.
func nowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
