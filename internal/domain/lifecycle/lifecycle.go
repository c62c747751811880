// Package lifecycle holds shared constants for application lifecycle management.
package lifecycle

import "time"

// DefaultTimeout is the grace period granted to components during shutdown.
const DefaultTimeout = 10 * time.Second
