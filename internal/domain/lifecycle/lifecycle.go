// Package lifecycle holds shared timing constants for application start and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds start and stop hooks (DB ping, server drain, mail queue flush).
const DefaultTimeout = 10 * time.Second
