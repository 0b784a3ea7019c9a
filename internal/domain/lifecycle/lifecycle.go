// Package lifecycle holds process-wide timing constants.
package lifecycle

import "time"

// DefaultTimeout bounds fx start and stop hooks.
const DefaultTimeout = 10 * time.Second
