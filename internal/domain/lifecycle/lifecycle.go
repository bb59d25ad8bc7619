// Package lifecycle holds the time budgets shared by start-up and shutdown hooks.
package lifecycle

import "time"

// DefaultTimeout bounds a single start or stop step, such as a database ping
// or draining the HTTP server.
const DefaultTimeout = 10 * time.Second
