// Package timeouts defines shared timeout constants used by the console
// process.
package timeouts

import "time"

// ReadHeader limits how long the HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long the HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// BackendRequest is the default cap for one backend REST call. Zero leaves
// calls bounded only by the request context.
const BackendRequest time.Duration = 0
