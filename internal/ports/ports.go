package ports

import "errors"

// ErrNotFound is returned by repositories and stores when the requested
// record does not exist. Adapters map their backend's miss signal
// (sql.ErrNoRows, redis.Nil) to this error so handlers can translate it
// uniformly.
var ErrNotFound = errors.New("not found")
