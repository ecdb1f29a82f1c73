package policies

import "errors"

var (
	// ErrNotFound indicates the requested policy does not exist.
	ErrNotFound = errors.New("policy not found")

	// ErrStoreUnavailable indicates the policy store is unreachable or a
	// query failed. Callers recover via the bundled fallback catalog.
	ErrStoreUnavailable = errors.New("policy store unavailable")

	// ErrNoCatalog indicates the store is down and no fallback catalog
	// exists, so no candidates can be produced at all.
	ErrNoCatalog = errors.New("no policy catalog available")
)
