package providers

import "errors"

// ErrProviderUnavailable signals a provider that is not configured or has
// been shut down.
var ErrProviderUnavailable = errors.New("provider unavailable")
