package lifecycle

import "errors"

// ErrAlreadyLoaded is an error that occurs when Load is called on a
// [Registrar] that is already fully registered.
var ErrAlreadyLoaded = errors.New("device already loaded")
