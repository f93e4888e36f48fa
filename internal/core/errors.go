package core

import "errors"

// ErrAppDirNotFound is returned when the configured application directory
// does not exist on disk. It is the only error checked before any external
// tool is invoked.
var ErrAppDirNotFound = errors.New("application directory not found")
