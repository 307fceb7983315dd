package launcher

import "errors"

// ErrProjectDirMissing is returned when the target directory does not exist
// and no clone was requested.
var ErrProjectDirMissing = errors.New("project directory not found")

// ErrServeRootMissing is returned when the serve-root subdirectory is absent
// from the project directory.
var ErrServeRootMissing = errors.New("serve-root directory not found")
