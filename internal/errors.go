package internal

import "errors"

// ErrNoChecksums reports a checksum file with no usable lines at all.
var ErrNoChecksums = errors.New("no properly formatted ISCC checksum lines found")
