package iscc

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// multihash prefix for a 256-bit BLAKE3 digest
var mhPrefix = []byte{0x1e, 0x20}

// InstanceHasher produces the exact-integrity Instance-Code: a streaming
// BLAKE3 digest plus a running byte count.
type InstanceHasher struct {
	hasher   *blake3.Hasher
	filesize uint64
}

// NewInstanceHasher creates an empty InstanceHasher.
func NewInstanceHasher() *InstanceHasher {
	return &InstanceHasher{hasher: blake3.New()}
}

// Push feeds stream bytes.
func (h *InstanceHasher) Push(data []byte) {
	h.hasher.Write(data)
	h.filesize += uint64(len(data))
}

// Digest returns the full 32-byte BLAKE3 digest of the bytes pushed so far.
func (h *InstanceHasher) Digest() []byte {
	return h.hasher.Sum(nil)
}

// Multihash returns the digest as a hex-encoded multihash (1e20 prefix).
func (h *InstanceHasher) Multihash() string {
	return hex.EncodeToString(append(append([]byte{}, mhPrefix...), h.Digest()...))
}

// Filesize returns the number of bytes pushed so far.
func (h *InstanceHasher) Filesize() uint64 {
	return h.filesize
}
