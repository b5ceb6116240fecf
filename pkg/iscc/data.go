package iscc

import (
	"github.com/OneOfOne/xxhash"

	"github.com/etzm/iscc-sum/pkg/cdc"
	"github.com/etzm/iscc-sum/pkg/minhash"
)

// DataHasher builds the similarity-preserving Data-Code digest: the input is
// split into content-defined chunks, each chunk is reduced to a 32-bit
// xxhash feature, and the features feed a MinHash sketch.
//
// The whole stream must be pushed before a digest is taken; the output is
// identical no matter how Push calls slice the input.
type DataHasher struct {
	split  *cdc.Splitter
	sketch *minhash.Sketch
	final  bool
}

// NewDataHasher creates a DataHasher with the fixed chunking parameters.
func NewDataHasher() *DataHasher {
	sketch := minhash.New()
	split, err := cdc.NewSplitter(cdc.DefaultOptions(), func(chunk []byte) {
		sketch.Add(xxhash.Checksum32(chunk))
	})
	if err != nil {
		// DefaultOptions always validate.
		panic(err)
	}
	return &DataHasher{split: split, sketch: sketch}
}

// Push feeds stream bytes.
func (d *DataHasher) Push(data []byte) {
	d.split.Write(data)
}

// Digest256 returns the 32-byte wide digest, forcing the tail chunk on first
// use. Further Push calls are invalid after any digest call.
func (d *DataHasher) Digest256() []byte {
	d.finalize()
	return d.sketch.Digest256()
}

// Digest64 returns the 8-byte narrow digest.
func (d *DataHasher) Digest64() []byte {
	d.finalize()
	return d.sketch.Digest64()
}

func (d *DataHasher) finalize() {
	if !d.final {
		d.split.Close()
		d.final = true
	}
}
