// Package cdc implements content-defined chunking with a gear rolling hash.
//
// Chunk boundaries depend only on the input bytes and the fixed parameter
// set, never on how the caller slices its writes. A stricter mask is applied
// while the current chunk is shorter than the average size and a looser mask
// above it, so the expected chunk length stays close to DefaultAverageSize.
// Both mask widths are derived from DefaultAverageSize; a custom AverageSize
// only moves the point where the looser mask takes over.
package cdc

import (
	"fmt"
	"io"
)

const (
	// DefaultMinSize suppresses boundaries in the first 256 bytes of a chunk.
	DefaultMinSize = 256
	// DefaultAverageSize is the target expected chunk length.
	DefaultAverageSize = 1024
	// DefaultMaxSize forces a boundary at 8 KiB.
	DefaultMaxSize = 8192

	// avgSizeBits = log2(DefaultAverageSize)
	avgSizeBits = 10

	maskSmall = uint64(1)<<(avgSizeBits+1) - 1
	maskLarge = uint64(1)<<(avgSizeBits-1) - 1

	minSizeFloor = 64
	maxSizeCeil  = 1 << 30
)

// Options configure a Splitter or Chunker.
type Options struct {
	MinSize     int
	AverageSize int
	MaxSize     int
}

// DefaultOptions returns the fixed parameter set used for Data-Code hashing.
func DefaultOptions() Options {
	return Options{
		MinSize:     DefaultMinSize,
		AverageSize: DefaultAverageSize,
		MaxSize:     DefaultMaxSize,
	}
}

func (o Options) validate() error {
	if o.AverageSize == 0 {
		return fmt.Errorf("cdc: AverageSize is required")
	}
	if o.MinSize < minSizeFloor {
		return fmt.Errorf("cdc: MinSize %d below minimum %d", o.MinSize, minSizeFloor)
	}
	if o.MaxSize > maxSizeCeil {
		return fmt.Errorf("cdc: MaxSize %d above maximum %d", o.MaxSize, maxSizeCeil)
	}
	if o.MinSize >= o.MaxSize {
		return fmt.Errorf("cdc: MinSize %d must be below MaxSize %d", o.MinSize, o.MaxSize)
	}
	if o.AverageSize < o.MinSize || o.AverageSize > o.MaxSize {
		return fmt.Errorf("cdc: AverageSize %d must be between MinSize and MaxSize", o.AverageSize)
	}
	return nil
}

// Splitter is a push-stream boundary detector. Bytes are fed with Write in
// arbitrary slices; each completed chunk is handed to the emit callback. The
// chunk slice is a view into the Splitter's internal buffer and is only valid
// for the duration of the callback.
//
// A Splitter is single-owner: one flow of Write calls, then Close.
type Splitter struct {
	min, avg, max int
	emit          func(chunk []byte)

	hash    uint64
	pending []byte
	emitted bool
	closed  bool
}

// NewSplitter creates a Splitter with the given options. emit must not be nil.
func NewSplitter(opts Options, emit func(chunk []byte)) (*Splitter, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if emit == nil {
		return nil, fmt.Errorf("cdc: emit callback is required")
	}
	return &Splitter{
		min:     opts.MinSize,
		avg:     opts.AverageSize,
		max:     opts.MaxSize,
		emit:    emit,
		pending: make([]byte, 0, opts.MaxSize),
	}, nil
}

// Write feeds bytes into the splitter. It never fails; the error return only
// satisfies io.Writer.
func (s *Splitter) Write(p []byte) (int, error) {
	if s.closed {
		return 0, fmt.Errorf("cdc: write after close")
	}
	for _, b := range p {
		s.hash = (s.hash << 1) + gearTable[b]
		s.pending = append(s.pending, b)
		n := len(s.pending)
		if n < s.min {
			continue
		}
		mask := maskSmall
		if n >= s.avg {
			mask = maskLarge
		}
		if s.hash&mask == 0 || n == s.max {
			s.cut()
		}
	}
	return len(p), nil
}

// Close forces the end-of-stream boundary. The tail chunk may be shorter than
// MinSize; an input that produced no chunk at all yields a single empty chunk
// so that every stream has at least one feature.
func (s *Splitter) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if len(s.pending) > 0 || !s.emitted {
		s.cut()
	}
	return nil
}

func (s *Splitter) cut() {
	s.emit(s.pending)
	s.pending = s.pending[:0]
	s.hash = 0
	s.emitted = true
}

// Chunk is one content-defined piece of an input stream.
type Chunk struct {
	Data   []byte
	Offset int
	Length int
}

// Chunker pulls chunks out of an io.Reader. It wraps a Splitter so pull- and
// push-style consumers see byte-identical boundaries.
type Chunker struct {
	r      io.Reader
	split  *Splitter
	queue  []Chunk
	offset int
	buf    []byte
	done   bool
}

// NewChunker creates a Chunker reading from r.
func NewChunker(r io.Reader, opts Options) (*Chunker, error) {
	c := &Chunker{r: r, buf: make([]byte, 64*1024)}
	split, err := NewSplitter(opts, func(chunk []byte) {
		data := make([]byte, len(chunk))
		copy(data, chunk)
		c.queue = append(c.queue, Chunk{Data: data, Offset: c.offset, Length: len(data)})
		c.offset += len(data)
	})
	if err != nil {
		return nil, err
	}
	c.split = split
	return c, nil
}

// Next returns the next chunk, or io.EOF after the final one.
func (c *Chunker) Next() (Chunk, error) {
	for len(c.queue) == 0 {
		if c.done {
			return Chunk{}, io.EOF
		}
		n, err := c.r.Read(c.buf)
		if n > 0 {
			c.split.Write(c.buf[:n])
		}
		if err == io.EOF {
			c.done = true
			c.split.Close()
		} else if err != nil {
			return Chunk{}, err
		}
	}
	chunk := c.queue[0]
	c.queue = c.queue[1:]
	if chunk.Length == 0 {
		// Only produced by an empty input stream.
		return Chunk{}, io.EOF
	}
	return chunk, nil
}
