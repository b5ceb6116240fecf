package iscc

import (
	"fmt"
	"io"
	"os"
)

// readBufSize is the buffer used by CodeReader.
const readBufSize = 2 * 1024 * 1024

// SumProcessor computes the Data-Code and Instance-Code of one stream in a
// single pass and assembles the composite ISCC-SUM from them.
type SumProcessor struct {
	data     *DataHasher
	instance *InstanceHasher
}

// NewSumProcessor creates an empty SumProcessor.
func NewSumProcessor() *SumProcessor {
	return &SumProcessor{
		data:     NewDataHasher(),
		instance: NewInstanceHasher(),
	}
}

// Update feeds stream bytes to both hashers.
func (p *SumProcessor) Update(data []byte) {
	p.data.Push(data)
	p.instance.Push(data)
}

// Result is the outcome of processing one stream.
type Result struct {
	ISCC     string
	DataHash string
	Filesize uint64
	Units    []string
}

// Result finalizes both digests and renders the composite code. With wide set
// the code carries 128-bit bodies, otherwise 64-bit. With units set the
// standalone 256-bit Data-Code and Instance-Code are rendered as well.
func (p *SumProcessor) Result(wide, units bool) *Result {
	instDigest := p.instance.Digest()

	var header byte
	var dataBody, instBody []byte
	if wide {
		header = headerSumWide
		dataBody = p.data.Digest256()[:16]
		instBody = instDigest[:16]
	} else {
		header = headerSumNarrow
		dataBody = p.data.Digest64()
		instBody = instDigest[:8]
	}

	packed := make([]byte, 0, 2+len(dataBody)+len(instBody))
	packed = append(packed, header, headerVersionLen)
	packed = append(packed, dataBody...)
	packed = append(packed, instBody...)

	res := &Result{
		ISCC:     encodeCode(packed),
		DataHash: p.instance.Multihash(),
		Filesize: p.instance.Filesize(),
	}
	if units {
		res.Units = []string{
			encodeUnit(headerDataUnit0, p.data.Digest256()),
			encodeUnit(headerInstanceUnit0, instDigest),
		}
	}
	return res
}

func encodeUnit(unit0 byte, body []byte) string {
	packed := make([]byte, 0, 2+len(body))
	packed = append(packed, unit0, headerUnit1)
	packed = append(packed, body...)
	return encodeCode(packed)
}

// CodeReader processes the whole of r and returns its result.
func CodeReader(r io.Reader, wide, units bool) (*Result, error) {
	p := NewSumProcessor()
	buf := make([]byte, readBufSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			p.Update(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	return p.Result(wide, units), nil
}

// CodeFile processes the file at path and returns its result.
func CodeFile(path string, wide, units bool) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return CodeReader(f, wide, units)
}
