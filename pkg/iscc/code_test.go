package iscc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSumCode_RoundTrip(t *testing.T) {
	testCases := []struct {
		name string
		code *Code
	}{
		{
			name: "Narrow",
			code: &Code{
				Wide:         false,
				DataBody:     []byte{1, 2, 3, 4, 5, 6, 7, 8},
				InstanceBody: []byte{9, 10, 11, 12, 13, 14, 15, 16},
			},
		},
		{
			name: "Wide",
			code: &Code{
				Wide:         true,
				DataBody:     make([]byte, 16),
				InstanceBody: make([]byte, 16),
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rendered := tc.code.String()
			assert.Contains(t, rendered, CodePrefix)

			parsed, err := ParseSumCode(rendered)
			assert.NoError(t, err)
			assert.Equal(t, tc.code.Wide, parsed.Wide)
			assert.Equal(t, tc.code.DataBody, parsed.DataBody)
			assert.Equal(t, tc.code.InstanceBody, parsed.InstanceBody)
			assert.Equal(t, rendered, parsed.String())
		})
	}
}

func TestParseSumCode_Invalid(t *testing.T) {
	narrow := (&Code{DataBody: make([]byte, 8), InstanceBody: make([]byte, 8)}).String()

	testCases := []struct {
		name  string
		input string
	}{
		{"Missing prefix", narrow[len(CodePrefix):]},
		{"Lowercase prefix", "iscc:" + narrow[len(CodePrefix):]},
		{"Bad base32", "ISCC:abc~~~"},
		{"Empty body", "ISCC:"},
		{"Wrong payload length", "ISCC:AAAA"},
		{"Empty string", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseSumCode(tc.input)
			assert.Error(t, err)
		})
	}
}

func TestParseSumCode_HeaderValidation(t *testing.T) {
	// correct length but wrong maintype nibble
	packed := make([]byte, packedLenNarrow)
	packed[0] = 0x30
	_, err := ParseSumCode(encodeCode(packed))
	assert.Error(t, err)

	// narrow header on a wide payload
	packed = make([]byte, packedLenWide)
	packed[0] = headerSumNarrow
	_, err = ParseSumCode(encodeCode(packed))
	assert.Error(t, err)

	// nonzero version byte
	packed = make([]byte, packedLenNarrow)
	packed[0] = headerSumNarrow
	packed[1] = 0x10
	_, err = ParseSumCode(encodeCode(packed))
	assert.Error(t, err)
}
