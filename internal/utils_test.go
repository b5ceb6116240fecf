package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "1023 Bytes", FormatBytes(1023))
	assert.Equal(t, "1.00 KiB (1024 Bytes)", FormatBytes(1024))
	assert.Equal(t, "1.50 KiB (1536 Bytes)", FormatBytes(1536))
	assert.Equal(t, "1.00 MiB (1048576 Bytes)", FormatBytes(1024*1024))
	assert.Equal(t, "1.00 GiB (1073741824 Bytes)", FormatBytes(1024*1024*1024))
}
