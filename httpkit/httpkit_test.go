package httpkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetermineMimeType(t *testing.T) {
	assert.Equal(t, "application/pdf", DetermineMimeType("/Docs/report.pdf"))
	assert.Equal(t, "application/octet-stream", DetermineMimeType("/Docs/blob"))
}

func TestParseStatusLine(t *testing.T) {
	code, ok := ParseStatusLine("HTTP/1.1 200 OK")
	assert.True(t, ok)
	assert.Equal(t, 200, code)

	code, ok = ParseStatusLine("HTTP/1.1 404 Not Found")
	assert.True(t, ok)
	assert.Equal(t, 404, code)

	code, ok = ParseStatusLine("")
	assert.True(t, ok)
	assert.Equal(t, 200, code)

	_, ok = ParseStatusLine("garbage")
	assert.False(t, ok)

	_, ok = ParseStatusLine("HTTP/1.1 abc OK")
	assert.False(t, ok)
}
