package httpkit

import (
	"mime"
	"path"
	"strconv"
	"strings"
)

// DetermineMimeType guesses the content type of a remote path from its
// extension.
func DetermineMimeType(filename string) string {
	ext := path.Ext(filename)
	mimeType := mime.TypeByExtension(ext)
	if mimeType == "" {
		return "application/octet-stream"
	}
	return mimeType
}

// ParseStatusLine extracts the status code of a propstat status line like
// "HTTP/1.1 200 OK". An empty line defaults to 200, the server implies
// success by omission.
func ParseStatusLine(line string) (int, bool) {
	if len(line) == 0 {
		return 200, true
	}
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, false
	}
	code, err := strconv.Atoi(fields[1])
	if err != nil || code < 100 || code > 599 {
		return 0, false
	}
	return code, true
}
