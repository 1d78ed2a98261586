package nsc

import (
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/xxxsen/nswebdav/dav"
	"github.com/xxxsen/nswebdav/davtest"
)

func newTestEnv(t *testing.T) (*davtest.Server, *NSClient, func()) {
	s := davtest.New()
	ts := httptest.NewServer(s.Router())
	cli, err := dav.New(dav.WithBaseURL(ts.URL))
	assert.NoError(t, err)
	nc, err := New(WithClient(cli), WithThread(2), WithRetry(2, 10*time.Millisecond))
	assert.NoError(t, err)
	return s, nc, ts.Close
}

func TestUploadFileRetriesThenFails(t *testing.T) {
	_, nc, done := newTestEnv(t)
	defer done()

	local := filepath.Join(t.TempDir(), "a.txt")
	assert.NoError(t, os.WriteFile(local, []byte("x"), 0o644))

	// parent directory missing, every attempt answers 409
	err := nc.UploadFile(context.Background(), local, "/missing/a.txt")
	assert.Error(t, err)
}

func TestUploadDownloadFile(t *testing.T) {
	s, nc, done := newTestEnv(t)
	defer done()
	ctx := context.Background()

	local := filepath.Join(t.TempDir(), "a.txt")
	assert.NoError(t, os.WriteFile(local, []byte("hello"), 0o644))

	assert.NoError(t, nc.UploadFile(ctx, local, "/a.txt"))
	raw, ok := s.Content("/a.txt")
	assert.True(t, ok)
	assert.Equal(t, []byte("hello"), raw)

	target := filepath.Join(t.TempDir(), "sub", "b.txt")
	assert.NoError(t, nc.DownloadFile(ctx, "/a.txt", target))
	got, err := os.ReadFile(target)
	assert.NoError(t, err)
	assert.Equal(t, []byte("hello"), got)
}

func TestUploadDir(t *testing.T) {
	s, nc, done := newTestEnv(t)
	defer done()
	ctx := context.Background()

	root := t.TempDir()
	assert.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0o755))
	assert.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("a"), 0o644))
	assert.NoError(t, os.WriteFile(filepath.Join(root, "sub", "b.txt"), []byte("bb"), 0o644))

	assert.NoError(t, nc.UploadDir(ctx, root, "/backup"))
	assert.True(t, s.Exists("/backup"))
	assert.True(t, s.Exists("/backup/sub"))
	raw, ok := s.Content("/backup/a.txt")
	assert.True(t, ok)
	assert.Equal(t, []byte("a"), raw)
	raw, ok = s.Content("/backup/sub/b.txt")
	assert.True(t, ok)
	assert.Equal(t, []byte("bb"), raw)
}

func TestNewRequiresClient(t *testing.T) {
	_, err := New()
	assert.Error(t, err)
}
