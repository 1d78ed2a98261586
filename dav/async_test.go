package dav

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/xxxsen/nswebdav/davtest"
)

func newAsyncEnv(t *testing.T, opts ...Option) (*davtest.Server, *AsyncClient, func()) {
	s := davtest.New()
	ts := httptest.NewServer(s.Router())
	opts = append([]Option{WithBaseURL(ts.URL)}, opts...)
	c, err := NewAsync(opts...)
	assert.NoError(t, err)
	return s, c, ts.Close
}

func TestAsyncLs(t *testing.T) {
	s, c, done := newAsyncEnv(t)
	defer done()
	s.AddDir("/Docs")
	s.AddFile("/Docs/a.txt", []byte("hi"))

	items, err := c.Ls(context.Background(), "/Docs").Wait(context.Background())
	assert.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestAsyncUploadDownload(t *testing.T) {
	_, c, done := newAsyncEnv(t)
	defer done()
	ctx := context.Background()

	st, err := c.Upload(ctx, "/a.txt", []byte("data")).Wait(ctx)
	assert.NoError(t, err)
	assert.Equal(t, UploadCreated, st)

	raw, err := c.Download(ctx, "/a.txt").Wait(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []byte("data"), raw)
}

func TestAsyncParallelCalls(t *testing.T) {
	s, c, done := newAsyncEnv(t)
	defer done()
	ctx := context.Background()
	s.AddFile("/a.txt", []byte("a"))
	s.AddFile("/b.txt", []byte("b"))

	fa := c.Download(ctx, "/a.txt")
	fb := c.Download(ctx, "/b.txt")
	ra, err := fa.Wait(ctx)
	assert.NoError(t, err)
	rb, err := fb.Wait(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []byte("a"), ra)
	assert.Equal(t, []byte("b"), rb)
}

func TestAsyncErrorResolvesFuture(t *testing.T) {
	s, c, done := newAsyncEnv(t)
	defer done()
	s.AddUser("bob", "token")

	_, err := c.Ls(context.Background(), "/").Wait(context.Background())
	var herr *HTTPError
	assert.True(t, errors.As(err, &herr))
	assert.Equal(t, http.StatusUnauthorized, herr.StatusCode)
	assert.Equal(t, []byte("Unauthorized"), herr.Body)
}

func TestAsyncConflictingCallOptions(t *testing.T) {
	_, c, done := newAsyncEnv(t)
	defer done()

	f := c.Ls(context.Background(), "/",
		WithCallAuth("bob", "token"),
		WithCallClient(http.DefaultClient))
	_, err := f.Wait(context.Background())
	assert.True(t, errors.Is(err, ErrConflictingCallOptions))
}

func TestNewAsyncConflictingConfig(t *testing.T) {
	_, err := NewAsync(WithAuth("bob", "token"), WithClient(http.DefaultClient))
	assert.True(t, errors.Is(err, ErrConflictingCallOptions))
}

func TestFutureWaitHonorsContext(t *testing.T) {
	f := newFuture(func() (int, error) {
		time.Sleep(time.Second)
		return 1, nil
	})
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := f.Wait(ctx)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))

	// the call itself still resolves afterwards
	v, err := f.Wait(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestAsyncBadPathFailsBeforeTransport(t *testing.T) {
	_, c, done := newAsyncEnv(t)
	defer done()
	_, err := c.Download(context.Background(), "/a/../b").Wait(context.Background())
	var perr *InvalidPathError
	assert.True(t, errors.As(err, &perr))
}
