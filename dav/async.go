package dav

import (
	"context"
	"errors"
	"fmt"

	"github.com/xxxsen/nswebdav/entity"
)

// ErrConflictingCallOptions rejects a call configured with both an ad-hoc
// credential pair and a shared transport, exactly one shape is accepted.
var ErrConflictingCallOptions = errors.New("per-call credential and shared transport are mutually exclusive")

// AsyncClient mirrors Client but returns futures instead of blocking. Every
// operation resolves after a single transport call, concurrency across calls
// is entirely the caller's business.
type AsyncClient struct {
	c *Client
}

// NewAsync builds the async facade. Configuration accepts a shared transport
// or a default credential pair, never both at once.
func NewAsync(opts ...Option) (*AsyncClient, error) {
	c, err := New(opts...)
	if err != nil {
		return nil, err
	}
	if c.c.Auth != nil && c.c.Client != nil {
		return nil, fmt.Errorf("configure async client failed, err:%w", ErrConflictingCallOptions)
	}
	return &AsyncClient{c: c}, nil
}

// checkCall rejects the two per-call override shapes arriving together.
func checkCall(opts []CallOption) error {
	cc := applyCallOptions(opts)
	if cc.auth != nil && cc.client != nil {
		return ErrConflictingCallOptions
	}
	return nil
}

func asyncCall[T any](opts []CallOption, fn func() (T, error)) *Future[T] {
	if err := checkCall(opts); err != nil {
		return failedFuture[T](err)
	}
	return newFuture(fn)
}

func (a *AsyncClient) Ls(ctx context.Context, path string, opts ...CallOption) *Future[entity.ItemList] {
	return asyncCall(opts, func() (entity.ItemList, error) {
		return a.c.Ls(ctx, path, opts...)
	})
}

func (a *AsyncClient) Stat(ctx context.Context, path string, opts ...CallOption) *Future[*entity.Entity] {
	return asyncCall(opts, func() (*entity.Entity, error) {
		return a.c.Stat(ctx, path, opts...)
	})
}

func (a *AsyncClient) Mkdir(ctx context.Context, path string, opts ...CallOption) *Future[struct{}] {
	return asyncCall(opts, func() (struct{}, error) {
		return struct{}{}, a.c.Mkdir(ctx, path, opts...)
	})
}

func (a *AsyncClient) Upload(ctx context.Context, path string, content []byte, opts ...CallOption) *Future[UploadStatus] {
	return asyncCall(opts, func() (UploadStatus, error) {
		return a.c.Upload(ctx, path, content, opts...)
	})
}

func (a *AsyncClient) Download(ctx context.Context, path string, opts ...CallOption) *Future[[]byte] {
	return asyncCall(opts, func() ([]byte, error) {
		return a.c.Download(ctx, path, opts...)
	})
}

func (a *AsyncClient) Remove(ctx context.Context, path string, opts ...CallOption) *Future[struct{}] {
	return asyncCall(opts, func() (struct{}, error) {
		return struct{}{}, a.c.Remove(ctx, path, opts...)
	})
}

func (a *AsyncClient) Move(ctx context.Context, src string, dst string, overwrite bool, opts ...CallOption) *Future[struct{}] {
	return asyncCall(opts, func() (struct{}, error) {
		return struct{}{}, a.c.Move(ctx, src, dst, overwrite, opts...)
	})
}

func (a *AsyncClient) Copy(ctx context.Context, src string, dst string, overwrite bool, opts ...CallOption) *Future[struct{}] {
	return asyncCall(opts, func() (struct{}, error) {
		return struct{}{}, a.c.Copy(ctx, src, dst, overwrite, opts...)
	})
}

func (a *AsyncClient) Share(ctx context.Context, path string, o *ShareOptions, opts ...CallOption) *Future[string] {
	return asyncCall(opts, func() (string, error) {
		return a.c.Share(ctx, path, o, opts...)
	})
}

func (a *AsyncClient) GetAcl(ctx context.Context, path string, opts ...CallOption) *Future[*entity.Acl] {
	return asyncCall(opts, func() (*entity.Acl, error) {
		return a.c.GetAcl(ctx, path, opts...)
	})
}

func (a *AsyncClient) UpdateAcl(ctx context.Context, path string, acl *entity.Acl, opts ...CallOption) *Future[struct{}] {
	return asyncCall(opts, func() (struct{}, error) {
		return struct{}{}, a.c.UpdateAcl(ctx, path, acl, opts...)
	})
}

func (a *AsyncClient) History(ctx context.Context, folder string, cursor int64, opts ...CallOption) *Future[*entity.History] {
	return asyncCall(opts, func() (*entity.History, error) {
		return a.c.History(ctx, folder, cursor, opts...)
	})
}

func (a *AsyncClient) LatestCursor(ctx context.Context, folder string, opts ...CallOption) *Future[int64] {
	return asyncCall(opts, func() (int64, error) {
		return a.c.LatestCursor(ctx, folder, opts...)
	})
}

func (a *AsyncClient) UserInfo(ctx context.Context, opts ...CallOption) *Future[*entity.User] {
	return asyncCall(opts, func() (*entity.User, error) {
		return a.c.UserInfo(ctx, opts...)
	})
}

func (a *AsyncClient) TeamMembers(ctx context.Context, opts ...CallOption) *Future[[]*entity.TeamMember] {
	return asyncCall(opts, func() ([]*entity.TeamMember, error) {
		return a.c.TeamMembers(ctx, opts...)
	})
}

func (a *AsyncClient) Search(ctx context.Context, keywords []string, path string, opts ...CallOption) *Future[entity.ItemList] {
	return asyncCall(opts, func() (entity.ItemList, error) {
		return a.c.Search(ctx, keywords, path, opts...)
	})
}

func (a *AsyncClient) ContentURL(ctx context.Context, path string, opts ...CallOption) *Future[string] {
	return asyncCall(opts, func() (string, error) {
		return a.c.ContentURL(ctx, path, opts...)
	})
}

func (a *AsyncClient) SubmitCopyPub(ctx context.Context, shareURL string, path string, password string, opts ...CallOption) *Future[string] {
	return asyncCall(opts, func() (string, error) {
		return a.c.SubmitCopyPub(ctx, shareURL, path, password, opts...)
	})
}

func (a *AsyncClient) PollCopyPub(ctx context.Context, copyUUID string, opts ...CallOption) *Future[bool] {
	return asyncCall(opts, func() (bool, error) {
		return a.c.PollCopyPub(ctx, copyUUID, opts...)
	})
}

func (a *AsyncClient) EmptyRecycle(ctx context.Context, path string, opts ...CallOption) *Future[struct{}] {
	return asyncCall(opts, func() (struct{}, error) {
		return struct{}{}, a.c.EmptyRecycle(ctx, path, opts...)
	})
}
