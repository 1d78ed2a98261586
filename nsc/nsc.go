// Package nsc layers local-filesystem convenience on top of the dav client,
// the CLI drives everything through it.
package nsc

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/xxxsen/common/logutil"
	"github.com/xxxsen/common/retry"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/xxxsen/nswebdav/dav"
)

// NSClient wraps a dav.Client with retry and parallelism for bulk local
// transfers.
type NSClient struct {
	c *config
}

// New builds an NSClient, WithClient is required.
func New(opts ...Option) (*NSClient, error) {
	c := &config{
		Thread:        4,
		Attempt:       3,
		RetryInterval: 2 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.Client == nil {
		return nil, fmt.Errorf("no dav client found")
	}
	return &NSClient{c: c}, nil
}

// Dav exposes the underlying client for one-off calls.
func (c *NSClient) Dav() *dav.Client {
	return c.c.Client
}

// UploadFile pushes one local file to remote, retrying per the configured
// policy.
func (c *NSClient) UploadFile(ctx context.Context, local string, remote string) error {
	raw, err := os.ReadFile(local)
	if err != nil {
		return fmt.Errorf("read local file failed, err:%w", err)
	}
	start := time.Now()
	if err := retry.RetryDo(ctx, c.c.Attempt, c.c.RetryInterval, func(ctx context.Context) error {
		if _, err := c.c.Client.Upload(ctx, remote, raw); err != nil {
			logutil.GetLogger(ctx).Error("upload failed, wait retry", zap.Error(err), zap.String("remote", remote))
			return err
		}
		return nil
	}); err != nil {
		return err
	}
	logutil.GetLogger(ctx).Debug("upload file succ",
		zap.String("remote", remote),
		zap.String("size", humanize.IBytes(uint64(len(raw)))),
		zap.Duration("cost", time.Since(start)))
	return nil
}

// DownloadFile fetches one remote file into a local path, parent directories
// are created as needed.
func (c *NSClient) DownloadFile(ctx context.Context, remote string, local string) error {
	var raw []byte
	if err := retry.RetryDo(ctx, c.c.Attempt, c.c.RetryInterval, func(ctx context.Context) error {
		data, err := c.c.Client.Download(ctx, remote)
		if err != nil {
			logutil.GetLogger(ctx).Error("download failed, wait retry", zap.Error(err), zap.String("remote", remote))
			return err
		}
		raw = data
		return nil
	}); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(local), 0o755); err != nil {
		return fmt.Errorf("create local dir failed, err:%w", err)
	}
	if err := os.WriteFile(local, raw, 0o644); err != nil {
		return fmt.Errorf("write local file failed, err:%w", err)
	}
	return nil
}

// UploadDir mirrors a local directory to a remote one. Directories are
// created up front, files then upload in parallel up to the thread cap.
func (c *NSClient) UploadDir(ctx context.Context, localDir string, remoteDir string) error {
	type job struct {
		local  string
		remote string
	}
	var dirs []string
	var jobs []*job
	if err := filepath.WalkDir(localDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(localDir, p)
		if err != nil {
			return err
		}
		remote := path.Join(remoteDir, filepath.ToSlash(rel))
		if d.IsDir() {
			dirs = append(dirs, remote)
			return nil
		}
		jobs = append(jobs, &job{local: p, remote: remote})
		return nil
	}); err != nil {
		return fmt.Errorf("walk local dir failed, err:%w", err)
	}
	for _, dir := range dirs {
		if err := c.c.Client.Mkdir(ctx, dir); err != nil {
			// 目录已存在的场景直接跳过
			var herr *dav.HTTPError
			if errors.As(err, &herr) && (herr.StatusCode == http.StatusMethodNotAllowed || herr.StatusCode == http.StatusConflict) {
				continue
			}
			return fmt.Errorf("mkdir failed, dir:%s, err:%w", dir, err)
		}
	}
	start := time.Now()
	var total int64
	for _, j := range jobs {
		if info, err := os.Stat(j.local); err == nil {
			total += info.Size()
		}
	}
	eg, subctx := errgroup.WithContext(ctx)
	eg.SetLimit(c.c.Thread)
	for _, j := range jobs {
		j := j
		eg.Go(func() error {
			return c.UploadFile(subctx, j.local, j.remote)
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	cost := time.Since(start)
	speed := "-"
	if ms := int64(cost / time.Millisecond); ms > 0 {
		speed = humanize.IBytes(uint64(total*1000/ms)) + "/s"
	}
	logutil.GetLogger(ctx).Info("upload dir succ",
		zap.String("remote", remoteDir),
		zap.Int("files", len(jobs)),
		zap.String("speed", speed),
		zap.Duration("cost", cost))
	return nil
}
