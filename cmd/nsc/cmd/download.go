package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"
)

type downloadArgs struct {
	remote string
	local  string
}

func NewDownloadCmd(c *Context) *cobra.Command {
	args := &downloadArgs{}
	ctx := context.Background()
	subc := &cobra.Command{
		Use:   "download",
		Short: "Download a remote file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return onRunDownload(ctx, c, args)
		},
	}
	subc.PersistentFlags().StringVarP(&args.remote, "remote", "r", "", "remote path")
	subc.PersistentFlags().StringVarP(&args.local, "local", "l", "", "local target path")
	return subc
}

func onRunDownload(ctx context.Context, c *Context, args *downloadArgs) error {
	if len(args.remote) == 0 || len(args.local) == 0 {
		return fmt.Errorf("both remote and local path are required")
	}
	start := time.Now()
	if err := c.NSC.DownloadFile(ctx, args.remote, args.local); err != nil {
		return fmt.Errorf("download failed, err:%w", err)
	}
	logutil.GetLogger(ctx).Info("download succ", zap.String("local", args.local), zap.Duration("cost", time.Since(start)))
	return nil
}

func init() {
	register(NewDownloadCmd)
}
