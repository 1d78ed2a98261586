package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"
)

type uploadArgs struct {
	local  string
	remote string
}

func NewUploadCmd(c *Context) *cobra.Command {
	args := &uploadArgs{}
	ctx := context.Background()
	subc := &cobra.Command{
		Use:   "upload",
		Short: "Upload a local file or directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return onRunUpload(ctx, c, args)
		},
	}
	subc.PersistentFlags().StringVarP(&args.local, "local", "l", "", "local file or directory")
	subc.PersistentFlags().StringVarP(&args.remote, "remote", "r", "", "remote path")
	return subc
}

func onRunUpload(ctx context.Context, c *Context, args *uploadArgs) error {
	if len(args.local) == 0 || len(args.remote) == 0 {
		return fmt.Errorf("both local and remote path are required")
	}
	info, err := os.Stat(args.local)
	if err != nil {
		return fmt.Errorf("stat local path failed, err:%w", err)
	}
	start := time.Now()
	if info.IsDir() {
		err = c.NSC.UploadDir(ctx, args.local, args.remote)
	} else {
		err = c.NSC.UploadFile(ctx, args.local, args.remote)
	}
	if err != nil {
		return fmt.Errorf("upload failed, err:%w", err)
	}
	logutil.GetLogger(ctx).Info("upload succ", zap.String("remote", args.remote), zap.Duration("cost", time.Since(start)))
	return nil
}

func init() {
	register(NewUploadCmd)
}
