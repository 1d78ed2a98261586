package cmd

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func NewLsCmd(c *Context) *cobra.Command {
	return &cobra.Command{
		Use:   "ls [path]",
		Short: "List a remote directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return onRunLs(context.Background(), c, args[0])
		},
	}
}

func onRunLs(ctx context.Context, c *Context, path string) error {
	items, err := c.NSC.Dav().Ls(ctx, path)
	if err != nil {
		return fmt.Errorf("list failed, path:%s, err:%w", path, err)
	}
	for _, item := range items {
		kind := "-"
		size := humanize.IBytes(uint64(item.Size))
		if item.IsDir {
			kind = "d"
			size = "-"
		}
		fmt.Printf("%s %10s %s %s\n", kind, size, item.LastModified.Format("2006-01-02 15:04:05"), item.Href)
	}
	return nil
}

func init() {
	register(NewLsCmd)
}
