package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func NewRmCmd(c *Context) *cobra.Command {
	return &cobra.Command{
		Use:   "rm [path]",
		Short: "Remove a remote file or directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.NSC.Dav().Remove(context.Background(), args[0]); err != nil {
				return fmt.Errorf("remove failed, path:%s, err:%w", args[0], err)
			}
			return nil
		},
	}
}

func init() {
	register(NewRmCmd)
}
