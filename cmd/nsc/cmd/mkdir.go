package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func NewMkdirCmd(c *Context) *cobra.Command {
	return &cobra.Command{
		Use:   "mkdir [path]",
		Short: "Create a remote directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.NSC.Dav().Mkdir(context.Background(), args[0]); err != nil {
				return fmt.Errorf("mkdir failed, path:%s, err:%w", args[0], err)
			}
			return nil
		},
	}
}

func init() {
	register(NewMkdirCmd)
}
