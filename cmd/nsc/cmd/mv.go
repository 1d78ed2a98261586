package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func NewMvCmd(c *Context) *cobra.Command {
	var overwrite bool
	subc := &cobra.Command{
		Use:   "mv [src] [dst]",
		Short: "Move or rename a remote file or directory",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.NSC.Dav().Move(context.Background(), args[0], args[1], overwrite); err != nil {
				return fmt.Errorf("move failed, src:%s, dst:%s, err:%w", args[0], args[1], err)
			}
			return nil
		},
	}
	subc.Flags().BoolVarP(&overwrite, "overwrite", "f", false, "overwrite existing target")
	return subc
}

func init() {
	register(NewMvCmd)
}
