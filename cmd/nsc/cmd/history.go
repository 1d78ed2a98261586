package cmd

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func NewHistoryCmd(c *Context) *cobra.Command {
	var cursor int64
	subc := &cobra.Command{
		Use:   "history [folder]",
		Short: "Show the version history of a top folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return onRunHistory(context.Background(), c, args[0], cursor)
		},
	}
	subc.Flags().Int64Var(&cursor, "cursor", 0, "start cursor, 0 for the oldest page")
	return subc
}

func onRunHistory(ctx context.Context, c *Context, folder string, cursor int64) error {
	h, err := c.NSC.Dav().History(ctx, folder, cursor)
	if err != nil {
		return fmt.Errorf("fetch history failed, folder:%s, err:%w", folder, err)
	}
	for _, e := range h.Entries {
		op := "modify"
		if e.IsDeleted {
			op = "delete"
		}
		fmt.Printf("rev:%d %s %s %s %s\n", e.Revision, op, e.Modified.Format("2006-01-02 15:04:05"), humanize.IBytes(uint64(e.Size)), e.Path)
	}
	if next, ok := h.Next(); ok {
		fmt.Printf("more history available, next cursor:%d\n", next)
	}
	return nil
}

func init() {
	register(NewHistoryCmd)
}
