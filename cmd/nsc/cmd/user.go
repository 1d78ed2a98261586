package cmd

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func NewUserCmd(c *Context) *cobra.Command {
	return &cobra.Command{
		Use:   "user",
		Short: "Show the account profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			return onRunUser(context.Background(), c)
		},
	}
}

func onRunUser(ctx context.Context, c *Context) error {
	u, err := c.NSC.Dav().UserInfo(ctx)
	if err != nil {
		return fmt.Errorf("fetch user info failed, err:%w", err)
	}
	fmt.Printf("user: %s\nstate: %s\nquota: %s\nused: %s\n",
		u.Name, u.State, humanize.IBytes(uint64(u.StorageQuota)), humanize.IBytes(uint64(u.UsedStorage)))
	for _, col := range u.Collections {
		fmt.Printf("folder: %s used:%s owner:%v\n", col.Href, humanize.IBytes(uint64(col.UsedStorage)), col.IsOwner)
	}
	return nil
}

func init() {
	register(NewUserCmd)
}
