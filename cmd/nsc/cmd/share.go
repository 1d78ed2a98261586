package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xxxsen/nswebdav/dav"
)

type shareArgs struct {
	users        []string
	groups       []string
	downloadable bool
}

func NewShareCmd(c *Context) *cobra.Command {
	args := &shareArgs{}
	subc := &cobra.Command{
		Use:   "share [path]",
		Short: "Publish a remote object and print its share link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, posArgs []string) error {
			link, err := c.NSC.Dav().Share(context.Background(), posArgs[0], &dav.ShareOptions{
				Users:        args.users,
				Groups:       args.groups,
				Downloadable: args.downloadable,
			})
			if err != nil {
				return fmt.Errorf("share failed, path:%s, err:%w", posArgs[0], err)
			}
			fmt.Println(link)
			return nil
		},
	}
	subc.Flags().StringSliceVarP(&args.users, "user", "u", nil, "share with the named users only")
	subc.Flags().StringSliceVarP(&args.groups, "group", "g", nil, "share with the named groups only")
	subc.Flags().BoolVarP(&args.downloadable, "downloadable", "d", true, "allow download from the link")
	return subc
}

func init() {
	register(NewShareCmd)
}
