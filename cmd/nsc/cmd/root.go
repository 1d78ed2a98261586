package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/xxxsen/common/logger"

	"github.com/xxxsen/nswebdav/cmd/nsc/config"
	"github.com/xxxsen/nswebdav/dav"
	"github.com/xxxsen/nswebdav/nsc"
)

const (
	defaultConfigFileEnv = "NSC_CONFIG"
)

var cmds []CreateFunc

type Context struct {
	NSC    *nsc.NSClient
	Config *config.Config
}

type CreateFunc func(ctx *Context) *cobra.Command

func register(cr CreateFunc) {
	cmds = append(cmds, cr)
}

func initContext(ctx *Context, cfgs []string) error {
	var c *config.Config
	var err error
	for _, cfg := range cfgs {
		if len(cfg) == 0 {
			continue
		}
		c, err = config.Parse(cfg)
		if err == nil {
			break
		}
	}
	if c == nil {
		return fmt.Errorf("no valid config file found, last err:%w", err)
	}
	ctx.Config = c
	logger.Init("", c.LogLevel, 0, 0, 0, true)
	cli, err := dav.New(
		dav.WithBaseURL(c.BaseURL),
		dav.WithAuth(c.Username, c.Token),
	)
	if err != nil {
		return err
	}
	nc, err := nsc.New(nsc.WithClient(cli), nsc.WithThread(c.Thread))
	if err != nil {
		return err
	}
	ctx.NSC = nc
	return nil
}

func NewRoot() *cobra.Command {
	var configFile string
	ctx := &Context{}
	var rootCmd = &cobra.Command{
		Use:   "nsc",
		Short: "Nutstore WebDAV CLI tool",
	}
	for _, cr := range cmds {
		rootCmd.AddCommand(cr(ctx))
	}
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		envConfigFile, _ := os.LookupEnv(defaultConfigFileEnv)
		return initContext(ctx, []string{configFile, "/etc/nsc/nsc_config.json", envConfigFile})
	}
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file")
	return rootCmd
}
