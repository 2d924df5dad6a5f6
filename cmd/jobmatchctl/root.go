package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	jobmatch "github.com/kailas-cloud/jobmatch/pkg/sdk"
)

const (
	app       = "jobmatchctl"
	envPrefix = "JOBMATCH"
)

// cli carries the settings shared by every subcommand.
type cli struct {
	v   *viper.Viper
	out io.Writer
}

func newRootCmd(out io.Writer) *cobra.Command {
	_, root := newCLI(out)
	return root
}

func newCLI(out io.Writer) (*cli, *cobra.Command) {
	c := &cli{v: viper.New(), out: out}
	c.v.SetEnvPrefix(envPrefix)
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()

	root := &cobra.Command{
		Use:           app,
		Short:         "jobmatchctl ranks stored job listings against a seeker profile",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)

	pf := root.PersistentFlags()
	pf.String("driver", "redis", "listing store driver: redis or postgres")
	pf.String("addr", "localhost:6379", "redis address")
	pf.String("password", "", "redis password")
	pf.String("dsn", "", "postgres connection string")
	pf.String("prefix", "", "redis key prefix (default jobmatch:)")
	pf.BoolP("debug", "d", false, "verbose/debug output")
	pf.BoolP("json", "j", false, "print JSON instead of a table")

	for _, name := range []string{"driver", "addr", "password", "dsn", "prefix", "debug", "json"} {
		if err := c.v.BindPFlag(name, pf.Lookup(name)); err != nil {
			panic(fmt.Sprintf("bind flag %s: %v", name, err))
		}
	}

	root.AddCommand(
		c.seedCmd(),
		c.rankCmd(),
		c.listingsCmd(),
		c.versionCmd(),
	)
	return c, root
}

// logger writes SDK operation logs to stderr; silent unless --debug.
func (c *cli) logger() *slog.Logger {
	if !c.v.GetBool("debug") {
		return nil
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func (c *cli) storeOptions() ([]jobmatch.Option, error) {
	opts := []jobmatch.Option{jobmatch.WithLogger(c.logger())}
	switch driver := c.v.GetString("driver"); driver {
	case "redis":
		opts = append(opts, jobmatch.WithRedis(c.v.GetString("addr"), c.v.GetString("password")))
		if p := c.v.GetString("prefix"); p != "" {
			opts = append(opts, jobmatch.WithKeyPrefix(p))
		}
	case "postgres":
		dsn := c.v.GetString("dsn")
		if dsn == "" {
			return nil, fmt.Errorf("--dsn is required for the postgres driver")
		}
		opts = append(opts, jobmatch.WithPostgres(dsn))
	default:
		return nil, fmt.Errorf("unknown driver %q", driver)
	}
	return opts, nil
}

func (c *cli) client(ctx context.Context) (*jobmatch.Client, error) {
	opts, err := c.storeOptions()
	if err != nil {
		return nil, err
	}
	client, err := jobmatch.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	return client, nil
}
