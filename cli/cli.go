package cli

import (
	"context"

	"github.com/alecthomas/kong"

	"github.com/ardnew/corefmt/cli/cmd"
	"github.com/ardnew/corefmt/pkg"
)

// CLI is the top-level command-line interface for corefmt.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Version kong.VersionFlag `help:"Print version information and exit." short:"V"`

	Init   cmd.Init   `cmd:"" help:"Initialize configuration file"`
	Check  cmd.Check  `cmd:"" help:"Validate a Core program without formatting it"`
	Tokens cmd.Tokens `cmd:"" help:"Print the token stream of a Core program"`

	Fmt cmd.Fmt `cmd:"" default:"withargs" help:"Validate and format a Core program"`
}

// Run executes the corefmt CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
//
// Commands use the streams stored in ctx by [cmd.WithStreams], if any.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	configFilePath := configPath(baseConfig)

	vars := kong.Vars{
		cmd.ConfigIdentifier: configFilePath + ".yaml",
		"version":            pkg.Name + " " + pkg.Version,
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Pre-scan for logger flags so that parse errors are already reported
	// with the requested logger, regardless of flag position.
	cli.Log.scan(args)

	streams := cmd.StreamsFrom(ctx)

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.Writers(streams.Out, streams.Err),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				FlagsLast:           false,
				NoAppSummary:        false,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(kong.JSON, configFilePath+".json"),
		kong.Configuration(resolve, configFilePath+".yaml"),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	ctx = cmd.WithContext(ctx, ktx)

	// Apply the parsed values, including those read from configuration files.
	cli.Log.start(ctx)

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	return ktx.Run(ctx, &cli)
}
