package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/implement/internal/cliconfig"
	"github.com/bft-labs/implement/pkg/implement"
	logAdapter "github.com/bft-labs/implement/pkg/log"
	"github.com/bft-labs/implement/pkg/modload"
	"github.com/bft-labs/implement/pkg/stack"
)

// cliFrame stands in for the innermost stack frame so that --from is
// reported as the caller.
const cliFrame = "<implement>"

const longHelp = `Resolve and load the implementation sibling of a module.

A specifier is resolved relative to the directory of --from (default: the
working directory). The resolved file's extension is replaced by the suffix
(default "_implementation") and that file is loaded instead.

Supported module formats: Go source (.go), CUE, TOML, YAML and JSON.`

var exampleUsage = strings.TrimSpace(`
  implement resolve ./config
  implement load ./config --suffix _foo --format yaml
  implement watch ./store --from ./cmd/app/main.go
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// app holds the state shared by the subcommands once configuration is loaded.
type app struct {
	cfg     cliconfig.Config
	cfgPath string
	log     zerolog.Logger
	modules *modload.Loader
	loader  *implement.Loader
	out     io.Writer
}

func main() {
	a := &app{cfg: cliconfig.DefaultConfig(), log: cliconfig.Logger("info"), out: os.Stdout}

	root := &cobra.Command{
		Use:               "implement",
		Short:             "Load the implementation sibling of a module",
		Long:              longHelp,
		Example:           exampleUsage,
		Version:           fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgPath, "config", "", "path to config file (default: $HOME/.implement/config.toml)")
	flags.StringVar(&a.cfg.From, "from", a.cfg.From, "file the specifier is resolved against (default: working directory)")
	flags.StringVar(&a.cfg.Suffix, "suffix", a.cfg.Suffix, "suffix replacing the resolved module's extension")
	flags.StringVar(&a.cfg.Format, "format", a.cfg.Format, "output format: json, toml or yaml")
	flags.StringVar(&a.cfg.Symbol, "symbol", a.cfg.Symbol, "exported symbol read from Go source modules")
	flags.StringSliceVar(&a.cfg.Codecs, "codecs", a.cfg.Codecs, "enabled codecs in probe order (default: go,cue,toml,yaml,json)")
	flags.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "log level: debug, info, warn, error")
	flags.DurationVar(&a.cfg.Debounce, "debounce", a.cfg.Debounce, "delay before reloading after a file change (watch)")

	root.AddCommand(
		&cobra.Command{
			Use:   "resolve <specifier>",
			Short: "Print the implementation file for a specifier",
			Args:  cobra.ExactArgs(1),
			RunE:  a.runResolve,
		},
		&cobra.Command{
			Use:   "load <specifier>",
			Short: "Load the implementation module and print its value",
			Args:  cobra.ExactArgs(1),
			RunE:  a.runLoad,
		},
		&cobra.Command{
			Use:   "watch <specifier>",
			Short: "Load the implementation module and print it again on every change",
			Args:  cobra.ExactArgs(1),
			RunE:  a.runWatch,
		},
	)

	if err := root.Execute(); err != nil {
		a.log.Error().Err(err).Msg("implement")
		os.Exit(1)
	}
}

// setup loads configuration (flag > env > file > default) and builds the loaders.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfgFile := a.cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}

	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(&a.cfg, fc, changed); err != nil {
			return err
		}
	}

	if err := cliconfig.ApplyEnvConfig(&a.cfg, changed); err != nil {
		return err
	}

	if err := a.cfg.Validate(); err != nil {
		return err
	}

	a.log = cliconfig.Logger(a.cfg.LogLevel)
	a.log.Debug().Interface("config", a.cfg).Msg("configuration")

	codecs, err := a.cfg.BuildCodecs()
	if err != nil {
		return err
	}

	adapter := logAdapter.NewZerologAdapterWithLogger(a.log)
	a.modules = modload.New(modload.WithCodecs(codecs...), modload.WithLogger(adapter))
	a.loader, err = implement.New(
		implement.WithModuleLoader(a.modules),
		implement.WithStackIntrospector(stack.NewFixed(cliFrame, a.cfg.From)),
		implement.WithSuffix(a.cfg.Suffix),
		implement.WithLogger(adapter),
	)
	if err != nil {
		return fmt.Errorf("create loader: %w", err)
	}
	return nil
}

func (a *app) runResolve(_ *cobra.Command, args []string) error {
	file, err := a.loader.Resolve(args[0])
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, file)
	return err
}

func (a *app) runLoad(_ *cobra.Command, args []string) error {
	return a.loadAndPrint(args[0])
}

func (a *app) runWatch(_ *cobra.Command, args []string) error {
	specifier := args[0]
	if err := a.loadAndPrint(specifier); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	w := modload.NewWatcher(a.modules, modload.WatcherConfig{
		DebounceDelay: a.cfg.Debounce,
		Logger:        logAdapter.NewZerologAdapterWithLogger(a.log),
	}, func(paths []string) {
		a.log.Info().Strs("paths", paths).Msg("module changed, reloading")
		if err := a.loadAndPrint(specifier); err != nil {
			a.log.Error().Err(err).Msg("reload failed")
		}
	})
	if err := w.Start(ctx); err != nil {
		return err
	}

	<-sigCh
	a.log.Info().Msg("received signal, stopping...")
	return w.Stop()
}

func (a *app) loadAndPrint(specifier string) error {
	mod, err := a.loader.Load(specifier)
	if err != nil {
		return err
	}
	return writeValue(a.out, a.cfg.Format, moduleValue(mod))
}
