package cli

import (
	"io"

	"github.com/spf13/cobra"

	"i18nsync/internal/config"
	"i18nsync/internal/logging"
	"i18nsync/internal/ports/output"
)

// App is the command-line shell around the conversion use case. It owns
// everything the engine does not: flags, file locations, console output and
// the interactive resolver.
type App struct {
	cfg *config.Config
	t   output.T

	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

// NewApp wires the shell to its configuration, translator and streams.
func NewApp(cfg *config.Config, t output.T, in io.Reader, out, errOut io.Writer) *App {
	return &App{cfg: cfg, t: t, in: in, out: out, errOut: errOut}
}

// Command builds the root command with its subcommands.
func (a *App) Command() *cobra.Command {
	root := &cobra.Command{
		Use:   "i18nsync",
		Short: "Reconcile gettext catalogs with a translation spreadsheet",
		Long: `i18nsync merges per-language .po catalogs into one delimited table
(one row per original string, one column per language) and merges such a table
back into the catalogs. Conflicting translations are settled interactively or
with a fixed strategy.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			logging.Setup(a.errOut, a.cfg.LogLevel, a.cfg.LogFormat)
			return nil
		},
	}
	root.SetIn(a.in)
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfg.WorkDir, "workdir", a.cfg.WorkDir, "directory relative paths are resolved against")
	flags.StringVar(&a.cfg.InputDir, "input-dir", a.cfg.InputDir, "folder searched for .po files and the table")
	flags.StringVar(&a.cfg.OutputDir, "out", a.cfg.OutputDir, "output folder (must exist)")
	flags.StringVar(&a.cfg.TableFile, "table-file", a.cfg.TableFile, "table file name")
	flags.StringVar(&a.cfg.Delimiter, "delimiter", a.cfg.Delimiter, "table column delimiter")
	flags.StringVar(&a.cfg.Strategy, "strategy", a.cfg.Strategy, "conflict strategy: prompt, new or old")
	flags.StringVar(&a.cfg.Locale, "locale", a.cfg.Locale, "language of the messages printed by this tool")
	flags.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "debug, info, warn or error")
	flags.StringVar(&a.cfg.LogFormat, "log-format", a.cfg.LogFormat, "text or json")

	root.AddCommand(a.newPoToCsvCommand(), a.newCsvToPoCommand())
	return root
}

// Locale returns the locale messages are printed in.
func (a *App) Locale() string {
	return a.cfg.Locale
}
