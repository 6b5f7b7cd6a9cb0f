package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vitalvas/secretshare/internal/config"
	"github.com/vitalvas/secretshare/internal/xlogger"
)

// app carries the state shared by all commands: the resolved configuration,
// the logger and the streams commands read from and write to.
type app struct {
	root   *cobra.Command
	conf   *config.Config
	logger *slog.Logger

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	configPath string
	format     string
	output     string
	logLevel   string
	logType    string
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *app {
	a := &app{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}

	a.root = &cobra.Command{
		Use:           "secretshare",
		Short:         "Split secrets into shares and recover them",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.setup()
		},
	}

	flags := a.root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "path to the configuration file")
	flags.StringVarP(&a.format, "format", "f", "", "share and secret encoding (base64 or hex)")
	flags.StringVarP(&a.output, "output", "o", "", "output mode (text or json)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn or error)")
	flags.StringVar(&a.logType, "log-type", "", "log format (text or json)")

	a.root.AddCommand(
		a.newSplitCommand(),
		a.newCombineCommand(),
		a.newInspectCommand(),
		a.newVersionCommand(),
	)

	return a
}

// setup resolves the configuration in precedence order: defaults, then the
// configuration file, then SECRETSHARE_* environment variables, then flags.
func (a *app) setup() error {
	conf, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := a.root.PersistentFlags()
	if flags.Changed("format") {
		conf.Format = a.format
	}

	if flags.Changed("output") {
		conf.Output = a.output
	}

	if flags.Changed("log-level") {
		conf.Log.Level = a.logLevel
	}

	if flags.Changed("log-type") {
		conf.Log.LogType = a.logType
	}

	if err := conf.Validate(); err != nil {
		return err
	}

	a.conf = conf
	a.logger = xlogger.NewWithWriter(a.stderr, xlogger.Config{
		Level:      conf.Log.Level,
		LogType:    conf.Log.LogType,
		AddSource:  conf.Log.AddSource,
		SourcePath: "github.com/vitalvas/secretshare/",
	})

	return nil
}

func (a *app) printer() *Printer {
	return NewPrinter(a.conf.Output, a.stdout)
}

// Execute runs the root command against the process streams.
func Execute() error {
	return newApp(os.Stdin, os.Stdout, os.Stderr).root.Execute()
}
