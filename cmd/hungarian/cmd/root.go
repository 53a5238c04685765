// Package cmd holds the cobra command tree of the hungarian CLI.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/hungarian/internal/logging"
)

// BuildInfo identifies the binary.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// app is the state shared by the commands of one root.
type app struct {
	info       BuildInfo
	v          *viper.Viper
	configFile string
	logger     zerolog.Logger
	logCloser  io.Closer
}

// NewRootCmd builds a fresh command tree with its own configuration.
func NewRootCmd(info BuildInfo) *cobra.Command {
	a := &app{info: info, v: viper.New(), logger: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "hungarian",
		Short: "Optimal assignment solver",
		Long: `hungarian solves the rectangular assignment problem: given a matrix of
non-negative integer costs, it pairs rows with columns so that every row or
every column is matched once and the total cost is minimal.

Matrices are read from YAML or JSON files, or stdin.`,
		SilenceUsage:       true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (default is $HOME/.hungarian.yaml)")
	flags.StringP("output", "o", "", "output format: table, json, yaml (default: table on a terminal, json otherwise)")
	flags.String("algorithm", "", "solving pipeline: munkres, munkres-padded")
	flags.String("reducer", "", "matrix reducer: rows-then-columns, rows, columns")
	flags.Duration("timeout", 0, "abort the solve after this long (0 disables)")
	flags.BoolP("verbose", "v", false, "debug logging")
	flags.BoolP("quiet", "q", false, "warnings and errors only")
	flags.String("log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")
	flags.String("log-format", "auto", "log format: json, console, auto")
	flags.String("log-output", "stderr", "log destination: stderr, stdout, discard or a file path")

	for _, name := range []string{"output", "algorithm", "reducer", "timeout", "verbose", "quiet", "log-level", "log-format", "log-output"} {
		if err := a.v.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("binding flag %s: %v", name, err))
		}
	}

	root.AddCommand(newSolveCmd(a), newValidateCmd(a), newVersionCmd(a))

	return root
}

// setup resolves configuration and installs the logger on the command context.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := a.initConfig(); err != nil {
		return err
	}

	logger, closer := logging.NewLoggerFromConfig(a.logConfig(cmd))
	a.logger, a.logCloser = logger, closer
	if used := a.v.ConfigFileUsed(); used != "" {
		a.logger.Debug().Str("file", used).Msg("using config file")
	}
	cmd.SetContext(logging.WithLogger(cmd.Context(), a.logger))

	return nil
}

func (a *app) teardown(_ *cobra.Command, _ []string) error {
	if a.logCloser != nil {
		return a.logCloser.Close()
	}

	return nil
}

// initConfig reads .env files, HUNGARIAN_* variables and the config file.
// Flags win over the environment, which wins over the file.
func (a *app) initConfig() error {
	// godotenv never overrides a set variable, so the local file goes first.
	for _, f := range []string{".env.local", ".env"} {
		_ = godotenv.Load(f)
	}

	a.v.SetEnvPrefix("HUNGARIAN")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	a.v.AutomaticEnv()

	if a.configFile != "" {
		a.v.SetConfigFile(a.configFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", a.configFile, err)
		}

		return nil
	}

	if home, err := os.UserHomeDir(); err == nil {
		a.v.AddConfigPath(home)
	}
	a.v.AddConfigPath(".")
	a.v.SetConfigType("yaml")
	a.v.SetConfigName(".hungarian")

	var notFound viper.ConfigFileNotFoundError
	if err := a.v.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
		return fmt.Errorf("reading config: %w", err)
	}

	return nil
}

func (a *app) logConfig(cmd *cobra.Command) *logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = logLevel(a.v.GetString("log-level"), a.v.GetBool("verbose"), a.v.GetBool("quiet"))
	cfg.Format = a.v.GetString("log-format")
	cfg.Output = a.v.GetString("log-output")
	if strings.EqualFold(cfg.Output, "stderr") || cfg.Output == "" {
		cfg.Writer = cmd.ErrOrStderr()
	}

	return cfg
}

// logLevel applies the precedence: explicit level, then --quiet, then
// --verbose, then info.
func logLevel(explicit string, verbose, quiet bool) string {
	switch {
	case explicit != "":
		return explicit
	case quiet:
		return "warn"
	case verbose:
		return "debug"
	default:
		return "info"
	}
}
