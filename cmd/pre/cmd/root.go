package cmd

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pre-lang/go-pre/internal/config"
	"github.com/pre-lang/go-pre/internal/logging"
)

var (
	cfgFile string
	verbose bool
	output  string
	indent  string

	cfg *config.Config
	log *logrus.Logger
)

var rootCmd = &cobra.Command{
	Use:   "pre [file]",
	Short: "Convert indentation-structured shorthand markup to HTML",
	Long: `pre reads a shorthand markup file where indentation defines nesting
and writes the equivalent HTML.

  div.box#main
    span :label hello

becomes

  <div class="box" id="main">
    <span name="label">hello</span>
  </div>

Without a file argument the input from the configuration is used; "-"
reads standard input.`,
	Args:              cobra.MaximumNArgs(1),
	PersistentPreRunE: setup,
	RunE:              runRender,
	SilenceUsage:      true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $PRE_CONFIG, ./pre.toml, ./pre.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging with phase timings")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", `output file, "-" for stdout`)
	rootCmd.PersistentFlags().StringVar(&indent, "indent", "", "indentation per nesting level")
}

// setup loads the configuration, applies flag overrides and builds the
// logger shared by all commands.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return errors.Wrap(err, "load config")
	}

	if output != "" {
		cfg.Output = output
	}
	if indent != "" {
		cfg.Indent = indent
	}
	if verbose {
		cfg.Log.Level = "debug"
		cfg.Log.Timing = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err = logging.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"input":  cfg.Input,
		"output": cfg.Output,
	}).Debug("configuration loaded")

	return nil
}
