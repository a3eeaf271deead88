package cmd

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	pre "github.com/pre-lang/go-pre"
	"github.com/pre-lang/go-pre/internal/logging"
)

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render a source file as HTML",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	forest, err := readForest(cmd, args)
	if err != nil {
		return err
	}

	w, closeOutput, err := openOutput(cmd)
	if err != nil {
		return err
	}

	enc := pre.NewEncoder(w)
	enc.SetIndent(cfg.Indent)
	err = logging.Timed(log, cfg.Log.Timing, "render", func() error {
		return enc.Encode(forest)
	})
	if cerr := closeOutput(); err == nil {
		err = cerr
	}
	if err != nil {
		return errors.Wrap(err, "write output")
	}

	log.WithField("roots", len(forest)).Debug("rendered")

	return nil
}

// readForest reads and parses the source named by args or the config.
func readForest(cmd *cobra.Command, args []string) (pre.Forest, error) {
	src := cfg.Input
	if len(args) > 0 {
		src = args[0]
	}

	var lines []string
	err := logging.Timed(log, cfg.Log.Timing, "read", func() error {
		var err error
		if src == "-" {
			lines, err = pre.ReadLines(cmd.InOrStdin())
		} else {
			lines, err = pre.ReadFile(src)
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	var forest pre.Forest
	err = logging.Timed(log, cfg.Log.Timing, "parse", func() error {
		var err error
		forest, err = pre.Parse(lines)
		return err
	})
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", src)
	}

	return forest, nil
}

// openOutput returns the configured destination and a func that closes it.
func openOutput(cmd *cobra.Command) (io.Writer, func() error, error) {
	if cfg.Output == "-" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}

	f, err := os.Create(cfg.Output)
	if err != nil {
		return nil, nil, errors.Wrap(err, "create output file")
	}

	return f, f.Close, nil
}
