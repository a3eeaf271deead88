package cmd

import (
	"io"

	"github.com/spf13/cobra"
)

var treeCmd = &cobra.Command{
	Use:   "tree [file]",
	Short: "Print the parsed element tree as indented source lines",
	Long: `tree parses the source and prints each element's trimmed source line,
indented two spaces per nesting level. Lines dropped by the parser do not
appear.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		forest, err := readForest(cmd, args)
		if err != nil {
			return err
		}

		_, err = io.WriteString(cmd.OutOrStdout(), forest.Outline())
		return err
	},
}

func init() {
	rootCmd.AddCommand(treeCmd)
}
