package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/stackchart/pkg/dataset"
)

// sampleCommand writes the built-in sample collection, a starting point for
// custom dataset files.
func (c *CLI) sampleCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Write the built-in sample datasets as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := openOutput(output)
			if err != nil {
				return err
			}
			if err := dataset.Encode(out, dataset.Sample()); err != nil {
				out.Close()
				return err
			}
			if err := out.Close(); err != nil {
				return err
			}
			if output != "-" {
				printFile(output)
				printNextStep("Render it with", appName+" render "+output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "-", "output file; - for stdout")
	return cmd
}
