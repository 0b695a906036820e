package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "taglined",
		Short:         "Render random site taglines",
		Long:          `Serve the tagline render endpoints, render blocks from the command line and convert tagline lists between text, CSV and YAML.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(c *cobra.Command, _ []string) {
			_ = c.Help()
		},
	}

	root.AddCommand(
		newServeCmd(),
		newRenderCmd(),
		newImportCmd(),
		newExportCmd(),
		newLegacyCmd(),
	)
	return root
}

// openInput returns the named file, or the command's stdin for "" and "-".
func openInput(c *cobra.Command, path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(c.InOrStdin()), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, nil
}
