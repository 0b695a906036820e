package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/tagline"
	"github.com/dmitrymomot/tagline/pkg/taglines"
)

const flagIndex = "index"

func newRenderCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "render",
		Short: "Render a block from attribute JSON",
	}
	c.PersistentFlags().Int(flagIndex, -1, "Pick the tagline at this index instead of a random one")

	c.AddCommand(
		&cobra.Command{
			Use:   "block [attributes.json]",
			Short: "Render the standalone random tagline block",
			Long:  `Read block attributes as JSON from a file or stdin and print the block HTML.`,
			Args:  cobra.MaximumNArgs(1),
			RunE:  runRenderBlock,
		},
		&cobra.Command{
			Use:   "variation <content.html> [attributes.json]",
			Short: "Apply the random tagline variation to site tagline markup",
			Long:  `Read rendered site tagline HTML from a file and block attributes from a second file or stdin, then print the rewritten HTML.`,
			Args:  cobra.RangeArgs(1, 2),
			RunE:  runRenderVariation,
		},
	)
	return c
}

func runRenderBlock(c *cobra.Command, args []string) error {
	attrs, err := readAttributes(c, argAt(args, 0))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.OutOrStdout(), newPlugin(c).RenderBlock(c.Context(), attrs))
	return err
}

func runRenderVariation(c *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read content: %w", err)
	}
	attrs, err := readAttributes(c, argAt(args, 1))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.OutOrStdout(), newPlugin(c).RenderVariation(c.Context(), string(content), attrs))
	return err
}

// newPlugin honours --index; a negative index keeps the random selector.
func newPlugin(c *cobra.Command) *tagline.Plugin {
	idx, _ := c.Flags().GetInt(flagIndex)
	if idx < 0 {
		return tagline.New()
	}
	return tagline.New(tagline.WithSelector(
		taglines.NewSelector(taglines.WithSource(taglines.FixedSource(idx))),
	))
}

func readAttributes(c *cobra.Command, path string) (map[string]any, error) {
	r, err := openInput(c, path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read attributes: %w", err)
	}

	attrs := map[string]any{}
	if len(data) == 0 {
		return attrs, nil
	}
	if err := json.Unmarshal(data, &attrs); err != nil {
		return nil, fmt.Errorf("decode attributes: %w", err)
	}
	return attrs, nil
}

func argAt(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
