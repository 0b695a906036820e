package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/tagline/pkg/legacy"
)

const (
	flagDB     = "db"
	flagFormat = "format"
)

func newLegacyCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "legacy",
		Short: "Inspect content that still uses the legacy block",
	}

	scan := &cobra.Command{
		Use:   "scan",
		Short: "List posts containing the legacy random description block",
		Args:  cobra.NoArgs,
		RunE:  runLegacyScan,
	}
	scan.Flags().String(flagDB, "", "SQLite DSN of the content store")
	scan.Flags().StringP(flagFormat, "f", "table", "Output format: table, yaml")
	_ = scan.MarkFlagRequired(flagDB)

	c.AddCommand(scan)
	return c
}

func runLegacyScan(c *cobra.Command, _ []string) error {
	dsn, _ := c.Flags().GetString(flagDB)
	format, _ := c.Flags().GetString(flagFormat)
	if format != "table" && format != "yaml" {
		return fmt.Errorf("invalid format %q: must be 'table' or 'yaml'", format)
	}

	ctx := c.Context()
	db, err := legacy.Open(ctx, dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	posts, err := legacy.NewScanner(db).FindPosts(ctx)
	if err != nil {
		return err
	}

	out := c.OutOrStdout()
	if format == "yaml" {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(posts); err != nil {
			return err
		}
		return enc.Close()
	}

	if len(posts) == 0 {
		_, err := fmt.Fprintln(out, "No posts use the legacy block.")
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTYPE\tSTATUS\tMODIFIED\tTITLE")
	for _, p := range posts {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			p.ID, p.Type, p.Status, p.Modified.UTC().Format(time.DateTime), p.DisplayTitle())
	}
	return tw.Flush()
}
