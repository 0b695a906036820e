package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/tagline/pkg/taglines"
)

func newImportCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "import <file>",
		Short: "Convert a .txt, .csv or .yaml list to a YAML tagline file",
		Long: `Read taglines from a text file (one per line), a CSV file (first column)
or a YAML list file, sanitize them and print the YAML list on stdout.

With --watch the file is converted again every time it changes, until the
command is interrupted.`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}
	c.Flags().StringP("out", "o", "", "Write the YAML list to this file instead of stdout")
	c.Flags().BoolP("watch", "w", false, "Convert again whenever the input file changes")
	return c
}

func runImport(c *cobra.Command, args []string) error {
	path := args[0]
	out, _ := c.Flags().GetString("out")
	watch, _ := c.Flags().GetBool("watch")

	convert := func() error {
		list, err := loadList(c, path)
		if err != nil {
			return err
		}
		return writeList(c, out, list, watch)
	}
	if !watch {
		return convert()
	}
	if path == "" || path == "-" {
		return errors.New("--watch needs a file, not stdin")
	}

	return watchFile(c.Context(), path, watchDebounce, convert, func(err error) {
		fmt.Fprintf(c.ErrOrStderr(), "import: %v\n", err)
	})
}

// writeList writes list as YAML to the out file, or to stdout when out is
// empty. Repeated stdout writes are separated as YAML documents.
func writeList(c *cobra.Command, out string, list taglines.List, multi bool) error {
	if out == "" {
		w := c.OutOrStdout()
		if multi {
			if _, err := io.WriteString(w, "---\n"); err != nil {
				return err
			}
		}
		return taglines.WriteYAML(w, list)
	}

	var buf bytes.Buffer
	if err := taglines.WriteYAML(&buf, list); err != nil {
		return err
	}
	tmp := out + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	return os.Rename(tmp, out)
}

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <file.yaml>",
		Short: "Print a YAML tagline file as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  runExport,
	}
}

func runExport(c *cobra.Command, args []string) error {
	r, err := openInput(c, args[0])
	if err != nil {
		return err
	}
	defer r.Close()

	list, err := taglines.LoadYAML(r)
	if err != nil {
		return err
	}
	return taglines.WriteCSV(c.OutOrStdout(), list)
}

// loadList parses path according to its extension.
func loadList(c *cobra.Command, path string) (taglines.List, error) {
	r, err := openInput(c, path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return taglines.ParseCSV(r)
	case ".yaml", ".yml":
		return taglines.LoadYAML(r)
	case ".txt", "":
		data, err := io.ReadAll(io.LimitReader(r, taglines.MaxTextImportSize+1))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		return taglines.ParseText(string(data))
	default:
		return nil, fmt.Errorf("unsupported list format %q", ext)
	}
}
