package taglines

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	// MaxTextImportSize bounds pasted bulk input, in bytes.
	MaxTextImportSize = 50_000

	// MaxCSVImportSize bounds uploaded CSV files, in bytes.
	MaxCSVImportSize = 100_000
)

// ParseText imports one tagline per line from pasted text.
func ParseText(text string) (List, error) {
	if len(text) > MaxTextImportSize {
		return nil, fmt.Errorf("%w: %d bytes exceeds %d", ErrInputTooLarge, len(text), MaxTextImportSize)
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrNoTaglines
	}

	list := Sanitize(strings.Split(text, "\n"))
	if list.Empty() {
		return nil, ErrNoTaglines
	}
	return list, nil
}

// ParseCSV imports taglines from the first column of every CSV record.
// Quoted fields are decoded; records may have any number of columns.
func ParseCSV(r io.Reader) (List, error) {
	body, err := io.ReadAll(io.LimitReader(r, MaxCSVImportSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCSV, err)
	}
	if len(body) > MaxCSVImportSize {
		return nil, fmt.Errorf("%w: csv exceeds %d bytes", ErrInputTooLarge, MaxCSVImportSize)
	}

	cr := csv.NewReader(strings.NewReader(string(body)))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	var rows []string
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidCSV, err)
		}
		if len(record) == 0 {
			continue
		}
		rows = append(rows, record[0])
	}

	list := Sanitize(rows)
	if list.Empty() {
		return nil, ErrNoTaglines
	}
	return list, nil
}

// WriteCSV writes one always-quoted field per line, doubling embedded quotes.
func WriteCSV(w io.Writer, list List) error {
	var b strings.Builder
	for _, t := range list {
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(t, `"`, `""`))
		b.WriteString("\"\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}
