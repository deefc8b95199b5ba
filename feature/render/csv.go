package render

import (
	"encoding/csv"
	"io"
	"strings"

	"naval-tables/feature/weapons/models"
)

func renderCSV(w io.Writer, records []models.Record, opts Options) error {
	cw := csv.NewWriter(w)
	cw.Comma = opts.CSVDelimiter
	if cw.Comma == 0 {
		cw.Comma = ';'
	}
	cw.UseCRLF = opts.CSVCRLF

	sep := opts.ListSeparator
	if sep == "" {
		sep = ", "
	}
	join := func(items []string) string { return strings.Join(items, sep) }

	if err := cw.Write(Headers); err != nil {
		return err
	}
	for _, r := range records {
		if err := cw.Write(newRow(r, opts.RawNames).cells(join)); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
