package render

import (
	"bufio"
	"io"
	"strings"

	"naval-tables/feature/weapons/models"
)

func renderWiki(w io.Writer, records []models.Record, opts Options) error {
	bw := bufio.NewWriter(w)

	bw.WriteString("{| class=\"wikitable sortable\"\n")
	for _, h := range Headers {
		bw.WriteString("! " + h + "\n")
	}

	join := func(items []string) string { return strings.Join(items, "<br>") }
	for _, r := range records {
		cells := newRow(r, opts.RawNames).cells(join)
		if !opts.RawNames {
			cells[0] = "[[" + r.WeaponLink + "|" + r.WeaponName + "]]"
		}
		bw.WriteString("|-\n")
		for _, c := range cells {
			bw.WriteString("| " + c + "\n")
		}
	}
	bw.WriteString("|}\n")

	return bw.Flush()
}
