package render

import (
	"bufio"
	"html"
	"io"
	"strings"

	"naval-tables/feature/weapons/models"
)

func renderHTML(w io.Writer, records []models.Record, opts Options) error {
	bw := bufio.NewWriter(w)

	bw.WriteString("<table class=\"sortable\">\n<thead>\n<tr>")
	for _, h := range Headers {
		bw.WriteString("<th>" + html.EscapeString(h) + "</th>")
	}
	bw.WriteString("</tr>\n</thead>\n<tbody>\n")

	for _, r := range records {
		bw.WriteString("<tr>")
		for _, c := range htmlCells(r, opts) {
			bw.WriteString("<td>" + c + "</td>")
		}
		bw.WriteString("</tr>\n")
	}
	bw.WriteString("</tbody>\n</table>\n")

	return bw.Flush()
}

// htmlCells returns escaped cell contents, decorated unless raw names were requested.
func htmlCells(r models.Record, opts Options) []string {
	esc := func(items []string) []string {
		out := make([]string, len(items))
		for i, s := range items {
			out[i] = html.EscapeString(s)
		}
		return out
	}
	br := func(items []string) string { return strings.Join(items, "<br>") }

	v := newRow(r, opts.RawNames)
	out := []string{
		html.EscapeString(v.weapon),
		html.EscapeString(v.bullet),
		html.EscapeString(v.bulletType),
		br(esc(v.ships)),
		br(esc(v.ratings)),
		br(esc(v.types)),
	}

	if !opts.RawNames {
		ships := make([]string, len(r.Ships))
		for i, s := range r.Ships {
			ships[i] = `<a href="` + html.EscapeString(opts.WikiBaseURL+s.ID) + `" title="` + html.EscapeString(s.ID) + `">` + html.EscapeString(s.Name) + `</a>`
		}
		out[0] = titled(r.WeaponKey, r.WeaponName)
		out[1] = titled(r.BulletKey, r.BulletName)
		out[2] = titled(r.BulletTypeCode, r.BulletType)
		out[3] = br(ships)
	}

	return append(out, esc(v.scalars)...)
}

func titled(key, text string) string {
	return `<span title="` + html.EscapeString(key) + `">` + html.EscapeString(text) + `</span>`
}
