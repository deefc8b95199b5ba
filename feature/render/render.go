package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"naval-tables/feature/weapons/models"
)

// Format selects the output serialization.
type Format string

const (
	FormatWiki Format = "wiki"
	FormatHTML Format = "html"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// Formats lists every supported format.
var Formats = []Format{FormatWiki, FormatHTML, FormatJSON, FormatCSV, FormatXLSX}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == strings.ToLower(s) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (want one of wiki, html, json, csv, xlsx)", s)
}

// ContentType returns the MIME type of a format.
func (f Format) ContentType() string {
	switch f {
	case FormatHTML:
		return "text/html; charset=utf-8"
	case FormatJSON:
		return "application/json"
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "text/plain; charset=utf-8"
	}
}

// Extension returns the file extension used for a format.
func (f Format) Extension() string {
	if f == FormatWiki {
		return ".txt"
	}
	return "." + string(f)
}

// Options controls rendering.
type Options struct {
	Format Format
	// RawNames prints keys instead of translated names, without decoration.
	RawNames bool
	// CSVDelimiter separates CSV fields. Zero means ';'.
	CSVDelimiter rune
	// CSVCRLF terminates CSV lines with \r\n instead of \n.
	CSVCRLF bool
	// ListSeparator joins list values (ships, ratings, types) in CSV cells. Empty means ", ".
	ListSeparator string
	// WikiBaseURL prefixes unit ids in HTML ship links.
	WikiBaseURL string
}

// DefaultOptions returns wiki output with the CSV defaults filled in.
func DefaultOptions() Options {
	return Options{
		Format:        FormatWiki,
		CSVDelimiter:  ';',
		ListSeparator: ", ",
		WikiBaseURL:   "https://wiki.warthunder.com/unit/",
	}
}

// Headers are the column titles shared by the tabular formats.
var Headers = []string{
	"Weapon", "Shell", "Type", "Ships", "BR", "Ship type",
	"Caliber (mm)", "Speed (m/s)", "Rate of fire (rpm)",
	"Max delta angle", "Max delta angle vertical",
	"Mass (kg)", "Explosive mass (kg)", "Filler (%)",
	"Fuse delay (s)", "Fuse delay (m)", "Explode threshold",
	"Penetration (mm)", "Cx", "Penetration K",
}

// Render writes records to w in the selected format.
func Render(w io.Writer, records []models.Record, opts Options) error {
	switch opts.Format {
	case FormatWiki, "":
		return renderWiki(w, records, opts)
	case FormatHTML:
		return renderHTML(w, records, opts)
	case FormatJSON:
		return renderJSON(w, records, opts)
	case FormatCSV:
		return renderCSV(w, records, opts)
	case FormatXLSX:
		return renderXLSX(w, records, opts)
	default:
		return fmt.Errorf("unknown format %q", opts.Format)
	}
}

// row is a record split into cells before format-specific decoration.
type row struct {
	weapon     string
	bullet     string
	bulletType string
	ships      []string
	ratings    []string
	types      []string
	scalars    []string
}

func newRow(r models.Record, raw bool) row {
	out := row{
		weapon:     r.WeaponName,
		bullet:     r.BulletName,
		bulletType: r.BulletType,
		ships:      r.ShipNames(),
		types:      r.ShipTypes(),
		scalars:    scalars(r),
	}
	if raw {
		out.weapon = r.WeaponKey
		out.bullet = r.BulletKey
		out.bulletType = r.BulletTypeCode
		out.ships = r.ShipIDs()
		out.types = r.ShipIDs()
	}
	for _, br := range r.BattleRatings() {
		out.ratings = append(out.ratings, formatRating(br))
	}
	return out
}

func scalars(r models.Record) []string {
	return []string{
		strconv.Itoa(r.CaliberMm),
		strconv.Itoa(r.Speed),
		formatFloat(r.RateOfFire),
		formatFloat(r.MaxDeltaAngle),
		formatFloat(r.MaxDeltaAngleVertical),
		formatFloat(r.Mass),
		formatFloat(r.ExplosiveMass),
		formatFloat(r.FillerPercent),
		formatFloat(r.FuseDelay),
		formatFloat(r.FuseDelayMeters),
		formatFloat(r.ExplodeThreshold),
		formatFloat(r.Penetration),
		formatFloat(r.Cx),
		formatFloat(r.PenetrationK),
	}
}

// cells flattens a row using join for list columns.
func (r row) cells(join func([]string) string) []string {
	out := []string{r.weapon, r.bullet, r.bulletType, join(r.ships), join(r.ratings), join(r.types)}
	return append(out, r.scalars...)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatRating(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
