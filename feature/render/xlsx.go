package render

import (
	"io"
	"strings"

	"naval-tables/feature/weapons/models"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Sheet1"

func renderXLSX(w io.Writer, records []models.Record, opts Options) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetRow(sheetName, "A1", toAny(Headers)); err != nil {
		return err
	}

	join := func(items []string) string { return strings.Join(items, "\n") }
	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, cell, xlsxRow(r, opts, join)); err != nil {
			return err
		}
	}

	if err := f.AutoFilter(sheetName, "A1:"+lastHeaderCell(), nil); err != nil {
		return err
	}

	_, err := f.WriteTo(w)
	return err
}

// xlsxRow keeps numeric columns numeric so the sheet sorts them correctly.
func xlsxRow(r models.Record, opts Options, join func([]string) string) *[]any {
	v := newRow(r, opts.RawNames)
	out := []any{v.weapon, v.bullet, v.bulletType, join(v.ships), join(v.ratings), join(v.types),
		r.CaliberMm, r.Speed, r.RateOfFire, r.MaxDeltaAngle, r.MaxDeltaAngleVertical,
		r.Mass, r.ExplosiveMass, r.FillerPercent, r.FuseDelay, r.FuseDelayMeters,
		r.ExplodeThreshold, r.Penetration, r.Cx, r.PenetrationK,
	}
	return &out
}

func lastHeaderCell() string {
	name, _ := excelize.CoordinatesToCellName(len(Headers), 1)
	return name
}

func toAny(items []string) *[]any {
	out := make([]any, len(items))
	for i, s := range items {
		out[i] = s
	}
	return &out
}
