package shape

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"cereagis/pkg/geo"
)

// FieldSummary feeds one row of the export report.
type FieldSummary struct {
	Name       string
	HasContour bool
	Tracks     []Track
}

// FarmSummary is one sheet of the export report.
type FarmSummary struct {
	Name   string
	Fields []FieldSummary
}

// sheetName makes a farm name usable as an xlsx sheet name: the format
// forbids []:*?/\ and caps names at 31 chars.
func sheetName(farm string, index int) string {
	s := farm
	for _, ch := range []string{"[", "]", ":", "*", "?", "/", "\\"} {
		s = strings.ReplaceAll(s, ch, "_")
	}
	s = strings.TrimSpace(s)
	if s == "" {
		s = fmt.Sprintf("Farm %d", index+1)
	}
	if len(s) > 31 {
		s = s[:31]
	}
	return s
}

// Report builds the export summary workbook: one sheet per farm, one row
// per field with track count, total track length and the track names in
// export order.
func Report(farms []FarmSummary) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	for i, farm := range farms {
		sheet := sheetName(farm.Name, i)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return nil, err
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return nil, err
			}
		}

		headers := []string{"Field", "Contour", "Tracks", "Total length (m)", "Track order"}
		for col, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(col+1, 1)
			if err := f.SetCellValue(sheet, cell, h); err != nil {
				return nil, err
			}
		}

		for row, field := range farm.Fields {
			total := 0.0
			names := make([]string, 0, len(field.Tracks))
			for _, t := range field.Tracks {
				total += geo.Length(t.Points)
				names = append(names, t.Name)
			}
			contour := "no"
			if field.HasContour {
				contour = "yes"
			}
			values := []any{field.Name, contour, len(field.Tracks), total, strings.Join(names, ", ")}
			for col, v := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
				if err := f.SetCellValue(sheet, cell, v); err != nil {
					return nil, err
				}
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write report: %w", err)
	}
	return buf.Bytes(), nil
}
