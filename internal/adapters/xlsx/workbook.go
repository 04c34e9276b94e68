// Package xlsx exports the full schedule as a single workbook for the
// organizer printouts: a Master sheet plus one sheet per bucket.
package xlsx

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/jamhacks/jamsched/internal/adapters/csvio"
	"github.com/jamhacks/jamsched/internal/domain/model"
)

// Excel caps sheet names at 31 chars and rejects a handful of characters.
const maxSheetNameLen = 31

// WorkbookName is the file written into the output directory.
const WorkbookName = "judging_schedule.xlsx"

// WriteWorkbook writes the workbook into dir and returns its path.
func WriteWorkbook(dir string, buckets []model.BucketSchedule, master []model.ScheduledSlot) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const masterSheet = "Master"
	if err := f.SetSheetName("Sheet1", masterSheet); err != nil {
		return "", fmt.Errorf("rename master sheet: %w", err)
	}
	if err := writeSheet(f, masterSheet,
		[]interface{}{"Bucket", "Team ID", "Team", "Categories", "Start Time", "End Time"},
		master, true); err != nil {
		return "", err
	}

	used := map[string]bool{masterSheet: true}
	for _, bs := range buckets {
		if len(bs.Slots) == 0 {
			continue
		}
		name := sheetName(bs.Bucket.Name, used)
		if _, err := f.NewSheet(name); err != nil {
			return "", fmt.Errorf("create sheet %q: %w", name, err)
		}
		if err := writeSheet(f, name,
			[]interface{}{"Team ID", "Team", "Categories", "Start Time", "End Time"},
			bs.Slots, false); err != nil {
			return "", err
		}
	}

	path := filepath.Join(dir, WorkbookName)
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("save workbook: %w", err)
	}
	return path, nil
}

func writeSheet(f *excelize.File, sheet string, header []interface{}, slots []model.ScheduledSlot, withBucket bool) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write header of %q: %w", sheet, err)
	}
	for i, s := range slots {
		row := []interface{}{}
		if withBucket {
			row = append(row, s.Bucket)
		}
		row = append(row,
			s.TeamID,
			s.TeamName,
			strings.Join(s.Categories, ", "),
			s.Start.Format(csvio.TimeFormat),
			s.End.Format(csvio.TimeFormat),
		)
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d of %q: %w", i+2, sheet, err)
		}
	}
	return nil
}

// sheetName sanitizes a bucket name into a unique, legal sheet name.
func sheetName(name string, used map[string]bool) string {
	replacer := strings.NewReplacer(":", " ", "\\", " ", "/", " ", "?", " ", "*", " ", "[", " ", "]", " ")
	clean := strings.TrimSpace(replacer.Replace(name))
	if clean == "" {
		clean = "Bucket"
	}
	// Excel's cap counts characters, and a byte slice could cut a rune in
	// half, so truncate on rune boundaries.
	runes := []rune(clean)
	if len(runes) > maxSheetNameLen {
		runes = runes[:maxSheetNameLen]
		clean = string(runes)
	}
	candidate := clean
	for i := 2; used[candidate]; i++ {
		suffix := fmt.Sprintf(" %d", i)
		if len(runes)+len(suffix) > maxSheetNameLen {
			candidate = string(runes[:maxSheetNameLen-len(suffix)]) + suffix
		} else {
			candidate = clean + suffix
		}
	}
	used[candidate] = true
	return candidate
}
