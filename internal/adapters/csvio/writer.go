package csvio

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jamhacks/jamsched/internal/domain/model"
)

// TimeFormat is the clock format used in every exported table, matching the
// historical schedule exports ("11:05 AM").
const TimeFormat = "3:04 PM"

const outputDirPermission = 0o755

// WriteBucketSchedules writes one CSV per non-empty bucket into dir and
// returns the created file paths in bucket order.
func WriteBucketSchedules(dir string, buckets []model.BucketSchedule) ([]string, error) {
	if err := os.MkdirAll(dir, outputDirPermission); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	var paths []string
	for _, bs := range buckets {
		if len(bs.Slots) == 0 {
			continue
		}
		path := filepath.Join(dir, Slug(bs.Bucket.Name)+"_schedule.csv")
		records := [][]string{{"Team ID", "Team", "Categories", "Start Time", "End Time"}}
		for _, s := range bs.Slots {
			records = append(records, []string{
				s.TeamID,
				s.TeamName,
				strings.Join(s.Categories, ", "),
				s.Start.Format(TimeFormat),
				s.End.Format(TimeFormat),
			})
		}
		if err := writeCSV(path, records); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// WriteMaster writes the master schedule: every slot with its bucket column,
// already sorted by the caller.
func WriteMaster(dir string, slots []model.ScheduledSlot) (string, error) {
	if err := os.MkdirAll(dir, outputDirPermission); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(dir, "master_schedule.csv")
	records := [][]string{{"Bucket", "Team ID", "Team", "Categories", "Start Time", "End Time"}}
	for _, s := range slots {
		records = append(records, []string{
			s.Bucket,
			s.TeamID,
			s.TeamName,
			strings.Join(s.Categories, ", "),
			s.Start.Format(TimeFormat),
			s.End.Format(TimeFormat),
		})
	}
	if err := writeCSV(path, records); err != nil {
		return "", err
	}
	return path, nil
}

// WriteTeamView writes the per-team lookup table so organizers can answer
// "where does team X go next" from one file.
func WriteTeamView(dir string, slots []model.ScheduledSlot) (string, error) {
	if err := os.MkdirAll(dir, outputDirPermission); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(dir, "team_schedule.csv")
	records := [][]string{{"Team", "Bucket", "Categories", "Start Time"}}
	for _, s := range slots {
		records = append(records, []string{
			s.TeamName,
			s.Bucket,
			strings.Join(s.Categories, ", "),
			s.Start.Format(TimeFormat),
		})
	}
	if err := writeCSV(path, records); err != nil {
		return "", err
	}
	return path, nil
}

// Slug converts a bucket name into a safe file name fragment, e.g.
// "Best Use of MongoDB" -> "best_use_of_mongodb".
func Slug(name string) string {
	var b strings.Builder
	lastUnderscore := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore && b.Len() > 0 {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}

func writeCSV(path string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", filepath.Base(path), err)
	}
	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush %s: %w", filepath.Base(path), err)
	}
	return f.Close()
}
