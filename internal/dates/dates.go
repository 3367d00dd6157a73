package dates

import (
	"fmt"
	"os"
	"time"

	"mediathek/internal/pipeline"
)

// Source identifies the grammar or fallback that produced a recording date.
type Source string

const (
	SourceISO           Source = "iso"
	SourceGerman        Source = "german"
	SourceMonth         Source = "month"
	SourceSeason        Source = "season"
	SourceYear          Source = "year"
	SourceFileTimestamp Source = "file-timestamp"
)

// RecordingDate is a resolved calendar date together with the substring it was
// extracted from. Matched is empty when the date came from a file timestamp.
// Values are immutable once computed.
type RecordingDate struct {
	Date    time.Time
	Matched string
	Source  Source
}

// ISO renders the date in the canonical YYYY-MM-DD form used for group
// identities and file names.
func (r RecordingDate) ISO() string {
	return r.Date.Format("2006-01-02")
}

// Year returns the calendar year of the resolved date.
func (r RecordingDate) Year() int {
	return r.Date.Year()
}

// FromFileTimestamp builds a RecordingDate from the file's modification time.
// This is the uniform fallback when no grammar matches the name.
func FromFileTimestamp(path string) (RecordingDate, error) {
	info, err := os.Stat(path)
	if err != nil {
		return RecordingDate{}, pipeline.Wrap(pipeline.ErrNotFound, "dating", "stat file",
			fmt.Sprintf("Cannot read timestamp of %q", path), err)
	}
	mod := info.ModTime()
	day := time.Date(mod.Year(), mod.Month(), mod.Day(), 0, 0, 0, 0, time.UTC)
	return RecordingDate{Date: day, Source: SourceFileTimestamp}, nil
}
