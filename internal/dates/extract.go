package dates

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"mediathek/internal/pipeline"
)

var (
	isoPattern       = regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`)
	germanPattern    = regexp.MustCompile(`\b(\d{1,2})\.(\d{1,2})\.(\d{4}|\d{2})\b`)
	yearMonthPattern = regexp.MustCompile(`\b(\d{4})-(\d{2})\b`)
	monthNamePattern = regexp.MustCompile(`(?i)\b(Januar|January|Februar|February|März|March|April|Mai|May|Juni|June|Juli|July|August|September|Oktober|October|November|Dezember|December)\s+(\d{4})\b`)
	seasonPattern    = regexp.MustCompile(`(?i)\b(Frühling|Frühjahr|Spring|Sommer|Summer|Herbst|Autumn|Fall|Winter)\s+(\d{4})\b`)
	yearPattern      = regexp.MustCompile(`\b((?:19|20)\d{2})\b`)
)

var monthNames = map[string]time.Month{
	"januar": time.January, "january": time.January,
	"februar": time.February, "february": time.February,
	"märz": time.March, "march": time.March,
	"april": time.April,
	"mai":   time.May, "may": time.May,
	"juni": time.June, "june": time.June,
	"juli": time.July, "july": time.July,
	"august":    time.August,
	"september": time.September,
	"oktober":   time.October, "october": time.October,
	"november": time.November,
	"dezember": time.December, "december": time.December,
}

// Canonical day per season: the season's representative midpoint month, first day.
var seasonStarts = map[string]time.Month{
	"frühling": time.April, "frühjahr": time.April, "spring": time.April,
	"sommer": time.July, "summer": time.July,
	"herbst": time.October, "autumn": time.October, "fall": time.October,
	"winter": time.January,
}

type strategy struct {
	source  Source
	extract func(text string) (time.Time, string, bool)
}

// Ordered by priority; the first hit wins.
var strategies = []strategy{
	{SourceISO, extractISO},
	{SourceGerman, extractGerman},
	{SourceMonth, extractMonth},
	{SourceSeason, extractSeason},
	{SourceYear, extractYear},
}

// Extract finds the highest-priority date in text. The returned bool is false
// when no grammar matched.
func Extract(text string) (RecordingDate, bool) {
	for _, s := range strategies {
		if date, matched, ok := s.extract(text); ok {
			return RecordingDate{Date: date, Matched: matched, Source: s.source}, true
		}
	}
	return RecordingDate{}, false
}

// FromKeywords scans a keyword list for explicit ISO or German dates and
// returns the earliest one found. Month, season, and bare-year forms do not
// count here: a keyword list claiming to hold a date must hold a full one.
func FromKeywords(keywords []string) (RecordingDate, error) {
	var best RecordingDate
	found := false
	for _, keyword := range keywords {
		for _, s := range strategies[:2] {
			date, matched, ok := s.extract(keyword)
			if !ok {
				continue
			}
			if !found || date.Before(best.Date) {
				best = RecordingDate{Date: date, Matched: matched, Source: s.source}
				found = true
			}
			break
		}
	}
	if !found {
		return RecordingDate{}, pipeline.Wrap(pipeline.ErrNoDate, "dating", "scan keywords",
			"No ISO or German date among the supplied keywords", nil)
	}
	return best, nil
}

func extractISO(text string) (time.Time, string, bool) {
	for _, match := range isoPattern.FindAllStringSubmatch(text, -1) {
		date, err := time.Parse("2006-01-02", match[0])
		if err != nil {
			continue
		}
		return date, match[0], true
	}
	return time.Time{}, "", false
}

func extractGerman(text string) (time.Time, string, bool) {
	for _, match := range germanPattern.FindAllStringSubmatch(text, -1) {
		layout := "2.1.2006"
		if len(match[3]) == 2 {
			layout = "2.1.06"
		}
		date, err := time.Parse(layout, match[0])
		if err != nil {
			continue
		}
		return date, match[0], true
	}
	return time.Time{}, "", false
}

func extractMonth(text string) (time.Time, string, bool) {
	if match := yearMonthPattern.FindStringSubmatch(text); match != nil {
		if date, err := time.Parse("2006-01", match[0]); err == nil {
			return date, match[0], true
		}
	}
	if match := monthNamePattern.FindStringSubmatch(text); match != nil {
		month, ok := monthNames[strings.ToLower(match[1])]
		if !ok {
			return time.Time{}, "", false
		}
		year, err := strconv.Atoi(match[2])
		if err != nil {
			return time.Time{}, "", false
		}
		return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC), match[0], true
	}
	return time.Time{}, "", false
}

func extractSeason(text string) (time.Time, string, bool) {
	match := seasonPattern.FindStringSubmatch(text)
	if match == nil {
		return time.Time{}, "", false
	}
	month, ok := seasonStarts[strings.ToLower(match[1])]
	if !ok {
		return time.Time{}, "", false
	}
	year, err := strconv.Atoi(match[2])
	if err != nil {
		return time.Time{}, "", false
	}
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC), match[0], true
}

func extractYear(text string) (time.Time, string, bool) {
	match := yearPattern.FindStringSubmatch(text)
	if match == nil {
		return time.Time{}, "", false
	}
	year, err := strconv.Atoi(match[1])
	if err != nil {
		return time.Time{}, "", false
	}
	return time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC), match[0], true
}
