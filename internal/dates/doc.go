// Package dates extracts recording dates from file names and keyword lists.
//
// Extraction tries a fixed priority order of grammars: ISO dates, German
// short dates, year-month forms (numeric or localized month names), season
// names with a year, and finally a bare four-digit year. Each successful
// match carries the exact substring it consumed so callers can cut it out of
// a title, plus a source tag identifying the grammar that matched. A separate
// file-timestamp source covers files whose names carry no date at all.
package dates
