// Package format renders timestamps the way the display_date and
// display_time config keys ask for.
package format

import (
	"strings"
	"time"
)

// Getter looks up a config key.
type Getter func(key string) (string, bool)

// Formatter formats times according to the config behind get.
type Formatter struct {
	get Getter
}

// New returns a Formatter reading its settings through get. A nil get
// uses the defaults: "Jan 02" dates and a 24h clock.
func New(get Getter) Formatter {
	return Formatter{get: get}
}

// DateTime formats a time with both date and time.
// Example output: "23/01/2024 15:04" or "01/23/2024 3:04 PM"
func (f Formatter) DateTime(t time.Time) string {
	return f.Date(t) + " " + f.Time(t)
}

// DateTimeShort formats a time with short date (no year) and time.
// Example output: "23/01 15:04" or "01/23 3:04 PM"
func (f Formatter) DateTimeShort(t time.Time) string {
	return f.DateShort(t) + " " + f.Time(t)
}

// Relative uses DateTimeShort for times in the same year as now and
// DateTime otherwise.
func (f Formatter) Relative(t, now time.Time) string {
	if t.Year() == now.Year() {
		return f.DateTimeShort(t)
	}
	return f.DateTime(t)
}

// Date formats only the date portion.
// Example output: "23/01/2024" or "01/23/2024" or "2024-01-23"
func (f Formatter) Date(t time.Time) string {
	return t.Format(f.dateFormat())
}

// DateShort formats date without year.
// Example output: "23/01" or "01/23"
func (f Formatter) DateShort(t time.Time) string {
	return t.Format(f.dateFormatShort())
}

// Time formats only the time portion.
// Example output: "15:04" or "3:04 PM"
func (f Formatter) Time(t time.Time) string {
	if f.lookup("display_time", "24h") == "12h" {
		return t.Format("3:04 PM")
	}
	return t.Format("15:04")
}

func (f Formatter) lookup(key, fallback string) string {
	if f.get == nil {
		return fallback
	}
	if v, ok := f.get(key); ok && v != "" {
		return v
	}
	return fallback
}

// dateFormat returns the Go time layout for dates.
func (f Formatter) dateFormat() string {
	switch displayDate := f.lookup("display_date", "Jan 02"); displayDate {
	case "mm/dd/yyyy":
		return "01/02/2006"
	case "yyyy-mm-dd":
		return "2006-01-02"
	case "dd/mm/yyyy":
		return "02/01/2006"
	default:
		// A custom Go layout such as "Jan 02".
		return displayDate
	}
}

// dateFormatShort returns the Go time layout for dates without a year.
func (f Formatter) dateFormatShort() string {
	switch displayDate := f.lookup("display_date", "Jan 02"); displayDate {
	case "mm/dd/yyyy":
		return "01/02"
	case "yyyy-mm-dd":
		return "01-02"
	case "dd/mm/yyyy":
		return "02/01"
	default:
		// Strip year patterns from custom layouts.
		short := displayDate
		for _, year := range []string{"2006", "/06", "-06", " 06"} {
			short = strings.ReplaceAll(short, year, "")
		}
		short = strings.Trim(strings.TrimSpace(short), "/-")
		if short == "" {
			return "Jan 02"
		}
		return short
	}
}
