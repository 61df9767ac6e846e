package shared

import "time"

// ReleaseDateLayout is the wire format for movie release dates, a
// day-first timestamp with an hour-only UTC offset: "03/05/2020 23:00 UTC+01".
// Offset minutes are always zero.
const ReleaseDateLayout = "02/01/2006 15:04 UTC-07"

// Release-date text length bounds checked by the validation layer. Full
// parseability is checked afterwards by the service.
const (
	MinReleaseDateLen = len("2/5/2020 4:3 UTC+01")
	MaxReleaseDateLen = len("02/05/2020 22:33 UTC+01")
)

// ParseReleaseDate parses the wire representation into an absolute timestamp.
func ParseReleaseDate(s string) (time.Time, error) {
	return time.Parse(ReleaseDateLayout, s)
}

// FormatReleaseDate renders t back to the wire representation, so a parsed
// value round-trips to the identical string.
func FormatReleaseDate(t time.Time) string {
	return t.Format(ReleaseDateLayout)
}
