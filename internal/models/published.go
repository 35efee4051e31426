package models

import "time"

const (
	// PublishedLayout is the wire format of Article.PublishedAt. The trailing
	// Z is matched literally and carries no zone information.
	PublishedLayout = "2006-01-02T15:04:05Z"

	// DisplayLayout renders a published time as date over clock time.
	DisplayLayout = "02-Jan-2006\n03:04:05 PM"

	// TimeNotAvailable is shown when a published time cannot be parsed.
	TimeNotAvailable = "Time Not Available"
)

// SortZone is the zone publish times are read in for ordering (Asia/Kolkata).
var SortZone = time.FixedZone("IST", 5*60*60+30*60)

// PublishedMillis returns the publish time in milliseconds since the epoch,
// reading the wall clock in SortZone. Empty or malformed values return 0.
func (a Article) PublishedMillis() int64 {
	t, ok := parsePublished(a.PublishedAt, SortZone)
	if !ok {
		return 0
	}
	return t.UnixMilli()
}

// DisplayTime formats the publish time for the list, reading and rendering
// the wall clock in loc.
func (a Article) DisplayTime(loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	t, ok := parsePublished(a.PublishedAt, loc)
	if !ok {
		return TimeNotAvailable
	}
	return t.In(loc).Format(DisplayLayout)
}

func parsePublished(value string, loc *time.Location) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(PublishedLayout, value, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
