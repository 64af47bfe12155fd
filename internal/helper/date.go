package helper

import "time"

var seoul = loadSeoul()

func loadSeoul() *time.Location {
	loc, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		// no tzdata on the host
		return time.FixedZone("KST", 9*60*60)
	}
	return loc
}

// Seoul is the display time zone of the site.
func Seoul() *time.Location { return seoul }

// DisplayDate formats t the way a ko-KR browser prints a date,
// e.g. "2025. 1. 10.".
func DisplayDate(t time.Time) string {
	return t.In(seoul).Format("2006. 1. 2.")
}
