package platform

import (
	"fmt"
	"regexp"
	"strconv"
)

// iso8601Duration matches the PT<h>H<m>M<s>S shapes returned by the
// YouTube contentDetails API (each segment optional).
var iso8601Duration = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// ParseISO8601Duration converts a YouTube duration string to seconds.
// "PT1H2M3S" -> 3723, "PT45S" -> 45, "PT0S" -> 0.
func ParseISO8601Duration(s string) (int, error) {
	m := iso8601Duration.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("invalid ISO-8601 duration %q", s)
	}

	seconds := 0
	for i, mult := range []int{3600, 60, 1} {
		if m[i+1] == "" {
			continue
		}
		v, err := strconv.Atoi(m[i+1])
		if err != nil {
			return 0, fmt.Errorf("invalid ISO-8601 duration %q: %w", s, err)
		}
		seconds += v * mult
	}
	return seconds, nil
}
