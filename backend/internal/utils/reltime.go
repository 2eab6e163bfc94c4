package utils

import (
	"fmt"
	"time"
)

var relativeUnits = []struct {
	size time.Duration
	name string
}{
	{24 * time.Hour, "day"},
	{time.Hour, "hour"},
	{time.Minute, "minute"},
	{time.Second, "second"},
}

// RelativeDescription renders a gap as "N <unit>(s) later" using the largest
// unit (day, hour, minute, then second) whose integer quotient is at least 1.
func RelativeDescription(d time.Duration) string {
	if d < 0 {
		d = -d
	}
	for _, u := range relativeUnits {
		if n := int64(d / u.size); n >= 1 {
			return fmt.Sprintf("%d %s later", n, plural(n, u.name))
		}
	}
	return "moments later"
}

func plural(n int64, unit string) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
