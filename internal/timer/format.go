package timer

import (
	"fmt"
	"time"
)

// FormatMMSS renders a duration as zero-padded MM:SS, flooring to whole
// seconds. Negative durations render as 00:00; minutes are not capped,
// so 5999 seconds renders as 99:59.
func FormatMMSS(d time.Duration) string {
	total := int(d.Seconds())
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
