package components

import (
	"fmt"
	"strings"

	"github.com/pthm/livedom"
)

// Sidebar shows the running totals.
func Sidebar(s TodoStore) *livedom.Tag {
	stats := s.Stats()
	return livedom.Aside(
		livedom.H2("Stats"),
		livedom.P(stats.Formatted(func(st TodoStats) string {
			return fmt.Sprintf("%d of %d done", st.Completed, st.Total)
		})),
		livedom.P(stats.Formatted(formatTags)).Class("tags"),
	).Class("sidebar")
}

func formatTags(st TodoStats) string {
	var parts []string
	for _, tag := range AllTags {
		if n := st.ByTag[tag]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s: %d", tag, n))
		}
	}
	if len(parts) == 0 {
		return "no tags"
	}
	return strings.Join(parts, ", ")
}
