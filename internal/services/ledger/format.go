package ledger

import (
	"fmt"
	"math"
)

// FormatDuration renders a seconds value as elapsed-time text ("1:01:01").
// Hours keep counting past 24. Negative or non-finite input formats as the
// zero duration; this is a presentation fallback for possibly absent
// fields, not a validation gate.
func FormatDuration(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		seconds = 0
	}

	total := int64(seconds)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}
