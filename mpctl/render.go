package mpctl

import (
	"fmt"
	"strings"
	"time"
)

// StripDecoration removes the sign and decimal point from a rendered
// fixed-format value, leaving the bare digit sequence WriteDigitReport
// groups.
func StripDecoration(rendered string) string {
	rendered = strings.TrimPrefix(rendered, "-")
	rendered = strings.TrimPrefix(rendered, "+")
	return strings.ReplaceAll(rendered, ".", "")
}

// WriteDigitReport formats a computed value's decimal digit string per
// §6.1's output-file contract: a timing-report block, then the digits
// grouped 10 per group, 10 groups per line, with a cumulative digit-count
// annotation every 100 digits and a blank line every 1,000.
func WriteDigitReport(label string, elapsed time.Duration, digits string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", label)
	fmt.Fprintf(&b, "# elapsed: %s\n", elapsed)
	fmt.Fprintf(&b, "# digits: %d\n\n", len(digits))

	count := 0
	groupsThisLine := 0
	for i := 0; i < len(digits); i += 10 {
		end := i + 10
		if end > len(digits) {
			end = len(digits)
		}
		b.WriteString(digits[i:end])
		count += end - i
		groupsThisLine++
		if groupsThisLine == 10 {
			fmt.Fprintf(&b, "  (%d)\n", count)
			groupsThisLine = 0
		} else {
			b.WriteByte(' ')
		}
		if count%1000 == 0 {
			b.WriteByte('\n')
		}
	}
	if groupsThisLine != 0 {
		fmt.Fprintf(&b, " (%d)\n", count)
	}
	return b.String()
}
