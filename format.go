package probkit

import (
	"fmt"
	"strings"
)

// defaultFormat renders four fixed decimal places.
const defaultFormat = "%.4f"

// String returns the default rendering, e.g. "P(0.2500)".
func (p Probability) String() string {
	return p.Text("")
}

// Text renders the probability as "P(<magnitude>)" using the given
// fmt floating-point spec, defaulting to four decimal places when the
// spec is empty. A spec containing a literal percent sign (written
// "%%") renders the magnitude scaled by 100:
//
//	New(0.255).Text("")        // "P(0.2550)"
//	New(0.255).Text("%.2f")    // "P(0.26)"
//	New(0.255).Text("%.1f%%")  // "P(25.5%)"
func (p Probability) Text(format string) string {
	if format == "" {
		format = defaultFormat
	}
	value := p.value
	if strings.Contains(format, "%%") {
		value *= 100
	}
	return fmt.Sprintf("P("+format+")", value)
}
