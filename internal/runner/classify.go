package runner

import (
	"bufio"
	"strings"
)

// Classifier decides whether diagnostic text indicates a real failure.
//
// It reports succeeded=true when the text is benign. Package managers write
// plenty of warnings and informational noise to stderr, so the default
// classifier only treats known error signatures as failures. This is a
// deliberate precision/recall trade-off: a real failure that doesn't match
// the signature is missed, but noisy output never raises a false alarm.
type Classifier func(diagnostics string) (succeeded bool)

// errorPrefixes are the known failure signatures: apt's "E:" lines and the
// generic "ERROR" prefix used by most of the installer scripts the catalog
// shells out to.
var errorPrefixes = []string{"E:", "ERROR"}

// DefaultClassifier reports failure only for diagnostic lines beginning with
// a known error-level marker. Any other text, including non-empty warnings,
// is treated as benign.
func DefaultClassifier(diagnostics string) bool {
	sc := bufio.NewScanner(strings.NewReader(diagnostics))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		for _, prefix := range errorPrefixes {
			if strings.HasPrefix(line, prefix) {
				return false
			}
		}
	}
	return true
}
