// Package compare decides whether two normalized session captures are
// equivalent and renders a line diff when they are not.
package compare

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Equal reports whether the two normalized texts match. Comparison is
// case-insensitive to tolerate incidental case differences in status text.
func Equal(student, reference string) bool {
	return strings.ToLower(student) == strings.ToLower(reference)
}

// Diff renders a unified line-level diff of the two normalized texts for
// human inspection. It is purely diagnostic; scoring is binary and never
// reads the diff.
func Diff(student, reference string) string {
	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(student),
		B:        difflib.SplitLines(reference),
		FromFile: "student",
		ToFile:   "reference",
		Context:  3,
	})
	if err != nil {
		// GetUnifiedDiffString only fails on writer errors, and
		// strings.Builder never fails.
		return err.Error()
	}
	return text
}
