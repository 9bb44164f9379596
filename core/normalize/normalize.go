// Package normalize rewrites captured shell session output into a canonical
// form so that two runs differing only in run-dependent values (process IDs,
// incidental whitespace) compare equal.
package normalize

import "regexp"

// Named rules that individual test cases can opt into on top of the base
// normalization.
const (
	// RulePSListing rewrites the PID and PGID columns of ps-style job
	// listings, whose values vary run to run.
	RulePSListing = "ps-listing"
	// RulePromptEnding strips trailing periods and whitespace so shells
	// that do or don't end status lines with a period compare equal.
	RulePromptEnding = "prompt-ending"
)

var (
	// Anything parenthesized is assumed to be a PID annotation, e.g.
	// "[1] (9723) ./myspin 2 &".
	parenRun = regexp.MustCompile(`(?s)\(.*?\)`)

	trailingSpace = regexp.MustCompile(`(?m)\s+$`)

	// Heuristic match for ps output columns: "PID PGID STAT ...". The
	// leading dot keeps a truncated first column in play. Deliberately
	// loose; tuned to the reference shell's job listings, not a grammar.
	psColumns = regexp.MustCompile(`(?m)(.\d+\s+\d+)\s+(\w.+\s+\w.\s+.*)`)

	promptEnding = regexp.MustCompile(`(?m)\.*\s*$`)
)

var namedRules = map[string]func(string) string{
	RulePSListing: func(s string) string {
		return psColumns.ReplaceAllString(s, " PID PID $2 ")
	},
	RulePromptEnding: func(s string) string {
		return promptEnding.ReplaceAllString(s, "")
	},
}

// KnownRule reports whether name identifies a named normalization rule.
func KnownRule(name string) bool {
	_, ok := namedRules[name]
	return ok
}

// Apply canonicalizes raw captured output. The base rules always run:
// parenthesized runs collapse to the literal "(PID)" and trailing whitespace
// is removed from every line. Any named extra rules run afterwards, in the
// order given. Unknown rule names are skipped; normalization is total and
// never fails.
func Apply(text string, extraRules ...string) string {
	out := parenRun.ReplaceAllString(text, "(PID)")
	out = trailingSpace.ReplaceAllString(out, "")
	for _, name := range extraRules {
		if rule, ok := namedRules[name]; ok {
			out = rule(out)
		}
	}
	// The ps rewrite pads its replacement; strip again so the result is a
	// fixed point of Apply.
	return trailingSpace.ReplaceAllString(out, "")
}
