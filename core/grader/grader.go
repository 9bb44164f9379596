// Package grader runs the grading suite: each case goes through the session
// driver twice (student shell, then reference shell), both captures are
// normalized and compared, and the verdict feeds the score board.
package grader

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/csapp-labs/tshgrade/core/compare"
	"github.com/csapp-labs/tshgrade/core/config"
	"github.com/csapp-labs/tshgrade/core/driver"
	"github.com/csapp-labs/tshgrade/core/normalize"
)

// Runner plays a trace against a target executable and returns the captured
// output. *driver.Driver implements it; tests substitute fakes.
type Runner interface {
	Run(trace, target string) (string, error)
}

// Verdict is the terminal result of one case: full points or zero, with the
// diff retained when the outputs diverged. Written once, never mutated.
type Verdict struct {
	Name   string
	Points int
	Diff   string
}

var (
	passMark = color.New(color.FgGreen, color.Bold)
	failMark = color.New(color.FgRed, color.Bold)
)

// Grader executes the configured suite sequentially and writes the running
// log and final summary to out.
type Grader struct {
	suite  *config.Suite
	runner Runner
	out    io.Writer
}

func New(suite *config.Suite, runner Runner, out io.Writer) *Grader {
	return &Grader{suite: suite, runner: runner, out: out}
}

// Grade runs every configured case in order. No single-case failure stops
// the run; every case ends up on the returned board exactly once.
func (g *Grader) Grade() *ScoreBoard {
	board := NewScoreBoard()
	for _, tc := range g.suite.Tests {
		verdict := g.grade(tc)
		board.Record(verdict.Name, verdict.Points)
	}
	g.printSummary(board)
	return board
}

func (g *Grader) grade(tc config.TestCase) Verdict {
	student, err := g.runner.Run(tc.Trace, g.suite.Student)
	if err != nil {
		return g.fail(tc, err)
	}
	reference, err := g.runner.Run(tc.Trace, g.suite.Reference)
	if err != nil {
		return g.fail(tc, err)
	}

	studentNorm := normalize.Apply(student, tc.Rules...)
	referenceNorm := normalize.Apply(reference, tc.Rules...)

	if compare.Equal(studentNorm, referenceNorm) {
		fmt.Fprintf(g.out, "%s outputs matched (%d points)\n", tc.Name, tc.Points)
		return Verdict{Name: tc.Name, Points: tc.Points}
	}

	diff := compare.Diff(studentNorm, referenceNorm)
	fmt.Fprintf(g.out, "------------ ERROR: %s outputs DIFFER (0 points) ------------------------\n", tc.Name)
	fmt.Fprint(g.out, diff)
	fmt.Fprintf(g.out, "\n------------ end differences for %s ------------------------------------\n", tc.Name)
	return Verdict{Name: tc.Name, Diff: diff}
}

// fail converts a driver failure into a zero-point verdict with a
// distinguishing diagnostic. Grading continues with the next case.
func (g *Grader) fail(tc config.TestCase, err error) Verdict {
	var exitErr *driver.ExitError
	var timeoutErr *driver.TimeoutError
	switch {
	case errors.As(err, &timeoutErr):
		fmt.Fprintf(g.out, "Failed test: %s (Test timed out)\n", tc.Name)
	case errors.As(err, &exitErr):
		fmt.Fprintf(g.out, "Failed test: %s\n", tc.Name)
		fmt.Fprintln(g.out, exitErr.Output)
	default:
		fmt.Fprintf(g.out, "Failed test: %s\n", tc.Name)
		fmt.Fprintln(g.out, err)
	}
	return Verdict{Name: tc.Name}
}

func (g *Grader) printSummary(board *ScoreBoard) {
	fmt.Fprintf(g.out, "\n\n====  SHELL LAB SCORE SUMMARY  ====\n\n")
	for _, name := range board.Order() {
		if pts := board.Points(name); pts > 0 {
			fmt.Fprintf(g.out, "%s (%d) %s\n", passMark.Sprint("[*PASSED*]"), pts, name)
		} else {
			fmt.Fprintf(g.out, "%s (0) %s\n", failMark.Sprint("[ FAILED ]"), name)
		}
	}
	fmt.Fprintf(g.out, "\n\n=== SHELL LAB SCORE: %d ===\n\n", board.Total())
}
