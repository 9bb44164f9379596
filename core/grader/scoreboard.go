package grader

// ScoreBoard accumulates awarded points per test case, preserving suite
// order for the summary. Append-only; a case's score is written once.
type ScoreBoard struct {
	order  []string
	points map[string]int
}

func NewScoreBoard() *ScoreBoard {
	return &ScoreBoard{points: make(map[string]int)}
}

// Record stores the awarded points for a case. Recording the same case
// twice keeps the first score.
func (b *ScoreBoard) Record(name string, points int) {
	if _, ok := b.points[name]; ok {
		return
	}
	b.order = append(b.order, name)
	b.points[name] = points
}

// Points returns the score recorded for the named case, 0 if none.
func (b *ScoreBoard) Points(name string) int {
	return b.points[name]
}

// Order returns the case names in recording order.
func (b *ScoreBoard) Order() []string {
	return b.order
}

// Total is the sum of all awarded points.
func (b *ScoreBoard) Total() int {
	var total int
	for _, pts := range b.points {
		total += pts
	}
	return total
}
