package grader

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreBoard(t *testing.T) {
	board := NewScoreBoard()
	board.Record("trace01", 2)
	board.Record("trace02", 0)
	board.Record("trace03", 2)

	assert.Equal(t, []string{"trace01", "trace02", "trace03"}, board.Order())
	assert.Equal(t, 2, board.Points("trace01"))
	assert.Equal(t, 0, board.Points("trace02"))
	assert.Equal(t, 0, board.Points("unknown"))
	assert.Equal(t, 4, board.Total())
}

func TestScoreBoard_writeOnce(t *testing.T) {
	board := NewScoreBoard()
	board.Record("trace01", 2)
	board.Record("trace01", 0)

	assert.Equal(t, []string{"trace01"}, board.Order())
	assert.Equal(t, 2, board.Points("trace01"))
	assert.Equal(t, 2, board.Total())
}
