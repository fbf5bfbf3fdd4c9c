// internal/omok/eval.go
//
// Static position evaluation.
// Each stone is scored per direction by the run it belongs to: its length and
// whether at least one end is open. Scores are scaled by a centre-biased position
// weight and the opponent's total is subtracted.

package omok

// Pattern scores. Open runs are worth roughly ten times their blocked counterparts.
const (
	ScoreWin          = 100000
	ScoreOpenFour     = 10000
	ScoreBlockedFour  = 1000
	ScoreOpenThree    = 1000
	ScoreBlockedThree = 100
	ScoreOpenTwo      = 100
	ScoreBlockedTwo   = 10
)

// positionWeight[i] = max(0, 10 - manhattan distance to the centre).
var positionWeight = func() [Size * Size]int {
	var w [Size * Size]int
	for i := range w {
		m := moveAt(i)
		d := abs(m.Row-Center.Row) + abs(m.Col-Center.Col)
		w[i] = max(0, 10-d)
	}
	return w
}()

// PositionWeight returns the centre bias of m.
func PositionWeight(m Move) int {
	if !m.Valid() {
		return 0
	}
	return positionWeight[m.index()]
}

func patternScore(length, openEnds int) int {
	open := openEnds > 0
	switch {
	case length >= winLength:
		return ScoreWin
	case length == 4 && open:
		return ScoreOpenFour
	case length == 4:
		return ScoreBlockedFour
	case length == 3 && open:
		return ScoreOpenThree
	case length == 3:
		return ScoreBlockedThree
	case length == 2 && open:
		return ScoreOpenTwo
	case length == 2:
		return ScoreBlockedTwo
	}
	return 0
}

// StoneScore sums the line-pattern scores of a stone of colour c at m over the
// four directions, treating m as holding c.
func StoneScore(b *Board, m Move, c Cell) int {
	score := 0
	for _, d := range directions {
		score += patternScore(RunAt(b, m, c, d[0], d[1]))
	}
	return score
}

// Evaluate scores the position from player's point of view.
func Evaluate(b *Board, player Cell) int {
	opp := player.Opponent()
	score := 0
	for i, cell := range b.cells {
		if cell == Empty || positionWeight[i] == 0 {
			continue
		}
		v := StoneScore(b, moveAt(i), cell) * positionWeight[i]
		switch cell {
		case player:
			score += v
		case opp:
			score -= v
		}
	}
	return score
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
