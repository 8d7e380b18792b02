package game

import "fmt"

// StandardRevealRounds are the 1-based rounds on which the classic game
// discloses the fugitive.
var StandardRevealRounds = []int{3, 8, 13, 18, 24}

const StandardRoundCount = 24

// StandardRounds returns the classic 24-round schedule.
func StandardRounds() []bool {
	rounds, err := NewRounds(StandardRoundCount, StandardRevealRounds...)
	if err != nil {
		panic(err)
	}
	return rounds
}

// NewRounds builds a schedule of total rounds with reveals on the given
// 1-based rounds.
func NewRounds(total int, reveals ...int) ([]bool, error) {
	if total <= 0 {
		return nil, fmt.Errorf("round count must be positive, got %d", total)
	}
	rounds := make([]bool, total)
	for _, r := range reveals {
		if r < 1 || r > total {
			return nil, fmt.Errorf("reveal round %d outside 1..%d", r, total)
		}
		rounds[r-1] = true
	}
	return rounds, nil
}
