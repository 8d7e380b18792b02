package player

import (
	"math"

	"manhunt/game"

	"golang.org/x/exp/rand"
)

// Scorer rates each of the legal moves. Scores must be positive; higher is
// better.
type Scorer interface {
	Score(view game.View, location int, moves []game.Move) []float64
}

// Weighted samples a move with probability proportional to its score
// raised to 1/temperature. A temperature of zero or less always takes the
// best scoring move.
type Weighted struct {
	scorer      Scorer
	temperature float64
	rng         *rand.Rand
}

func NewWeighted(scorer Scorer, temperature float64, seed uint64) *Weighted {
	return &Weighted{
		scorer:      scorer,
		temperature: temperature,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

func (w *Weighted) ChooseMove(view game.View, location int, moves []game.Move) game.Move {
	scores := w.scorer.Score(view, location, moves)
	if w.temperature <= 0 {
		return moves[argmax(scores)]
	}
	policy := adjustTemperature(scores, w.temperature)
	return moves[sample(w.rng, policy)]
}

func argmax(scores []float64) int {
	best := 0
	for i, s := range scores {
		if s > scores[best] {
			best = i
		}
	}
	return best
}

func adjustTemperature(scores []float64, temperature float64) []float64 {
	exponent := 1.0 / temperature
	sum := 0.0
	policy := make([]float64, len(scores))
	for i, s := range scores {
		p := math.Pow(s, exponent)
		sum += p
		policy[i] = p
	}
	// Everything underflowed, fall back to uniform
	if sum == 0 || math.IsInf(sum, 0) || math.IsNaN(sum) {
		for i := range policy {
			policy[i] = 1 / float64(len(policy))
		}
		return policy
	}
	for i := range policy {
		policy[i] /= sum
	}
	return policy
}

func sample(rng *rand.Rand, policy []float64) int {
	sampled := rng.Float64()
	cumulative := 0.0
	for i, p := range policy {
		cumulative += p
		if sampled < cumulative {
			return i
		}
	}
	return len(policy) - 1
}

// Chase favours moves that end close to where the fugitive was last seen.
// Before the first reveal every move scores the same.
type Chase struct{}

func (Chase) Score(view game.View, location int, moves []game.Move) []float64 {
	scores := make([]float64, len(moves))
	target, _ := view.PlayerLocation(game.Black)
	if target == game.UnknownLocation {
		for i := range scores {
			scores[i] = 1
		}
		return scores
	}
	dist := distances(view.Graph(), target)
	for i, m := range moves {
		d, ok := dist[landing(location, m)]
		if !ok {
			d = view.Graph().Len()
		}
		scores[i] = 1 / float64(1+d)
	}
	return scores
}

// Evade favours moves that end far from the nearest hunter. Double moves
// are discounted so the fugitive does not burn them early.
type Evade struct {
	DoublePenalty float64
}

func (e Evade) Score(view game.View, location int, moves []game.Move) []float64 {
	var hunters []int
	for _, c := range view.Players() {
		if c.IsHunter() {
			if loc, ok := view.PlayerLocation(c); ok {
				hunters = append(hunters, loc)
			}
		}
	}
	dist := distances(view.Graph(), hunters...)

	scores := make([]float64, len(moves))
	for i, m := range moves {
		d, ok := dist[landing(location, m)]
		if !ok {
			d = view.Graph().Len()
		}
		scores[i] = float64(1 + d)
		if m.Kind == game.DoubleMove && e.DoublePenalty > 0 {
			scores[i] /= 1 + e.DoublePenalty
		}
	}
	return scores
}
