package elosprt

import "math"

// Decision is the outcome of evaluating the SPRT predicate against the current counts.
type Decision int

const (
	Continue Decision = iota
	AcceptH0
	AcceptH1
)

func (d Decision) String() string {
	switch d {
	case AcceptH0:
		return "H0"
	case AcceptH1:
		return "H1"
	default:
		return "continue"
	}
}

// SPRT is a Sequential Probability Ratio Test configured with Elo bounds elo0 < elo1 and
// Type-I/II error rates alpha, beta.
type SPRT struct {
	Elo0, Elo1  float64
	Alpha, Beta float64
}

// bounds returns the log-likelihood-ratio thresholds for accepting H1 and H0.
func (s SPRT) bounds() (upper, lower float64) {
	upper = math.Log((1 - s.Beta) / s.Alpha)
	lower = math.Log(s.Beta / (1 - s.Alpha))
	return
}

// llr computes the penta-nomial log-likelihood ratio for the five game-pair outcome
// counts [LL, LD, WL+DD, WD, WW] using the GSPRT normal approximation: each pair's
// average per-game score (0, 0.25, 0.5, 0.75, 1) is treated as approximately Gaussian
// with the empirical mean and variance, and the classical Wald log-likelihood ratio is
// taken between the two hypothesized per-game scores t0, t1 implied by elo0 and elo1,
// scaled by the number of games. Pair scoring makes the statistic invariant to the
// nominal draw rate, unlike a fixed-draw-rate trinomial model.
func (s SPRT) llr(penta [5]int) float64 {
	pairs := 0
	var sum, sumSq float64
	for i, c := range penta {
		value := float64(i) * 0.25 // 0, 0.25, 0.5, 0.75, 1 points per game
		pairs += c
		sum += value * float64(c)
		sumSq += value * value * float64(c)
	}
	if pairs == 0 {
		return 0
	}

	mean := sum / float64(pairs)
	variance := sumSq/float64(pairs) - mean*mean
	if variance <= 0 {
		return 0
	}

	t0 := expectedScore(s.Elo0)
	t1 := expectedScore(s.Elo1)
	games := float64(2 * pairs)

	return games * (t1 - t0) * (2*mean - t0 - t1) / (2 * variance)
}

// expectedScore returns the expected single-game score for a side with the given Elo
// advantage, under the standard logistic Elo model.
func expectedScore(elo float64) float64 {
	return 1.0 / (1.0 + math.Pow(10, -elo/400.0))
}

// LLR returns the current log-likelihood ratio for the given cumulative penta-nomial
// counts. Exposed for progress reporting.
func (s SPRT) LLR(penta [5]int) float64 {
	return s.llr(penta)
}

// Bounds returns the (lower, upper) log-likelihood thresholds for accepting H0 and H1.
func (s SPRT) Bounds() (lower, upper float64) {
	upper, lower = s.bounds()
	return lower, upper
}

// Evaluate returns the SPRT decision for the given cumulative penta-nomial counts.
// Only completed game-pairs contribute; callers should not evaluate before at least one
// pair has finished.
func (s SPRT) Evaluate(penta [5]int) Decision {
	llr := s.llr(penta)
	upper, lower := s.bounds()

	switch {
	case llr >= upper:
		return AcceptH1
	case llr <= lower:
		return AcceptH0
	default:
		return Continue
	}
}
