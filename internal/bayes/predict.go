package bayes

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Posterior is P(label | feature value) for a single observation.
type Posterior struct {
	Label       Label
	Probability float64
}

// PredictColorProba returns, for every color in xs, one Posterior per
// training label in prior order. The evidence term P(color) is the empirical
// frequency of that color within xs itself, so the values of one observation
// are not guaranteed to sum to 1.
func (m *Model) PredictColorProba(xs []Color) [][]Posterior {
	return posteriors(m.prior, m.ColorGivenLabel, marginal(xs), xs)
}

func (m *Model) PredictSoftnessProba(xs []Softness) [][]Posterior {
	return posteriors(m.prior, m.SoftnessGivenLabel, marginal(xs), xs)
}

// PredictColorProbaParallel computes the same result as PredictColorProba,
// spreading observations over at most workers goroutines.
func (m *Model) PredictColorProbaParallel(ctx context.Context, xs []Color, workers int) ([][]Posterior, error) {
	return posteriorsParallel(ctx, m.prior, m.ColorGivenLabel, xs, workers)
}

func (m *Model) PredictSoftnessProbaParallel(ctx context.Context, xs []Softness, workers int) ([][]Posterior, error) {
	return posteriorsParallel(ctx, m.prior, m.SoftnessGivenLabel, xs, workers)
}

// PredictColor returns the most probable label for every color in xs.
func (m *Model) PredictColor(xs []Color) []Label {
	return argmaxAll(m.PredictColorProba(xs))
}

func (m *Model) PredictSoftness(xs []Softness) []Label {
	return argmaxAll(m.PredictSoftnessProba(xs))
}

// Argmax picks the label with the highest probability. On ties the earliest
// entry wins, which for model output is the label seen first in training.
func Argmax(ps []Posterior) (Label, bool) {
	if len(ps) == 0 {
		return "", false
	}
	best := ps[0]
	for _, p := range ps[1:] {
		if p.Probability > best.Probability {
			best = p
		}
	}
	return best.Label, true
}

func argmaxAll(rows [][]Posterior) []Label {
	out := make([]Label, len(rows))
	for i, ps := range rows {
		out[i], _ = Argmax(ps)
	}
	return out
}

func marginal[F comparable](xs []F) Table[F] {
	c := newCounter[F]()
	for _, x := range xs {
		c.add(x)
	}
	return c.normalize()
}

func posteriors[F comparable](prior Table[Label], likelihood func(Label) Table[F], evidence Table[F], xs []F) [][]Posterior {
	out := make([][]Posterior, len(xs))
	for i, x := range xs {
		out[i] = posteriorOf(prior, likelihood, evidence, x)
	}
	return out
}

// posteriorOf applies Bayes' rule for one observation. evidence always
// contains x because it was built from the batch x belongs to.
func posteriorOf[F comparable](prior Table[Label], likelihood func(Label) Table[F], evidence Table[F], x F) []Posterior {
	px := evidence.Prob(x)
	ps := make([]Posterior, 0, prior.Len())
	for _, l := range prior.keys {
		ps = append(ps, Posterior{
			Label:       l,
			Probability: likelihood(l).Prob(x) * prior.Prob(l) / px,
		})
	}
	return ps
}

func posteriorsParallel[F comparable](ctx context.Context, prior Table[Label], likelihood func(Label) Table[F], xs []F, workers int) ([][]Posterior, error) {
	// every observation shares the batch marginal, so it is finished before
	// any worker starts
	evidence := marginal(xs)
	out := make([][]Posterior, len(xs))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, x := range xs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = posteriorOf(prior, likelihood, evidence, x)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
