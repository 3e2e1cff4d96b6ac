package gapgen

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/cwbudde/algo-gaps/dsp/mask"
	"github.com/cwbudde/algo-gaps/logging"
)

// Result is a synthesized gap pattern.
type Result struct {
	// Mask has Config.Length weights in [0, 1].
	Mask []float64
	// Gaps are the sorted, disjoint gaps the mask was built from.
	Gaps []mask.Interval
	// Dropped counts gaps removed because they ran into the end of the
	// series, started before it, or had no length.
	Dropped int
	// Merged counts overlapping gaps that were joined after the overlap pass.
	Merged int
	// Warning carries a non-fatal taper warning from mask windowing, or nil.
	Warning error
}

// Generate draws a gap pattern according to cfg and builds its mask. All
// random numbers come from src.
func Generate(cfg Config, src rand.Source) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	if src == nil {
		return Result{}, fmt.Errorf("%w: nil random source", ErrInvalidConfig)
	}

	log := logging.WithFields(logging.Fields{
		"component": "gapgen",
		"placement": cfg.Placement.String(),
	})

	var (
		starts  []int
		lengths []float64
		err     error
	)

	switch cfg.Placement {
	case PlacementRandom, PlacementRandomPoisson:
		starts, lengths, err = drawRandom(cfg, src)
	case PlacementPeriodic:
		starts, lengths = drawPeriodic(cfg, src)
		log.Info("gap count derived from gap frequency", logging.Fields{"gaps": len(starts)})
	default:
		err = fmt.Errorf("%w: %v", ErrUnknownGapType, cfg.Placement)
	}

	if err != nil {
		return Result{}, err
	}

	ends := resolveOverlaps(starts, lengths)
	gaps, dropped := trim(starts, ends, cfg.Length)
	gaps, merged := merge(gaps)

	if merged > 0 {
		log.Warn("overlapping gaps merged after overlap pass", logging.Fields{"merged": merged})
	}

	log.Debug("gaps resolved", logging.Fields{
		"drawn":   len(starts),
		"kept":    len(gaps),
		"dropped": dropped,
	})

	res := Result{Gaps: gaps, Dropped: dropped, Merged: merged}

	if len(gaps) == 0 {
		res.Mask = mask.Ones(cfg.Length)
		return res, nil
	}

	gapStarts, gapEnds := mask.Split(gaps)

	m, err := mask.Windowing(gapStarts, gapEnds, cfg.Length, cfg.Window, mask.WithDecayLength(cfg.DecayLength))
	switch {
	case mask.IsWarning(err):
		res.Warning = err
	case err != nil:
		return Result{}, err
	}

	res.Mask = m

	return res, nil
}

// drawRandom handles both random placements. Duration jitter is drawn before
// the locations.
func drawRandom(cfg Config, src rand.Source) ([]int, []float64, error) {
	lengths := nominalLengths(cfg)
	addJitter(lengths, cfg.DurationJitter*cfg.SampleRate, src)

	n := len(lengths)
	starts := make([]int, n)

	if cfg.Placement == PlacementRandomPoisson {
		total := 0.0
		for _, l := range lengths {
			total += l
		}

		mean := (float64(cfg.Length) - total) / float64(n+1)
		if mean <= 0 {
			return nil, nil, fmt.Errorf("%w: %d gaps of %.0f samples leave no room in %d samples",
				ErrInvalidConfig, n, total, cfg.Length)
		}

		spacing := distuv.Exponential{Rate: 1 / mean, Src: src}
		ref := 0.0
		for g := range starts {
			starts[g] = int(ref + spacing.Rand())
			ref = float64(starts[g]) + lengths[g]
		}

		return starts, lengths, nil
	}

	u := distuv.Uniform{Min: 0, Max: 1, Src: src}
	for g := range starts {
		starts[g] = int(u.Rand() * float64(cfg.Length))
	}

	slices.Sort(starts)

	return starts, lengths, nil
}

// nominalLengths returns the gap lengths in samples before jitter. Lengths
// are truncated to whole samples.
func nominalLengths(cfg Config) []float64 {
	if len(cfg.GapDurations) > 0 {
		out := make([]float64, len(cfg.GapDurations))
		for i, d := range cfg.GapDurations {
			out[i] = math.Trunc(d * cfg.SampleRate)
		}
		return out
	}

	out := make([]float64, cfg.GapCount)
	l := math.Trunc(cfg.GapDuration * cfg.SampleRate)
	for i := range out {
		out[i] = l
	}

	return out
}

// drawPeriodic puts a gap every SampleRate/GapFrequency samples. Location
// jitter is drawn before duration jitter; starts are re-sorted afterwards
// since jitter may swap neighbours.
func drawPeriodic(cfg Config, src rand.Source) ([]int, []float64) {
	period := cfg.SampleRate / cfg.GapFrequency

	var locs []float64
	for k := 1; float64(k)*period < float64(cfg.Length); k++ {
		locs = append(locs, math.Trunc(float64(k)*period))
	}

	addJitter(locs, cfg.LocationJitter*cfg.SampleRate, src)

	starts := make([]int, len(locs))
	for i, l := range locs {
		starts[i] = int(l)
	}

	slices.Sort(starts)

	lengths := make([]float64, len(starts))
	nominal := cfg.GapDuration * cfg.SampleRate
	for i := range lengths {
		lengths[i] = nominal
	}

	addJitter(lengths, cfg.DurationJitter*cfg.SampleRate, src)

	for i := range lengths {
		lengths[i] = math.Trunc(lengths[i])
	}

	return starts, lengths
}

// addJitter adds zero-mean normal noise with the given standard deviation.
// Nothing is drawn when std is zero.
func addJitter(v []float64, std float64, src rand.Source) {
	if std <= 0 {
		return
	}

	norm := distuv.Normal{Mu: 0, Sigma: std, Src: src}
	for i := range v {
		v[i] += norm.Rand()
	}
}

// resolveOverlaps computes gap ends and pushes back any gap that starts
// within the nominal length of its predecessor. starts is updated in place.
// The pass runs once from left to right; a pushed gap is not compared with
// its predecessor again.
func resolveOverlaps(starts []int, lengths []float64) []int {
	ends := make([]int, len(starts))
	for k := range starts {
		ends[k] = int(float64(starts[k]) + lengths[k])
	}

	for k := 0; k < len(starts)-1; k++ {
		if float64(starts[k+1]-starts[k]) <= lengths[k] {
			starts[k+1] = int(float64(starts[k]) + lengths[k])
			ends[k+1] = int(float64(ends[k]) + lengths[k])
		}
	}

	return ends
}

// trim keeps the gaps that lie inside the series and end before its last
// sample.
func trim(starts, ends []int, n int) ([]mask.Interval, int) {
	gaps := make([]mask.Interval, 0, len(starts))
	for k := range starts {
		if ends[k] >= n-1 || starts[k] < 0 || ends[k] <= starts[k] {
			continue
		}

		gaps = append(gaps, mask.Interval{Start: starts[k], End: ends[k]})
	}

	return gaps, len(starts) - len(gaps)
}

// merge sorts the gaps and joins any that still overlap or touch.
func merge(gaps []mask.Interval) ([]mask.Interval, int) {
	if len(gaps) < 2 {
		return gaps, 0
	}

	slices.SortFunc(gaps, func(a, b mask.Interval) int { return a.Start - b.Start })

	out := gaps[:1]
	merged := 0

	for _, g := range gaps[1:] {
		last := &out[len(out)-1]
		if g.Start <= last.End {
			last.End = max(last.End, g.End)
			merged++

			continue
		}

		out = append(out, g)
	}

	return out, merged
}
