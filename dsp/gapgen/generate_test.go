package gapgen

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-gaps/dsp/mask"
	"github.com/cwbudde/algo-gaps/dsp/window"
	"github.com/cwbudde/algo-gaps/internal/testutil"
)

func randomConfig() Config {
	cfg := DefaultConfig(10000, 1)
	cfg.GapCount = 5
	cfg.GapDuration = 100

	return cfg
}

func TestGenerateRandomRectangular(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		res, err := Generate(randomConfig(), testutil.Source(seed))
		if err != nil {
			t.Fatalf("seed %d: Generate() error = %v", seed, err)
		}

		if len(res.Mask) != 10000 {
			t.Fatalf("seed %d: len(mask) = %d", seed, len(res.Mask))
		}

		testutil.RequireBinary(t, res.Mask)

		if drawn := len(res.Gaps) + res.Dropped + res.Merged; drawn != 5 {
			t.Fatalf("seed %d: %d gaps accounted for, want 5", seed, drawn)
		}

		requireDisjoint(t, res.Gaps, 10000)

		zeros := 0
		for _, v := range res.Mask {
			if v == 0 {
				zeros++
			}
		}

		if zeros != mask.TotalLen(res.Gaps) {
			t.Fatalf("seed %d: %d zero samples, gaps cover %d", seed, zeros, mask.TotalLen(res.Gaps))
		}

		found, err := mask.Gaps(res.Mask)
		if err != nil && !errors.Is(err, mask.ErrNoGapsFound) {
			t.Fatalf("seed %d: Gaps() error = %v", seed, err)
		}

		if len(found) != len(res.Gaps) {
			t.Fatalf("seed %d: mask has %d gaps, result lists %d", seed, len(found), len(res.Gaps))
		}

		for k := range found {
			if found[k] != res.Gaps[k] {
				t.Fatalf("seed %d: gap %d = %v, mask shows %v", seed, k, res.Gaps[k], found[k])
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	for _, p := range []Placement{PlacementRandom, PlacementRandomPoisson, PlacementPeriodic} {
		t.Run(p.String(), func(t *testing.T) {
			cfg := randomConfig()
			cfg.Placement = p
			cfg.GapFrequency = 1.0 / 1500
			cfg.LocationJitter = 50
			cfg.DurationJitter = 5

			a, err := Generate(cfg, testutil.Source(7))
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}

			b, err := Generate(cfg, testutil.Source(7))
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}

			testutil.RequireSliceNearlyEqual(t, a.Mask, b.Mask, 0)

			if len(a.Gaps) != len(b.Gaps) {
				t.Fatalf("gap counts differ: %d vs %d", len(a.Gaps), len(b.Gaps))
			}
		})
	}
}

func TestGeneratePeriodicExact(t *testing.T) {
	cfg := DefaultConfig(1000, 1)
	cfg.Placement = PlacementPeriodic
	cfg.GapFrequency = 0.01
	cfg.GapDuration = 10

	res, err := Generate(cfg, testutil.Source(1))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if len(res.Gaps) != 9 {
		t.Fatalf("got %d gaps, want 9: %v", len(res.Gaps), res.Gaps)
	}

	for k, g := range res.Gaps {
		want := mask.Interval{Start: 100 * (k + 1), End: 100*(k+1) + 10}
		if g != want {
			t.Fatalf("gap %d = %v, want %v", k, g, want)
		}
	}

	starts, ends := mask.Split(res.Gaps)
	testutil.RequireSliceNearlyEqual(t, res.Mask, testutil.BinaryMask(1000, starts, ends), 0)
}

func TestGeneratePoisson(t *testing.T) {
	cfg := randomConfig()
	cfg.Placement = PlacementRandomPoisson
	cfg.Window = window.TypeModifiedHann
	cfg.DecayLength = 20

	res, err := Generate(cfg, testutil.Source(3))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	testutil.RequireWeights(t, res.Mask)
	requireDisjoint(t, res.Gaps, cfg.Length)

	for _, g := range res.Gaps {
		for i := g.Start; i < g.End; i++ {
			if res.Mask[i] != 0 {
				t.Fatalf("mask[%d] = %v inside gap %v", i, res.Mask[i], g)
			}
		}
	}
}

func TestGeneratePoissonNoRoom(t *testing.T) {
	cfg := DefaultConfig(100, 1)
	cfg.Placement = PlacementRandomPoisson
	cfg.GapCount = 4
	cfg.GapDuration = 30

	_, err := Generate(cfg, testutil.Source(1))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestGeneratePerGapDurations(t *testing.T) {
	cfg := DefaultConfig(100000, 2)
	cfg.GapCount = 99
	cfg.GapDurations = []float64{1, 2, 3}

	res, err := Generate(cfg, testutil.Source(11))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if drawn := len(res.Gaps) + res.Dropped + res.Merged; drawn != 3 {
		t.Fatalf("kept %d + dropped %d + merged %d = %d, want 3 drawn gaps",
			len(res.Gaps), res.Dropped, res.Merged, drawn)
	}

	for _, g := range res.Gaps {
		if res.Merged > 0 {
			break
		}

		if l := g.Len(); l != 2 && l != 4 && l != 6 {
			t.Fatalf("gap %v has length %d, want one of 2, 4, 6", g, l)
		}
	}
}

func TestGenerateNoGaps(t *testing.T) {
	cfg := DefaultConfig(64, 1)
	cfg.Window = window.TypeHann

	res, err := Generate(cfg, testutil.Source(1))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, res.Mask, mask.Ones(64), 0)

	if len(res.Gaps) != 0 || res.Warning != nil {
		t.Fatalf("unexpected gaps %v or warning %v", res.Gaps, res.Warning)
	}
}

func TestGenerateDecayWarning(t *testing.T) {
	cfg := DefaultConfig(1000, 1)
	cfg.Placement = PlacementPeriodic
	cfg.GapFrequency = 0.05
	cfg.GapDuration = 5
	cfg.Window = window.TypeModifiedHann
	cfg.DecayLength = 100

	res, err := Generate(cfg, testutil.Source(1))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if !mask.IsWarning(res.Warning) {
		t.Fatalf("Warning = %v, want decay clamp warning", res.Warning)
	}

	testutil.RequireWeights(t, res.Mask)
}

func TestGenerateInvalidConfig(t *testing.T) {
	base := randomConfig()

	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"zero length", func(c *Config) { c.Length = 0 }, ErrInvalidConfig},
		{"zero sample rate", func(c *Config) { c.SampleRate = 0 }, ErrInvalidConfig},
		{"negative count", func(c *Config) { c.GapCount = -1 }, ErrInvalidConfig},
		{"negative duration", func(c *Config) { c.GapDuration = -1 }, ErrInvalidConfig},
		{"negative jitter", func(c *Config) { c.DurationJitter = -1 }, ErrInvalidConfig},
		{"negative decay", func(c *Config) { c.DecayLength = -1 }, ErrInvalidConfig},
		{"bad window", func(c *Config) { c.Window = window.Type(99) }, window.ErrUnknownWindow},
		{"bad placement", func(c *Config) { c.Placement = Placement(99) }, ErrUnknownGapType},
		{"periodic without frequency", func(c *Config) { c.Placement = PlacementPeriodic }, ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)

			if _, err := Generate(cfg, testutil.Source(1)); !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := Generate(base, nil); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("nil source: err = %v, want ErrInvalidConfig", err)
	}
}

func TestResolveOverlaps(t *testing.T) {
	starts := []int{0, 5, 8}
	ends := resolveOverlaps(starts, []float64{10, 10, 10})

	wantStarts := []int{0, 10, 20}
	wantEnds := []int{10, 20, 30}

	for k := range starts {
		if starts[k] != wantStarts[k] || ends[k] != wantEnds[k] {
			t.Fatalf("gaps = %v %v, want %v %v", starts, ends, wantStarts, wantEnds)
		}
	}
}

func TestResolveOverlapsSinglePass(t *testing.T) {
	// The pushed second gap inherits the first gap's length, so the third
	// gap still overlaps it after the pass.
	starts := []int{0, 1, 2}
	ends := resolveOverlaps(starts, []float64{10, 1, 10})

	if starts[1] != 10 || ends[1] != 20 || starts[2] != 11 || ends[2] != 21 {
		t.Fatalf("gaps = %v %v", starts, ends)
	}

	gaps, dropped := trim(starts, ends, 100)
	if dropped != 0 {
		t.Fatalf("dropped = %d, want 0", dropped)
	}

	gaps, merged := merge(gaps)
	if merged != 2 || len(gaps) != 1 || gaps[0] != (mask.Interval{Start: 0, End: 21}) {
		t.Fatalf("merge = %v (merged %d), want [0,21) from 2 merges", gaps, merged)
	}
}

func TestTrim(t *testing.T) {
	gaps, dropped := trim([]int{-3, 10, 50, 90, 95}, []int{2, 20, 50, 99, 100}, 100)

	if dropped != 4 || len(gaps) != 1 || gaps[0] != (mask.Interval{Start: 10, End: 20}) {
		t.Fatalf("trim = %v, dropped %d", gaps, dropped)
	}
}

func TestParsePlacement(t *testing.T) {
	for _, p := range []Placement{PlacementRandom, PlacementRandomPoisson, PlacementPeriodic} {
		got, err := ParsePlacement(p.String())
		if err != nil || got != p {
			t.Fatalf("ParsePlacement(%q) = %v, %v", p.String(), got, err)
		}
	}

	if got, err := ParsePlacement("Poisson"); err != nil || got != PlacementRandomPoisson {
		t.Fatalf("ParsePlacement(Poisson) = %v, %v", got, err)
	}

	if _, err := ParsePlacement("burst"); !errors.Is(err, ErrUnknownGapType) {
		t.Fatalf("err = %v, want ErrUnknownGapType", err)
	}
}

func TestPresets(t *testing.T) {
	names := Presets()
	if len(names) != 4 {
		t.Fatalf("Presets() = %v", names)
	}

	for _, name := range names {
		cfg, err := Preset(name)
		if err != nil {
			t.Fatalf("Preset(%q) error = %v", name, err)
		}

		if err := cfg.Validate(); err != nil {
			t.Fatalf("Preset(%q) invalid: %v", name, err)
		}

		cfg.Length = 1 << 18
		cfg.GapCount /= 16

		res, err := Generate(cfg, testutil.Source(5))
		if err != nil {
			t.Fatalf("Generate(%q) error = %v", name, err)
		}

		testutil.RequireWeights(t, res.Mask)
		requireDisjoint(t, res.Gaps, cfg.Length)
	}

	if _, err := Preset("solar-flare"); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("err = %v, want ErrInvalidConfig", err)
	}
}

func requireDisjoint(t *testing.T, gaps []mask.Interval, n int) {
	t.Helper()

	for k, g := range gaps {
		if g.Start < 0 || g.End > n || g.Empty() {
			t.Fatalf("gap %d %v invalid for length %d", k, g, n)
		}

		if k > 0 && g.Start <= gaps[k-1].End {
			t.Fatalf("gap %d %v overlaps or touches %v", k, g, gaps[k-1])
		}
	}
}
