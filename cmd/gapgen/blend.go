package main

import (
	"fmt"

	"github.com/cwbudde/algo-gaps/dsp/mask"
	"github.com/cwbudde/algo-gaps/maskfile"
)

// BlendCmd multiplies two masks sampled at the same rate.
type BlendCmd struct {
	First  string `arg:"" type:"existingfile" help:"First mask file."`
	Second string `arg:"" type:"existingfile" help:"Second mask file."`
	Output string `arg:"" help:"Mask file to write."`
}

func (c *BlendCmd) Run(_ *Globals) error {
	a, err := maskfile.Load(c.First)
	if err != nil {
		return err
	}

	b, err := maskfile.Load(c.Second)
	if err != nil {
		return err
	}

	if a.SampleRate != b.SampleRate {
		return fmt.Errorf("sample rates differ: %v Hz and %v Hz", a.SampleRate, b.SampleRate)
	}

	m, err := mask.Combine(a.Mask, b.Mask)
	if err != nil {
		return err
	}

	kind, err := a.WindowType()
	if err != nil {
		return err
	}

	out, err := maskfile.New(m, a.SampleRate, kind, a.DecayLength)
	if err != nil {
		return err
	}

	out.Source = fmt.Sprintf("blend %s %s", c.First, c.Second)

	if err := maskfile.Save(c.Output, out); err != nil {
		return err
	}

	_, err = fmt.Fprintf(stdout, "%s: %d gaps\n", c.Output, len(out.GapStarts))

	return err
}
