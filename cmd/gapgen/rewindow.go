package main

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-gaps/dsp/mask"
	"github.com/cwbudde/algo-gaps/dsp/window"
	"github.com/cwbudde/algo-gaps/logging"
	"github.com/cwbudde/algo-gaps/maskfile"
)

// RewindowCmd recovers the gaps of a mask and tapers them with another
// window.
type RewindowCmd struct {
	Input  string `arg:"" type:"existingfile" help:"Mask file to read."`
	Output string `arg:"" help:"Mask file to write."`
	Window string `default:"modified_hann" help:"Taper at gap edges."`
	Decay  int    `default:"260" help:"Modified Hann decay in samples."`
}

func (c *RewindowCmd) Run(_ *Globals) error {
	in, err := maskfile.Load(c.Input)
	if err != nil {
		return err
	}

	kind, err := window.ParseType(c.Window)
	if err != nil {
		return err
	}

	starts, ends, err := mask.FindGaps(in.Mask)
	if err != nil && !errors.Is(err, mask.ErrNoGapsFound) {
		return err
	}

	m, err := mask.Windowing(starts, ends, len(in.Mask), kind, mask.WithDecayLength(c.Decay))
	switch {
	case mask.IsWarning(err):
		logging.Warn("rewindowed with warning", logging.Fields{"warning": err.Error()})
	case err != nil:
		return err
	}

	out, err := maskfile.New(m, in.SampleRate, kind, c.Decay)
	if err != nil {
		return err
	}

	out.Source = fmt.Sprintf("rewindow %s %s/%d", c.Input, kind, c.Decay)

	if err := maskfile.Save(c.Output, out); err != nil {
		return err
	}

	_, err = fmt.Fprintf(stdout, "%s: %d gaps tapered with %s\n", c.Output, len(starts), kind)

	return err
}
