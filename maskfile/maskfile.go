// Package maskfile reads and writes gap masks for exchange with other tools.
//
// Two encodings are supported: MessagePack (.msgpack, .mpk) for compact
// storage of long masks and JSON (.json) for inspection. Both carry the same
// fields, named after the JSON tags of File.
package maskfile

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/cwbudde/algo-gaps/dsp/mask"
	"github.com/cwbudde/algo-gaps/dsp/window"
	"github.com/cwbudde/algo-gaps/logging"
)

// Format is a file encoding.
type Format string

const (
	FormatMsgpack Format = "msgpack"
	FormatJSON    Format = "json"
)

var (
	// ErrUnknownFormat reports an unsupported encoding or file extension.
	ErrUnknownFormat = errors.New("unknown mask file format")

	// ErrInvalidFile reports a decoded file whose content is inconsistent.
	ErrInvalidFile = errors.New("invalid mask file")
)

// File is a mask together with the metadata needed to reuse it.
type File struct {
	Mask        []float64 `json:"mask"`
	SampleRate  float64   `json:"sample_rate"`
	Window      string    `json:"window,omitempty"`
	DecayLength int       `json:"decay_length,omitempty"`
	GapStarts   []int     `json:"gap_starts"`
	GapEnds     []int     `json:"gap_ends"`
	Source      string    `json:"source,omitempty"`
	Created     time.Time `json:"created"`
}

// New builds a File for m. The gap bounds are recovered from the mask.
func New(m []float64, sampleRate float64, kind window.Type, decay int) (File, error) {
	if err := mask.Validate(m); err != nil {
		return File{}, err
	}

	starts, ends, err := mask.FindGaps(m)
	if err != nil && !errors.Is(err, mask.ErrNoGapsFound) {
		return File{}, err
	}

	f := File{
		Mask:       m,
		SampleRate: sampleRate,
		Window:     kind.String(),
		GapStarts:  starts,
		GapEnds:    ends,
		Created:    time.Now().UTC(),
	}

	if kind == window.TypeModifiedHann {
		f.DecayLength = decay
	}

	return f, f.Validate()
}

// Validate checks the mask values and that the gap bounds are paired.
func (f File) Validate() error {
	if err := mask.Validate(f.Mask); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}

	if f.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be > 0: %v", ErrInvalidFile, f.SampleRate)
	}

	if len(f.GapStarts) != len(f.GapEnds) {
		return fmt.Errorf("%w: %d gap starts but %d gap ends", ErrInvalidFile, len(f.GapStarts), len(f.GapEnds))
	}

	return nil
}

// WindowType parses the stored window name. An empty name is rectangular.
func (f File) WindowType() (window.Type, error) {
	if f.Window == "" {
		return window.TypeRectangular, nil
	}

	return window.ParseType(f.Window)
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".msgpack", ".mpk":
		return FormatMsgpack, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Encode writes f to w.
func Encode(w io.Writer, format Format, f File) error {
	switch format {
	case FormatMsgpack:
		enc := msgpack.NewEncoder(w)
		enc.SetCustomStructTag("json")

		return enc.Encode(f)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(f)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Decode reads a File from r and validates it.
func Decode(r io.Reader, format Format) (File, error) {
	var f File

	switch format {
	case FormatMsgpack:
		dec := msgpack.NewDecoder(r)
		dec.SetCustomStructTag("json")

		if err := dec.Decode(&f); err != nil {
			return File{}, fmt.Errorf("decode msgpack: %w", err)
		}
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&f); err != nil {
			return File{}, fmt.Errorf("decode json: %w", err)
		}
	default:
		return File{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if err := f.Validate(); err != nil {
		return File{}, err
	}

	return f, nil
}

// Save writes f to path in the format implied by its extension.
func Save(path string, f File) (err error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	if err := f.Validate(); err != nil {
		return err
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create mask file: %w", err)
	}

	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close mask file: %w", cerr)
		}
	}()

	bw := bufio.NewWriter(out)
	if err := Encode(bw, format, f); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	logging.Debug("mask file saved", logging.Fields{
		"path":    path,
		"format":  string(format),
		"samples": len(f.Mask),
		"gaps":    len(f.GapStarts),
	})

	return nil
}

// Load reads the file at path in the format implied by its extension.
func Load(path string) (File, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return File{}, err
	}

	in, err := os.Open(path)
	if err != nil {
		return File{}, fmt.Errorf("open mask file: %w", err)
	}
	defer in.Close()

	f, err := Decode(bufio.NewReader(in), format)
	if err != nil {
		return File{}, fmt.Errorf("load %s: %w", path, err)
	}

	logging.Debug("mask file loaded", logging.Fields{
		"path":    path,
		"samples": len(f.Mask),
	})

	return f, nil
}
