// Command gapgen synthesizes, re-apodizes and inspects gap masks.
//
// Usage:
//
//	gapgen [flags] <command> [args]
//
// Examples:
//
//	gapgen generate --preset antenna -o antenna.msgpack
//	gapgen rewindow antenna.msgpack antenna_hann260.msgpack --decay 260
//	gapgen blend antenna.msgpack micrometeorites.msgpack blend.msgpack
//	gapgen segments blend.msgpack --band 1e-4:1e-3
//	gapgen stats blend.msgpack
//	gapgen windows --size 4096
package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/cwbudde/algo-gaps/logging"
)

var version = "dev"

// stdout receives command output. Tests replace it.
var stdout io.Writer = os.Stdout

// Globals are flags shared by every command.
type Globals struct {
	Debug   bool             `help:"Log at debug level with the development logger."`
	Config  string           `short:"c" type:"path" env:"GAPGEN_CONFIG" help:"YAML configuration file."`
	Version kong.VersionFlag `short:"v" help:"Show version information."`
}

// CLI defines the command-line interface.
type CLI struct {
	Globals

	Generate GenerateCmd `cmd:"" help:"Synthesize a gap mask and save it."`
	Rewindow RewindowCmd `cmd:"" help:"Recover the gaps of a mask file and taper them again."`
	Blend    BlendCmd    `cmd:"" help:"Multiply two mask files."`
	Segments SegmentsCmd `cmd:"" help:"List the valid segments of a mask file."`
	Stats    StatsCmd    `cmd:"" help:"Print mask statistics and spectral leakage."`
	Windows  WindowsCmd  `cmd:"" help:"Print gain and bandwidth of the taper windows."`
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("gapgen"),
		kong.Description("Gap mask synthesis and segmentation for gapped time series"),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)

	err := setupLogging(cli.Debug, "")
	ctx.FatalIfErrorf(err)

	err = ctx.Run(&cli.Globals)
	syncLogger()
	ctx.FatalIfErrorf(err)
}

// setupLogging installs a zap logger. level is ignored when debug is set.
func setupLogging(debug bool, level string) error {
	lvl := logging.WarnLevel
	if level != "" {
		l, err := logging.ParseLevel(level)
		if err != nil {
			return err
		}
		lvl = l
	}

	if debug {
		lvl = logging.DebugLevel
	}

	zl, err := logging.NewZapLogger(debug)
	if err != nil {
		return err
	}

	zl.SetLevel(lvl)
	logging.SetGlobalLogger(zl)

	return nil
}

func syncLogger() {
	if zl, ok := logging.GetGlobalLogger().(*logging.ZapLogger); ok {
		_ = zl.Sync()
	}
}
