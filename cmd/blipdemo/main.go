// Command blipdemo runs one of the two reference demos ported from
// the original blip-buffer demo harness: "basic", a pure reference
// tone with no resampler involved, and "chip", a tiny 4-channel
// programmable sound generator driven by an event log and resampled
// through blip.Buffer.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
)

func main() {
	configPath := pflag.StringP("config", "c", "", "Path to a YAML config file overriding the chip demo's rates and output path.")
	outPath := pflag.StringP("out", "o", "", "Output WAV path (overrides the config file's output_path).")
	eventLogPath := pflag.StringP("events", "e", "demo/demo_log.txt", "Event log path for the chip demo.")
	seconds := pflag.IntP("seconds", "s", 120, "Maximum seconds of audio to render for the chip demo.")
	verbose := pflag.BoolP("verbose", "v", false, "Enable debug logging.")
	help := pflag.BoolP("help", "h", false, "Display help text.")
	pflag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	if *help || pflag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: blipdemo <basic|chip> [flags]")
		pflag.PrintDefaults()
		if *help {
			return
		}
		os.Exit(2)
	}

	var err error
	switch name := pflag.Arg(0); name {
	case "basic":
		err = runBasic(*outPath)
	case "chip":
		err = runChip(*configPath, *outPath, *eventLogPath, *seconds)
	default:
		log.Fatalf("unknown demo %q, expected \"basic\" or \"chip\"", name)
	}

	if err != nil {
		log.Fatal("demo failed", "err", err)
	}
}
