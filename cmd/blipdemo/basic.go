package main

import (
	"math"

	"github.com/charmbracelet/log"
	"github.com/kelvinw/blipgo/internal/wavwriter"
)

const (
	basicSampleRate = 44100
	basicFreqHz     = 440.0
)

// runBasic renders one second of a 440Hz reference tone directly,
// without going through blip.Buffer at all — a baseline to compare
// the band-limited "chip" demo's output against.
func runBasic(outPath string) error {
	if outPath == "" {
		outPath = "basic.wav"
	}

	w, err := wavwriter.New(outPath, basicSampleRate)
	if err != nil {
		return err
	}

	amplitude := float64(math.MaxInt16)
	samples := make([]int16, basicSampleRate)
	for i := range samples {
		t := float64(i) / basicSampleRate
		samples[i] = int16(amplitude * math.Sin(t*basicFreqHz*2*math.Pi))
	}

	if err := w.Write(samples); err != nil {
		return err
	}
	log.Info("wrote basic demo", "path", outPath, "samples", w.SamplesWritten())
	return w.Close()
}
