package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/kelvinw/blipgo/internal/chip"
	"github.com/kelvinw/blipgo/internal/democfg"
	"github.com/kelvinw/blipgo/internal/eventlog"
	"github.com/kelvinw/blipgo/internal/wavwriter"
)

const readChunk = 1024

// runChip drives internal/chip from an event log, resampling through
// blip.Buffer and streaming the result to a WAV file. Mirrors the
// original demo's "while total_samples_written < target" loop.
func runChip(configPath, outPath, eventLogPath string, maxSeconds int) error {
	cfg, err := democfg.Load(configPath)
	if err != nil {
		return err
	}
	if outPath != "" {
		cfg.OutputPath = outPath
	}

	f, err := os.Open(eventLogPath)
	if err != nil {
		return err
	}
	defer f.Close()

	events, err := eventlog.Read(f)
	if err != nil {
		return err
	}
	log.Info("loaded event log", "path", eventLogPath, "events", len(events))

	demo := chip.NewDemoChip(cfg.SampleRate)
	if err := demo.Buf.SetRates(cfg.ClockRate, cfg.SampleRate); err != nil {
		return err
	}

	w, err := wavwriter.New(cfg.OutputPath, int(cfg.SampleRate))
	if err != nil {
		return err
	}

	targetSamples := int(cfg.SampleRate) * maxSeconds
	chunk := make([]int16, readChunk)

	drain := func() error {
		for demo.Buf.SamplesAvailable() > 0 && w.SamplesWritten() < targetSamples {
			n, err := demo.Buf.ReadSamples(chunk, min32(demo.Buf.SamplesAvailable(), readChunk), false)
			if err != nil {
				return err
			}
			if err := w.Write(chunk[:n]); err != nil {
				return err
			}
		}
		return nil
	}

	for _, ev := range events {
		if w.SamplesWritten() >= targetSamples {
			break
		}

		if int(ev.Channel) < demo.ChannelCount() {
			if err := demo.RunChannel(ev.Channel, ev.Time, ev.Register, ev.Data); err != nil {
				return err
			}
		} else if err := demo.CloseChannels(ev.Time); err != nil {
			return err
		}

		if err := drain(); err != nil {
			return err
		}
	}

	log.Info("wrote chip demo", "path", cfg.OutputPath, "samples", w.SamplesWritten())
	return w.Close()
}

func min32(a uint32, b int) uint32 {
	if a < uint32(b) {
		return a
	}
	return uint32(b)
}
