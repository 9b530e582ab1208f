// Package wavwriter streams mono 16-bit PCM samples to a WAV file,
// the demo driver's concrete instance of the "PCM sink" collaborator
// named in blip's spec. It is the idiomatic-Go analogue of the
// original demo's hound::WavWriter: open once, Write repeatedly as
// buffers drain, Close once to finalize the header.
package wavwriter

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const bitDepth = 16

// Writer wraps a go-audio/wav.Encoder over a mono int16 PCM stream.
type Writer struct {
	file    *os.File
	enc     *wav.Encoder
	format  *audio.Format
	samples int
}

// New creates path, truncating it if it already exists, and prepares
// it to receive mono samples at sampleRate.
func New(path string, sampleRate int) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("wavwriter: create %s: %w", path, err)
	}

	format := &audio.Format{NumChannels: 1, SampleRate: sampleRate}
	enc := wav.NewEncoder(f, sampleRate, bitDepth, format.NumChannels, 1)

	return &Writer{file: f, enc: enc, format: format}, nil
}

// Write appends samples as one PCM buffer. Safe to call repeatedly as
// a blip.Buffer drains in chunks.
func (w *Writer) Write(samples []int16) error {
	if len(samples) == 0 {
		return nil
	}

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}

	buf := &audio.IntBuffer{
		Format:         w.format,
		Data:           data,
		SourceBitDepth: bitDepth,
	}
	if err := w.enc.Write(buf); err != nil {
		return fmt.Errorf("wavwriter: write: %w", err)
	}
	w.samples += len(samples)
	return nil
}

// SamplesWritten returns the running total of samples passed to Write.
func (w *Writer) SamplesWritten() int {
	return w.samples
}

// Close finalizes the WAV header and closes the underlying file.
func (w *Writer) Close() error {
	if err := w.enc.Close(); err != nil {
		w.file.Close()
		return fmt.Errorf("wavwriter: finalize: %w", err)
	}
	return w.file.Close()
}
