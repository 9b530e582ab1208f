// Package chip implements a small reference sound-chip emulator used
// to exercise blip.Buffer end-to-end: two square channels, one
// triangle channel and one noise channel, each driving the buffer
// through AddDelta/EndFrame exactly like a real console APU would.
package chip

import "github.com/kelvinw/blipgo"

// masterVolume scales a channel's 0-100 gain percentage into the
// fixed-point amplitude range AddDelta expects.
const masterVolume = 65536 / 15

// Kind selects a channel's waveform generator.
type Kind int

const (
	Square Kind = iota
	Triangle
	Noise
)

// registers holds the three chip-visible parameters a channel can be
// programmed with: period sets the waveform frequency, volume sets
// loudness, timbre selects duty cycle (square) or noise feedback tap.
type registers struct {
	period int32
	volume int32
	timbre int32
}

// Channel is one voice of the chip: it tracks its own clock position,
// waveform phase and last-emitted amplitude so that it only ever
// submits the *change* in amplitude to the shared buffer.
type Channel struct {
	kind      Kind
	gain      int32
	regs      registers
	time      uint32
	phase     int32
	amplitude int32
}

// NewChannel builds a channel of the given kind. gainPct is a 0-100
// percentage of masterVolume; initialPeriod seeds regs.period so the
// waveform has a sane default frequency before the first register
// write.
func NewChannel(kind Kind, gainPct, initialPeriod int32) *Channel {
	return &Channel{
		kind: kind,
		gain: masterVolume * gainPct / 100,
		regs: registers{period: initialPeriod},
	}
}

// UpdateRegister writes one of the channel's three registers:
// 0=period, 1=volume, 2=timbre.
func (c *Channel) UpdateRegister(index uint8, data int32) {
	switch index {
	case 0:
		c.regs.period = data
	case 1:
		c.regs.volume = data
	case 2:
		c.regs.timbre = data
	}
}

// Run advances the channel's waveform up to endTime, splatting one
// delta per waveform step into buf.
func (c *Channel) Run(buf *blip.Buffer, endTime uint32) error {
	switch c.kind {
	case Square:
		return c.runSquare(buf, endTime)
	case Triangle:
		return c.runTriangle(buf, endTime)
	case Noise:
		return c.runNoise(buf, endTime)
	}
	return nil
}

func (c *Channel) runSquare(buf *blip.Buffer, endTime uint32) error {
	for c.time < endTime {
		c.time += uint32(c.regs.period)
		c.phase = (c.phase + 1) % 8
		level := int32(0)
		if c.phase >= c.regs.timbre {
			level = c.regs.volume
		}
		if err := buf.AddDelta(c.time, c.updateAmplitude(level)); err != nil {
			return err
		}
	}
	return nil
}

func (c *Channel) runTriangle(buf *blip.Buffer, endTime uint32) error {
	for c.time < endTime {
		c.time += uint32(c.regs.period)
		if c.regs.volume == 0 {
			continue
		}
		c.phase = (c.phase + 1) % 32
		level := c.phase
		if level >= 16 {
			level = 31 - level
		}
		if err := buf.AddDelta(c.time, c.updateAmplitude(level)); err != nil {
			return err
		}
	}
	return nil
}

func (c *Channel) runNoise(buf *blip.Buffer, endTime uint32) error {
	if c.phase == 0 {
		c.phase = 1
	}
	for c.time < endTime {
		c.time += uint32(c.regs.period)
		c.phase = (c.phase&1)*c.regs.timbre ^ (c.phase >> 1)
		level := (c.phase & 1) * c.regs.volume
		if err := buf.AddDelta(c.time, c.updateAmplitude(level)); err != nil {
			return err
		}
	}
	return nil
}

// updateAmplitude folds level into the channel's gain, returning the
// delta from the previously emitted amplitude.
func (c *Channel) updateAmplitude(level int32) int32 {
	next := level * c.gain
	delta := next - c.amplitude
	c.amplitude = next
	return delta
}

// Close retires the channel at endTime, rebasing its clock to zero for
// the next frame.
func (c *Channel) Close(endTime uint32) {
	c.time -= endTime
}

// DemoChip wires four channels (2 square, 1 triangle, 1 noise) into a
// single blip.Buffer, mirroring a simple programmable sound generator.
type DemoChip struct {
	channels []*Channel
	Buf      *blip.Buffer
}

// NewDemoChip builds the standard 4-channel chip with a buffer sized
// for one tenth of a second at sampleRate.
func NewDemoChip(sampleRate uint64) *DemoChip {
	return &DemoChip{
		channels: []*Channel{
			NewChannel(Square, 26, 10),
			NewChannel(Square, 26, 10),
			NewChannel(Triangle, 30, 10),
			NewChannel(Noise, 18, 10),
		},
		Buf: blip.New(uint32(sampleRate / 10)),
	}
}

// ChannelCount returns the number of addressable channels.
func (d *DemoChip) ChannelCount() int {
	return len(d.channels)
}

// RunChannel advances channelID to endTime and applies the register
// write (address, data).
func (d *DemoChip) RunChannel(channelID uint8, endTime uint32, address uint8, data int32) error {
	ch := d.channels[channelID]
	if err := ch.Run(d.Buf, endTime); err != nil {
		return err
	}
	ch.UpdateRegister(address, data)
	return nil
}

// CloseChannels runs every channel to endTime and closes the frame.
func (d *DemoChip) CloseChannels(endTime uint32) error {
	for _, ch := range d.channels {
		if err := ch.Run(d.Buf, endTime); err != nil {
			return err
		}
		ch.Close(endTime)
	}
	return d.Buf.EndFrame(endTime)
}
