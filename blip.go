package blip

import "math/bits"

// Buffer resamples a delta stream to the output rate and accumulates
// samples until they're read out. Not safe for concurrent use; a
// single instance is exclusively owned by one producer/consumer pair.
type Buffer struct {
	factor     uint64
	offset     uint64
	avail      uint32
	capacity   uint32
	integrator int64
	buffer     []int32
}

// New allocates a buffer holding at most capacity output samples
// before the caller must read them. Rates default to one sample per
// MaxRatio clocks until SetRates is called.
func New(capacity uint32) *Buffer {
	return &Buffer{
		factor:   timeUnit / MaxRatio,
		capacity: capacity,
		buffer:   make([]int32, uint64(capacity)+bufExtra),
	}
}

// SetRates recomputes factor so that, for every clockRate input
// clocks, approximately sampleRate output samples are produced.
// Returns a *ConfigurationError if clockRate is zero or the ratio
// exceeds MaxRatio.
func (b *Buffer) SetRates(clockRate, sampleRate uint64) error {
	if clockRate == 0 {
		return &ConfigurationError{ClockRate: clockRate, SampleRate: sampleRate}
	}

	// clockRate/sampleRate must not exceed MaxRatio. Guard the division
	// by comparing clockRate against sampleRate*MaxRatio instead, via a
	// 128-bit product, so a huge sampleRate can't overflow the check.
	hiRatio, loRatio := bits.Mul64(sampleRate, uint64(MaxRatio))
	if hiRatio == 0 && clockRate > loRatio {
		return &ConfigurationError{ClockRate: clockRate, SampleRate: sampleRate}
	}

	hi, lo := bits.Mul64(timeUnit, sampleRate)
	if hi >= clockRate {
		// timeUnit*sampleRate/clockRate does not fit in 64 bits.
		return &ConfigurationError{ClockRate: clockRate, SampleRate: sampleRate}
	}
	factor, _ := bits.Div64(hi, lo, clockRate)

	b.factor = factor
	return nil
}

// AddDelta splats a band-limited step of magnitude delta starting at
// sub-sample time, measured from the current frame's origin. time and
// delta must keep the written slot range inside buffer (spec.md
// invariant 3); callers violating this get a *CapacityError rather
// than silent corruption.
func (b *Buffer) AddDelta(time uint32, delta int32) error {
	fixed := uint64(time)*b.factor + b.offset
	fixed >>= preShift

	sampleOffset := fixed >> fracBits
	start := uint64(b.avail) + sampleOffset
	if start+16 > uint64(len(b.buffer)) {
		return &CapacityError{Capacity: b.capacity, Wanted: uint32(start + 16)}
	}

	phaseShift := uint(fracBits - phaseBits)
	phase := (fixed >> phaseShift) & (phaseCount - 1)

	interp := (fixed >> (phaseShift - deltaBits)) & (deltaUnit - 1)
	delta2 := (int64(delta) * int64(interp)) >> deltaBits
	delta1 := int64(delta) - delta2

	in := &blStep[phase]
	next := &blStep[phase+1]
	out := b.buffer[start : start+16]
	for i := 0; i < halfWidth; i++ {
		out[i] += int32(int64(in[i])*delta1 + int64(next[i])*delta2)
	}

	rev := &blStep[phaseCount-phase]
	prev := &blStep[phaseCount-phase-1]
	for i := 0; i < halfWidth; i++ {
		out[halfWidth+i] += int32(int64(rev[halfWidth-1-i])*delta1 + int64(prev[halfWidth-1-i])*delta2)
	}

	return nil
}

// EndFrame advances the frame origin by clocksInFrame clocks, making
// those clocks' worth of deltas available as output samples and
// beginning a new time frame. Subsequent AddDelta timestamps are
// measured from zero again.
func (b *Buffer) EndFrame(clocksInFrame uint32) error {
	off := uint64(clocksInFrame)*b.factor + b.offset
	newAvail := b.avail + uint32(off>>timeBits)
	if newAvail > b.capacity {
		return &CapacityError{Capacity: b.capacity, Wanted: newAvail}
	}
	b.avail = newAvail
	b.offset = off & (timeUnit - 1)
	return nil
}

// SamplesAvailable returns the count of fully-formed output samples
// ready to read at the front of the buffer.
func (b *Buffer) SamplesAvailable() uint32 {
	return b.avail
}

// ReadSamples drains up to count integrated samples (fewer if fewer
// are available) from the front of the buffer into out, shifting the
// unconsumed kernel tail forward so later deltas land correctly.
// When stereo is true, samples are written to even indices of out and
// odd indices are left at zero; out must then be at least 2*actual
// long. If out is too short, nothing is read and an *ArgumentError is
// returned.
func (b *Buffer) ReadSamples(out []int16, count uint32, stereo bool) (actual uint32, err error) {
	if count > b.avail {
		count = b.avail
	}

	step := 1
	if stereo {
		step = 2
	}
	if uint64(count)*uint64(step) > uint64(len(out)) {
		return 0, &ArgumentError{Msg: "out slice too small for requested sample count"}
	}

	if count > 0 {
		sum := b.integrator
		for i := uint32(0); i < count; i++ {
			s := sum >> deltaBits
			sum += int64(b.buffer[i])
			out[i*uint32(step)] = clampI16(int32(s))
			sum -= s << (deltaBits - bassShift)
		}
		b.integrator = sum

		b.shift(count)
		b.avail -= count
	}

	return count, nil
}

// shift drops the first n slots of buffer and appends n zeros at the
// tail, preserving the kernel tail of deltas not yet consumed.
func (b *Buffer) shift(n uint32) {
	remain := copy(b.buffer, b.buffer[n:])
	for i := remain; i < len(b.buffer); i++ {
		b.buffer[i] = 0
	}
}
