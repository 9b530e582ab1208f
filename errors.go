package blip

import "fmt"

// ConfigurationError reports an impossible clock/sample rate pair
// passed to SetRates.
type ConfigurationError struct {
	ClockRate, SampleRate uint64
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("blip: unusable rates clockRate=%d, sampleRate=%d (clockRate must be nonzero and clockRate/sampleRate at most MaxRatio=%d)", e.ClockRate, e.SampleRate, MaxRatio)
}

// CapacityError reports that AddDelta or EndFrame would write past the
// end of the buffer — the caller supplied a frame longer than the
// buffer's capacity allows, or a delta timestamped beyond the frame.
type CapacityError struct {
	Capacity uint32
	Wanted   uint32
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("blip: buffer capacity %d exceeded (needed %d)", e.Capacity, e.Wanted)
}

// ArgumentError reports a malformed call argument, e.g. an out slice
// too small to hold the requested samples.
type ArgumentError struct {
	Msg string
}

func (e *ArgumentError) Error() string {
	return "blip: " + e.Msg
}
