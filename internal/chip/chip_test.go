package chip

import (
	"testing"

	"github.com/kelvinw/blipgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoChipProducesSamples(t *testing.T) {
	d := NewDemoChip(44100)
	require.NoError(t, d.Buf.SetRates(1789772, 44100))

	require.NoError(t, d.RunChannel(0, 2000, 0, 50)) // period
	require.NoError(t, d.RunChannel(0, 2000, 1, 10)) // volume
	require.NoError(t, d.CloseChannels(4000))

	assert.Greater(t, int(d.Buf.SamplesAvailable()), 0)

	out := make([]int16, d.Buf.SamplesAvailable())
	n, err := d.Buf.ReadSamples(out, d.Buf.SamplesAvailable(), false)
	require.NoError(t, err)
	assert.Greater(t, int(n), 0)
}

func TestRunChannelPanicsOnOutOfRangeChannel(t *testing.T) {
	d := NewDemoChip(44100)
	require.NoError(t, d.Buf.SetRates(1789772, 44100))
	assert.Panics(t, func() {
		_ = d.RunChannel(uint8(d.ChannelCount()), 100, 0, 0)
	})
}

func TestSquareChannelRuns(t *testing.T) {
	ch := NewChannel(Square, 100, 4)
	ch.UpdateRegister(1, 5000) // volume
	ch.UpdateRegister(2, 4)    // timbre: half duty

	buf := blip.New(256)
	require.NoError(t, buf.SetRates(1789772, 44100))
	require.NoError(t, ch.Run(buf, 64))
}

func TestTriangleChannelSkipsWhenSilent(t *testing.T) {
	ch := NewChannel(Triangle, 100, 4)
	// volume left at zero: runTriangle should advance time but emit nothing
	buf := blip.New(256)
	require.NoError(t, buf.SetRates(1789772, 44100))
	require.NoError(t, ch.Run(buf, 64))
	require.NoError(t, buf.EndFrame(64))

	out := make([]int16, buf.SamplesAvailable())
	_, err := buf.ReadSamples(out, buf.SamplesAvailable(), false)
	require.NoError(t, err)
	for _, s := range out {
		assert.Zero(t, s)
	}
}

func TestNoiseChannelAdvancesPhase(t *testing.T) {
	ch := NewChannel(Noise, 100, 4)
	ch.UpdateRegister(1, 5000)
	ch.UpdateRegister(2, 1)

	buf := blip.New(256)
	require.NoError(t, buf.SetRates(1789772, 44100))
	require.NoError(t, ch.Run(buf, 64))
}
