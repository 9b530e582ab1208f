package eventlog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadParsesRecords(t *testing.T) {
	input := `# comment
1000 0 0 50

2000 0 1 10
4000 4 0 0
`
	events, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, events, 3)

	assert.Equal(t, Event{Time: 1000, Channel: 0, Register: 0, Data: 50}, events[0])
	assert.Equal(t, Event{Time: 2000, Channel: 0, Register: 1, Data: 10}, events[1])
	assert.Equal(t, Event{Time: 4000, Channel: 4, Register: 0, Data: 0}, events[2])
}

func TestReadRejectsMalformedLine(t *testing.T) {
	_, err := Read(strings.NewReader("not-a-number 0 0 0\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
}

func TestReadRejectsWrongFieldCount(t *testing.T) {
	_, err := Read(strings.NewReader("1 2 3\n"))
	require.Error(t, err)
}

func TestReadHandlesNegativeData(t *testing.T) {
	events, err := Read(strings.NewReader("100 2 1 -500\n"))
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, int32(-500), events[0].Data)
}
