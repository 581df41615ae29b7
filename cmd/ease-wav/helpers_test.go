package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testRate   = 48000
	testFrames = int64(10 * testRate) // 10 seconds
)

func TestParseCurveFlag(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		custom  bool
	}{
		{"preset_ease", "ease", false, false},
		{"preset_ease_in_out", "ease-in-out", false, false},
		{"preset_uppercase", "EASE-OUT", false, false},
		{"custom_bezier", "0.25,0.1,0.75,0.9", false, true},
		{"custom_with_spaces", "0.25, 0.1, 0.75, 0.9", false, true},
		{"unknown_name", "bounce", true, false},
		{"too_few_values", "0.25,0.1,0.75", true, false},
		{"non_numeric", "a,b,c,d", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag, err := parseCurveFlag(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.custom, flag.custom)

			curve, err := flag.build()
			require.NoError(t, err)
			require.NotNil(t, curve)
		})
	}
}

func TestEnvelope_Gain(t *testing.T) {
	flag, err := parseCurveFlag("ease-in-out")
	require.NoError(t, err)

	env, err := newEnvelope(flag, testRate, testFrames, 2, 3, defaultTableSize)
	require.NoError(t, err)

	fadeInEnd := int64(2 * testRate)
	fadeOutStart := testFrames - int64(3*testRate)

	// Silent at the very start, unity in the middle, silent at the end.
	assert.InDelta(t, 0.0, env.gainAt(0), 1e-3)
	assert.Equal(t, 1.0, env.gainAt(fadeInEnd))
	assert.Equal(t, 1.0, env.gainAt(testFrames/2))
	assert.InDelta(t, 0.0, env.gainAt(testFrames-1), 1e-3)

	// Fade-in ramps monotonically up, fade-out monotonically down.
	prev := env.gainAt(0)
	for f := int64(0); f < fadeInEnd; f += testRate / 100 {
		g := env.gainAt(f)
		assert.GreaterOrEqual(t, g, prev, "frame %d", f)
		assert.GreaterOrEqual(t, g, 0.0)
		assert.LessOrEqual(t, g, 1.0)
		prev = g
	}
	prev = env.gainAt(fadeOutStart)
	for f := fadeOutStart; f < testFrames; f += testRate / 100 {
		g := env.gainAt(f)
		assert.LessOrEqual(t, g, prev, "frame %d", f)
		prev = g
	}
}

func TestEnvelope_ExactMatchesTable(t *testing.T) {
	flag, err := parseCurveFlag("ease")
	require.NoError(t, err)

	exact, err := newEnvelope(flag, testRate, testFrames, 1, 1, 0)
	require.NoError(t, err)
	tabled, err := newEnvelope(flag, testRate, testFrames, 1, 1, 4096)
	require.NoError(t, err)

	for f := int64(0); f < testFrames; f += testRate / 10 {
		assert.InDelta(t, exact.gainAt(f), tabled.gainAt(f), 1e-4, "frame %d", f)
	}
}

func TestEnvelope_FadesLongerThanInput(t *testing.T) {
	flag, err := parseCurveFlag("ease")
	require.NoError(t, err)

	_, err = newEnvelope(flag, testRate, testRate, 1, 1, defaultTableSize)
	require.Error(t, err)
}

func TestApplyEnvelope(t *testing.T) {
	flag, err := parseCurveFlag("ease-in-out")
	require.NoError(t, err)

	// Fade-in only, spanning the whole clip.
	env, err := newEnvelope(flag, testRate, testFrames, 10, 0, defaultTableSize)
	require.NoError(t, err)

	const channels = 2
	const frames = 64
	data := make([]int, frames*channels)
	for i := range data {
		data[i] = 1000
	}

	applyEnvelope(data, channels, frames, 0, env, maxInt16)

	// Frame 0 is at the very start of the fade: silent.
	assert.Equal(t, 0, data[0])
	assert.Equal(t, 0, data[1])

	// Both channels of a frame get the same gain.
	for f := 0; f < frames; f++ {
		assert.Equal(t, data[f*channels], data[f*channels+1], "frame %d", f)
	}
}
