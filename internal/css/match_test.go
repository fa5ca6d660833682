package css

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStop(t *testing.T) {
	tests := []struct {
		in   string
		want Stop
	}{
		{"#ff0000 0%", Stop{Color: "#ff0000", Value: 0, Unit: UnitPercent}},
		{"#abc 12.5%", Stop{Color: "#abc", Value: 12.5, Unit: UnitPercent}},
		{"#11223344 100%", Stop{Color: "#11223344", Value: 100, Unit: UnitPercent}},
		{"red 50px", Stop{Color: "red", Value: 50, Unit: UnitPixel}},
		{"  transparent   30% ", Stop{Color: "transparent", Value: 30, Unit: UnitPercent}},
		{"rgba(0, 0, 0, 0.5) 40%", Stop{Color: "rgba(0, 0, 0, 0.5)", Value: 40, Unit: UnitPercent}},
		{"HSL(120, 50%, 50%) 7PX", Stop{Color: "HSL(120, 50%, 50%)", Value: 7, Unit: UnitPixel}},
		{"blue -10%", Stop{Color: "blue", Value: -10, Unit: UnitPercent}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseStop(tt.in)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStopRejects(t *testing.T) {
	for _, in := range []string{
		"",
		"red",
		"50%",
		"red 50",
		"red 50em",
		"red 10% 20%",
		"#ff 10%",
		"#123456789 10%",
		"#ggg 10%",
		"var(--c) 10%",
		"rgb(1, 2, 3)10%",
		"rgb(1, 2, 3 10%",
	} {
		t.Run(in, func(t *testing.T) {
			_, ok := ParseStop(in)
			assert.False(t, ok)
		})
	}
}

func TestParseAngle(t *testing.T) {
	v, ok := ParseAngle("90deg")
	require.True(t, ok)
	assert.Equal(t, 90.0, v)

	v, ok = ParseAngle(" 22.5deg ")
	require.True(t, ok)
	assert.Equal(t, 22.5, v)

	for _, in := range []string{"-45deg", "45DEG", "45rad", ".5deg", "1e2deg", "45", "to right", "5.deg"} {
		_, ok := ParseAngle(in)
		assert.False(t, ok, in)
	}
}

func TestParseRadialPrelude(t *testing.T) {
	p, ok := ParseRadialPrelude("circle at 25% 75%")
	require.True(t, ok)
	assert.Equal(t, RadialPrelude{Shape: "circle", HasPosition: true, X: 25, Y: 75}, p)

	p, ok = ParseRadialPrelude("at center top")
	require.True(t, ok)
	assert.Equal(t, RadialPrelude{HasPosition: true, X: 50, Y: 0}, p)

	p, ok = ParseRadialPrelude("ellipse farthest-corner")
	require.True(t, ok)
	assert.Equal(t, RadialPrelude{Shape: "ellipse"}, p)

	for _, in := range []string{"", "red 0px", "at 50%", "circle circle", "at 10% 10% circle", "at 10px 10px"} {
		_, ok := ParseRadialPrelude(in)
		assert.False(t, ok, in)
	}
}

func TestParsePercentPair(t *testing.T) {
	x, y, ok := ParsePercentPair(" 12.5% 100% ")
	require.True(t, ok)
	assert.Equal(t, 12.5, x)
	assert.Equal(t, 100.0, y)

	_, _, ok = ParsePercentPair("10px 10%")
	assert.False(t, ok)
	_, _, ok = ParsePercentPair("10%")
	assert.False(t, ok)
}

func TestIsFillRule(t *testing.T) {
	assert.True(t, IsFillRule(" evenodd"))
	assert.True(t, IsFillRule("NONZERO"))
	assert.False(t, IsFillRule("0% 0%"))
}
