package press

import (
	"math"
	"sync"
	"testing"
	"time"

	"github.com/jsphweid/pianoratio/keyboard"
	"github.com/jsphweid/pianoratio/pitch"
	"github.com/stretchr/testify/assert"
)

func TestBindPassesRatioUnchanged(t *testing.T) {
	var got float64
	Bind("A4", func(r float64) { got = r })()
	assert.Equal(t, pitch.ComputeRatio("A4"), got)
}

func TestBindOctave(t *testing.T) {
	var got []float64
	actions := BindOctave(keyboard.GenerateOctave(4), func(r float64) { got = append(got, r) })
	assert.Len(t, actions, 12)

	actions["C4"]()
	actions["C#4"]()
	assert.Equal(t, []float64{pitch.ComputeRatio("C4"), pitch.ComputeRatio("C#4")}, got)
}

func TestFormat(t *testing.T) {
	cases := []struct {
		in       float64
		expected string
	}{
		{1, "1"},
		{0.5, "0.5"},
		{math.Sqrt2, "1.4142135623730951"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{1e-7, "1e-7"},
		{1.5e22, "1.5e+22"},
		{0, "0"},
	}

	for _, c := range cases {
		t.Run(c.expected, func(t *testing.T) {
			assert.Equal(t, c.expected, Format(c.in))
		})
	}
}

func TestDisplayKeepsLastPress(t *testing.T) {
	d := NewDisplay(time.Millisecond)
	assert.Equal(t, "", d.Value())
	assert.True(t, math.IsNaN(d.Ratio()))

	h := d.Handler()
	h(0.5)
	h(2)

	assert := assert.New(t)
	assert.Equal("2", d.Value())
	assert.Equal(2.0, d.Ratio())
	assert.Equal(uint64(2), d.Presses())
}

func TestDisplayNotifiesOnceSettled(t *testing.T) {
	d := NewDisplay(20 * time.Millisecond)

	var mu sync.Mutex
	var seen []string
	d.Subscribe(func(v string) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, v)
	})

	for _, note := range []string{"C4", "D4", "E4"} {
		Bind(note, d.Handler())()
	}

	expected := Format(pitch.ComputeRatio("E4"))
	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(seen) == 1 && seen[0] == expected
	}, time.Second, 5*time.Millisecond)
}
