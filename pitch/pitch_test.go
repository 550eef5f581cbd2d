package pitch

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeRatioScenarios(t *testing.T) {
	cases := []struct {
		note     string
		expected float64
	}{
		{"A4", math.Pow(2, 3.0/12)},
		{"C1", math.Pow(2, -42.0/12)},
		{"F4", math.Pow(2, -1.0/12)},
		{"F#4", 1},
		{"C5", math.Pow(2, 6.0/12)},
		{"C-1", math.Pow(2, (0-12-53-1)/12.0)},
		{"B10", math.Pow(2, (11+120-53-1)/12.0)},
	}

	for _, c := range cases {
		t.Run(c.note, func(t *testing.T) {
			assert.Equal(t, c.expected, ComputeRatio(c.note))
		})
	}
}

func TestComputeRatioLiteralValues(t *testing.T) {
	assert := assert.New(t)
	assert.InDelta(1.189207, ComputeRatio("A4"), 1e-6)
	assert.InDelta(0.088388, ComputeRatio("C1"), 1e-6)
	assert.InDelta(math.Sqrt2, ComputeRatio("C5"), 1e-12)
}

func TestComputeRatioIsDeterministic(t *testing.T) {
	for _, class := range Classes {
		note := class + "4"
		first := ComputeRatio(note)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, ComputeRatio(note))
		}
	}
}

func TestOctaveDoubling(t *testing.T) {
	for _, class := range Classes {
		for octave := -3; octave <= 12; octave++ {
			name := fmt.Sprintf("%v%v", class, octave)
			t.Run(name, func(t *testing.T) {
				low := ComputeRatio(fmt.Sprintf("%v%v", class, octave))
				high := ComputeRatio(fmt.Sprintf("%v%v", class, octave+1))
				assert.InEpsilon(t, 2*low, high, 1e-12)
			})
		}
	}
}

func TestChromaticMonotonicity(t *testing.T) {
	for octave := 0; octave <= 10; octave++ {
		prev := math.Inf(-1)
		for _, class := range Classes {
			r := ComputeRatio(fmt.Sprintf("%v%v", class, octave))
			assert.Greater(t, r, prev, "%v%v", class, octave)
			prev = r
		}
	}
}

func TestComputeRatioFallsBackToC(t *testing.T) {
	assert.Equal(t, ComputeRatio("C4"), ComputeRatio("4"))
	assert.Equal(t, ComputeRatio("C-2"), ComputeRatio("-2"))
}

func TestComputeRatioPropagatesNaN(t *testing.T) {
	for _, note := range []string{"", "C", "A#", "c4", "H4", "E#4", "C4.5", "C 4", "Cx"} {
		t.Run(fmt.Sprintf("%q", note), func(t *testing.T) {
			assert.True(t, math.IsNaN(ComputeRatio(note)))
		})
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		input    string
		expected Note
	}{
		{"C4", Note{"C", 4}},
		{"C#4", Note{"C#", 4}},
		{"A#10", Note{"A#", 10}},
		{"G-3", Note{"G", -3}},
		{"4", Note{"C", 4}},
	}

	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			n, err := Parse(c.input)
			require.NoError(t, err)
			assert.Equal(t, c.expected, n)
		})
	}
}

func TestParseRejectsUnknownClass(t *testing.T) {
	for _, note := range []string{"E#4", "B#0", "H4", "Z#"} {
		t.Run(note, func(t *testing.T) {
			_, err := Parse(note)
			assert.True(t, errors.Is(err, ErrUnknownPitchClass))

			r, err := Ratio(note)
			assert.True(t, errors.Is(err, ErrUnknownPitchClass))
			assert.True(t, math.IsNaN(r))
			assert.True(t, math.IsNaN(ComputeRatio(note)))
		})
	}
}

func TestParseRejectsInvalidOctave(t *testing.T) {
	over := fmt.Sprint(MaxOctave + 1)
	for _, note := range []string{"", "D", "D#", "c4", "F4x", "G99999999999999999999", "C" + over, "C-" + over, "C768614336404564660"} {
		t.Run(fmt.Sprintf("%q", note), func(t *testing.T) {
			_, err := Parse(note)
			assert.True(t, errors.Is(err, ErrInvalidOctaveToken))

			r, err := Ratio(note)
			assert.Error(t, err)
			assert.True(t, math.IsNaN(r))
		})
	}
}

func TestRatioMatchesComputeRatio(t *testing.T) {
	for octave := -2; octave <= 10; octave++ {
		for _, class := range Classes {
			note := Note{Class: class, Octave: octave}
			r, err := Ratio(note.String())
			require.NoError(t, err)
			assert.Equal(t, ComputeRatio(note.String()), r)
		}
	}

	for _, note := range []string{"C100000", "B-100000", fmt.Sprintf("A%v", MaxOctave), fmt.Sprintf("C-%v", MaxOctave)} {
		t.Run(note, func(t *testing.T) {
			r, err := Ratio(note)
			require.NoError(t, err)
			assert.Equal(t, ComputeRatio(note), r)
		})
	}
	assert.True(t, math.IsInf(ComputeRatio("C100000"), 1))
}

func TestExtremeOctavesDoNotWrap(t *testing.T) {
	n, err := Parse(fmt.Sprintf("B%v", MaxOctave))
	require.NoError(t, err)
	assert.Greater(t, n.SemitoneOffset(), 0)
	assert.Greater(t, n.MIDINumber(), 0)

	n, err = Parse(fmt.Sprintf("C-%v", MaxOctave))
	require.NoError(t, err)
	assert.Less(t, n.SemitoneOffset(), 0)
	assert.Less(t, n.MIDINumber(), 0)

	assert.True(t, math.IsInf(Note{"C", math.MaxInt}.Ratio(), 1))
}

func TestIndex(t *testing.T) {
	for i, class := range Classes {
		idx, err := Index(class)
		require.NoError(t, err)
		assert.Equal(t, i, idx)
	}

	_, err := Index("H")
	assert.True(t, errors.Is(err, ErrUnknownPitchClass))
	_, err = Index("Db")
	assert.True(t, errors.Is(err, ErrUnknownPitchClass))
}

func TestSemitoneOffset(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(0, Note{"F", 4}.SemitoneOffset())
	assert.Equal(4, Note{"A", 4}.SemitoneOffset())
	assert.Equal(-41, Note{"C", 1}.SemitoneOffset())
}

func TestMIDINumber(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(60, Note{"C", 4}.MIDINumber())
	assert.Equal(69, Note{"A", 4}.MIDINumber())
	assert.Equal(0, Note{"C", -1}.MIDINumber())
	assert.Equal(127, Note{"G", 9}.MIDINumber())

	for num := -30; num <= 160; num++ {
		assert.Equal(num, FromMIDINumber(num).MIDINumber())
	}
	assert.Equal(Note{"B", -2}, FromMIDINumber(-1))
	assert.Equal(Note{"A", 4}, FromMIDINumber(69))
}

func TestIsSharp(t *testing.T) {
	assert.True(t, IsSharp("C#"))
	assert.False(t, IsSharp("C"))
}
