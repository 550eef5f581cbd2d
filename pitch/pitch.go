package pitch

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ReferenceSemitone is the semitone every ratio is measured against. It is
// F4 in this indexing (5 + 12*4), and the ratio formula subtracts one more
// semitone on top of it, so F#4 is the note that comes out as exactly 1.
const ReferenceSemitone = 5 + 12*4

// MaxOctave bounds the octaves Parse accepts so that semitone and MIDI
// numbers stay inside an int. Ratios that far out are already 0 or +Inf.
const MaxOctave = math.MaxInt/12 - 10

const defaultClass = "C"

// ErrUnknownPitchClass is returned for a class token outside Classes, such as "E#".
var ErrUnknownPitchClass = errors.New("unknown pitch class")

// ErrInvalidOctaveToken is returned when what follows the class is not an
// integer octave within MaxOctave.
var ErrInvalidOctaveToken = errors.New("invalid octave token")

// Classes is the chromatic scale starting from C.
var Classes = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

type Note struct {
	Class  string
	Octave int
}

func (n Note) String() string {
	return n.Class + strconv.Itoa(n.Octave)
}

func (n Note) SemitoneOffset() int {
	index, _ := Index(n.Class)
	return index + n.Octave*12 - ReferenceSemitone
}

func (n Note) Ratio() float64 {
	index, _ := Index(n.Class)
	return offsetToRatio(float64(index) + float64(n.Octave)*12 - ReferenceSemitone)
}

// MIDINumber uses the C4 = 60 convention.
func (n Note) MIDINumber() int {
	index, _ := Index(n.Class)
	return (n.Octave+1)*12 + index
}

func FromMIDINumber(num int) Note {
	octave := floorDiv(num, 12) - 1
	return Note{Class: Classes[num-(octave+1)*12], Octave: octave}
}

func Index(class string) (int, error) {
	for i, c := range Classes {
		if c == class {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrUnknownPitchClass, class)
}

func IsSharp(class string) bool {
	return strings.HasSuffix(class, "#")
}

// splitClass cuts the class token off note: one uppercase letter and an
// optional sharp. Without a leading letter the class falls back to C and the
// whole input is left as the octave token. The token is not checked against
// Classes, so "E#4" splits into "E#" and "4".
func splitClass(note string) (string, string) {
	if note == "" || note[0] < 'A' || note[0] > 'Z' {
		return defaultClass, note
	}
	if len(note) >= 2 && note[1] == '#' {
		return note[:2], note[2:]
	}
	return note[:1], note[1:]
}

// Parse is the strict counterpart of ComputeRatio: anything ComputeRatio
// would turn into NaN is reported as an error here.
func Parse(note string) (Note, error) {
	class, rest := splitClass(note)
	if _, err := Index(class); err != nil {
		return Note{}, fmt.Errorf("%w in %q", err, note)
	}
	octave, err := strconv.Atoi(rest)
	if err != nil || octave > MaxOctave || octave < -MaxOctave {
		return Note{}, fmt.Errorf("%w: %q in %q", ErrInvalidOctaveToken, rest, note)
	}
	return Note{Class: class, Octave: octave}, nil
}

func Ratio(note string) (float64, error) {
	n, err := Parse(note)
	if err != nil {
		return math.NaN(), err
	}
	return n.Ratio(), nil
}

// ComputeRatio converts a note identifier such as "A4" into its frequency
// ratio. It never fails: an unknown class token or an octave token that is
// not an integer makes the result NaN.
func ComputeRatio(note string) float64 {
	class, rest := splitClass(note)
	index, err := Index(class)
	if err != nil {
		return math.NaN()
	}
	octave := math.NaN()
	if o, err := strconv.Atoi(rest); err == nil {
		octave = float64(o)
	}
	return offsetToRatio(float64(index) + octave*12 - ReferenceSemitone)
}

func offsetToRatio(offset float64) float64 {
	return math.Pow(2, (offset-1)/12)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
