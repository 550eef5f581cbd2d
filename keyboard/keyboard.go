package keyboard

import (
	"fmt"
	"strconv"

	"github.com/jsphweid/pianoratio/util"
)

type Kind int

const (
	White Kind = iota
	Black
)

func (k Kind) String() string {
	if k == Black {
		return "black"
	}
	return "white"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "white":
		*k = White
	case "black":
		*k = Black
	default:
		return fmt.Errorf("unknown key kind %q", text)
	}
	return nil
}

// Sizes are in pixels.
type Config struct {
	WhiteKeyWidth  int
	BlackKeyWidth  int
	WhiteKeyHeight int
	BlackKeyHeight int
}

func DefaultConfig() Config {
	return Config{
		WhiteKeyWidth:  25,
		BlackKeyWidth:  20,
		WhiteKeyHeight: 100,
		BlackKeyHeight: 60,
	}
}

var WhiteClasses = []string{"C", "D", "E", "F", "G", "A", "B"}
var BlackClasses = []string{"C#", "D#", "F#", "G#", "A#"}

// BlackKeySlots holds, for each black key, the index of the white key it sits
// right of. There is no black key between E-F and B-C.
var BlackKeySlots = []int{0, 1, 3, 4, 5}

type Key struct {
	Note string `json:"note"`
	Kind Kind   `json:"kind"`

	// white keys: position among the white keys; black keys: the white key
	// slot the black key follows
	Index int `json:"index"`

	// left edge for white keys, center for black keys
	Offset int `json:"offset"`

	Label string `json:"label,omitempty"`
}

func (k Key) Labeled() bool {
	return k.Label != ""
}

type Octave struct {
	Number int    `json:"octave"`
	Keys   []Key  `json:"keys"`
	Config Config `json:"-"`
}

func GenerateOctave(octave int) Octave {
	return Generate(octave, DefaultConfig())
}

func Generate(octave int, cfg Config) Octave {
	o := Octave{Number: octave, Config: cfg}
	suffix := strconv.Itoa(octave)

	for i, class := range WhiteClasses {
		k := Key{
			Note:   class + suffix,
			Kind:   White,
			Index:  i,
			Offset: i * cfg.WhiteKeyWidth,
		}
		if class == "C" {
			k.Label = k.Note
		}
		o.Keys = append(o.Keys, k)
	}

	for i, slot := range BlackKeySlots {
		o.Keys = append(o.Keys, Key{
			Note:   BlackClasses[i] + suffix,
			Kind:   Black,
			Index:  slot,
			Offset: (slot + 1) * cfg.WhiteKeyWidth,
		})
	}

	return o
}

func (o Octave) filter(kind Kind) []Key {
	var res []Key
	for _, k := range o.Keys {
		if k.Kind == kind {
			res = append(res, k)
		}
	}
	return res
}

func (o Octave) Whites() []Key {
	return o.filter(White)
}

func (o Octave) Blacks() []Key {
	return o.filter(Black)
}

func (o Octave) Labeled() (Key, bool) {
	for _, k := range o.Keys {
		if k.Labeled() {
			return k, true
		}
	}
	return Key{}, false
}

func (o Octave) Find(note string) (Key, bool) {
	for _, k := range o.Keys {
		if k.Note == note {
			return k, true
		}
	}
	return Key{}, false
}

func (o Octave) Width() int {
	return len(WhiteClasses) * o.Config.WhiteKeyWidth
}

// Shift returns a copy of o with every offset moved right by dx.
func (o Octave) Shift(dx int) Octave {
	keys := make([]Key, len(o.Keys))
	for i, k := range o.Keys {
		k.Offset += dx
		keys[i] = k
	}
	o.Keys = keys
	return o
}

// Notes lists the identifiers in chromatic order.
func (o Octave) Notes() []string {
	whites := o.Whites()
	blacks := o.Blacks()
	var res []string
	b := 0
	for i, w := range whites {
		res = append(res, w.Note)
		if b < len(blacks) && blacks[b].Index == i {
			res = append(res, blacks[b].Note)
			b++
		}
	}
	return res
}

type Row struct {
	Octaves []Octave `json:"octaves"`
}

// Keys places the row's octaves side by side.
func (r Row) Keys() []Key {
	var res []Key
	dx := 0
	for _, o := range r.Octaves {
		res = append(res, o.Shift(dx).Keys...)
		dx += o.Width()
	}
	return res
}

func (r Row) Width() int {
	return util.Sum(util.MapSlice(r.Octaves, Octave.Width))
}

// DefaultRows is the page the keyboard is shown on: five framed rows of two
// octaves each.
var DefaultRows = [][]int{{1, 2}, {3, 4}, {5, 6}, {7, 8}, {9, 10}}

func Board(rows [][]int, cfg Config) []Row {
	res := make([]Row, 0, len(rows))
	for _, octaves := range rows {
		var r Row
		for _, o := range octaves {
			r.Octaves = append(r.Octaves, Generate(o, cfg))
		}
		res = append(res, r)
	}
	return res
}

// Span lays out every octave from first to last inclusive in one row.
func Span(first, last int, cfg Config) Row {
	var r Row
	for _, o := range util.Range(first, last) {
		r.Octaves = append(r.Octaves, Generate(o, cfg))
	}
	return r
}
