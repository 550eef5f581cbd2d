package press

import (
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/pianoratio/keyboard"
	"github.com/jsphweid/pianoratio/pitch"
)

// Handler receives the ratio of a pressed key.
type Handler func(ratio float64)

// Bind returns the action a renderer attaches to the key for note.
func Bind(note string, h Handler) func() {
	return func() {
		h(pitch.ComputeRatio(note))
	}
}

func BindOctave(o keyboard.Octave, h Handler) map[string]func() {
	res := make(map[string]func(), len(o.Keys))
	for _, k := range o.Keys {
		res[k.Note] = Bind(k.Note, h)
	}
	return res
}

// Format writes a ratio the way a browser prints a number: shortest
// round-trip digits, exponent form only for very small or very large values.
func Format(ratio float64) string {
	switch {
	case math.IsNaN(ratio):
		return "NaN"
	case math.IsInf(ratio, 1):
		return "Infinity"
	case math.IsInf(ratio, -1):
		return "-Infinity"
	}

	abs := math.Abs(ratio)
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		s := strconv.FormatFloat(ratio, 'e', -1, 64)
		mantissa, exp, _ := strings.Cut(s, "e")
		sign := exp[:1]
		digits := strings.TrimLeft(exp[1:], "0")
		return mantissa + "e" + sign + digits
	}
	return strconv.FormatFloat(ratio, 'f', -1, 64)
}

// Display holds the value of the last pressed key, ready to be shown or
// copied. Subscribers are notified once presses settle.
type Display struct {
	mu        sync.RWMutex
	value     string
	ratio     float64
	presses   uint64
	listeners []func(string)
	debounced func(f func())
}

func NewDisplay(wait time.Duration) *Display {
	return &Display{
		ratio:     math.NaN(),
		debounced: debounce.New(wait),
	}
}

func (d *Display) Set(ratio float64) {
	d.mu.Lock()
	d.ratio = ratio
	d.value = Format(ratio)
	d.presses++
	d.mu.Unlock()

	d.debounced(d.notify)
}

func (d *Display) Handler() Handler {
	return d.Set
}

func (d *Display) Value() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.value
}

func (d *Display) Ratio() float64 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.ratio
}

func (d *Display) Presses() uint64 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.presses
}

func (d *Display) Subscribe(f func(string)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listeners = append(d.listeners, f)
}

func (d *Display) notify() {
	d.mu.RLock()
	value := d.value
	listeners := append([]func(string){}, d.listeners...)
	d.mu.RUnlock()

	for _, f := range listeners {
		f(value)
	}
}
