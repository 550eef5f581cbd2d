package midi

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/jsphweid/pianoratio/keyboard"
	"github.com/jsphweid/pianoratio/pitch"
	"github.com/jsphweid/pianoratio/press"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	"gitlab.com/gomidi/midi/v2/smf"
)

const Velocity = 100

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return &blank, fmt.Errorf("Error reading midi file... %w", err)
	}

	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return &blank, fmt.Errorf("Error parsing midi file... %w", err)
	}

	return res, nil
}

type noteStart struct {
	absTicks int64
	key      uint8
}

// Notes returns the identifier of every note-on in s, ordered by absolute
// tick across all tracks.
func Notes(s *smf.SMF) []string {
	var starts []noteStart
	for _, events := range s.Tracks {
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			var channel, key, velocity uint8
			if midi.Message(event.Message).GetNoteStart(&channel, &key, &velocity) {
				starts = append(starts, noteStart{absTicks: absTicks, key: key})
			}
		}
	}

	sort.SliceStable(starts, func(i, j int) bool {
		return starts[i].absTicks < starts[j].absTicks
	})

	res := make([]string, 0, len(starts))
	for _, st := range starts {
		res = append(res, pitch.FromMIDINumber(int(st.key)).String())
	}
	return res
}

func keyFor(note string) (uint8, error) {
	n, err := pitch.Parse(note)
	if err != nil {
		return 0, err
	}
	num := n.MIDINumber()
	if num < 0 || num > 127 {
		return 0, fmt.Errorf("%v is outside the midi note range", note)
	}
	return uint8(num), nil
}

// OctaveSMF plays every key of o in chromatic order as quarter notes.
// Keys outside the midi note range are skipped.
func OctaveSMF(o keyboard.Octave) (*smf.SMF, error) {
	ticks := smf.MetricTicks(960)
	s := smf.New()
	s.TimeFormat = ticks

	var track smf.Track
	track.Add(0, smf.MetaTrackSequenceName(fmt.Sprintf("octave %v", o.Number)))
	for _, note := range o.Notes() {
		key, err := keyFor(note)
		if err != nil {
			continue
		}
		track.Add(0, midi.NoteOn(0, key, Velocity))
		track.Add(ticks.Ticks4th(), midi.NoteOff(0, key))
	}
	track.Close(0)

	if err := s.Add(track); err != nil {
		return nil, fmt.Errorf("could not add track for octave %v: %w", o.Number, err)
	}
	return s, nil
}

func WriteOctave(w io.Writer, o keyboard.Octave) error {
	s, err := OctaveSMF(o)
	if err != nil {
		return err
	}
	_, err = s.WriteTo(w)
	return err
}

func InPorts() []string {
	ins := midi.GetInPorts()
	names := make([]string, 0, len(ins))
	for _, in := range ins {
		names = append(names, in.String())
	}
	return names
}

// FindInPort falls back to the first port when name is empty.
func FindInPort(name string) (drivers.In, error) {
	if name == "" {
		return midi.InPort(0)
	}
	for _, in := range midi.GetInPorts() {
		if in.String() == name {
			return in, nil
		}
	}
	return nil, fmt.Errorf("input port not found: %s", name)
}

// HandleMessage feeds note-ons of msg to h and reports whether it did.
func HandleMessage(msg midi.Message, h press.Handler) bool {
	var ch, key, vel uint8
	if !msg.GetNoteStart(&ch, &key, &vel) {
		return false
	}
	press.Bind(pitch.FromMIDINumber(int(key)).String(), h)()
	return true
}

func Listen(in drivers.In, h press.Handler) (func(), error) {
	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		HandleMessage(msg, h)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start listening: %w", err)
	}
	return stop, nil
}
