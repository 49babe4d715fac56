package huepick

import "strconv"

// Gesture is the pointer interaction state of the picker surface.
type Gesture int

// Gesture states.
const (
	GestureIdle Gesture = iota
	GestureDragging
)

// String returns the gesture name.
func (g Gesture) String() string {
	if g == GestureDragging {
		return "dragging"
	}
	return "idle"
}

// Channel identifies one RGB channel.
type Channel int

// RGB channels.
const (
	ChannelRed Channel = iota
	ChannelGreen
	ChannelBlue
)

// String returns the single-letter channel label.
func (c Channel) String() string {
	switch c {
	case ChannelRed:
		return "R"
	case ChannelGreen:
		return "G"
	case ChannelBlue:
		return "B"
	default:
		return "Channel(" + strconv.Itoa(int(c)) + ")"
	}
}

// Get returns the value of channel c in rgb.
func (c Channel) Get(rgb RGB) uint8 {
	switch c {
	case ChannelGreen:
		return rgb.G
	case ChannelBlue:
		return rgb.B
	default:
		return rgb.R
	}
}

// Set returns rgb with channel c replaced by v.
func (c Channel) Set(rgb RGB, v uint8) RGB {
	switch c {
	case ChannelGreen:
		rgb.G = v
	case ChannelBlue:
		rgb.B = v
	default:
		rgb.R = v
	}
	return rgb
}

// Field identifies one of the displayed color representations.
type Field int

// Displayed fields.
const (
	FieldHex Field = iota
	FieldRGB
	FieldHSL
)

// String returns the field label.
func (f Field) String() string {
	switch f {
	case FieldRGB:
		return "RGB"
	case FieldHSL:
		return "HSL"
	default:
		return "HEX"
	}
}

// State is the complete session state of a color picker.
//
// State is a value: Apply never mutates its receiver, which makes every
// interaction reproducible from a start state and a sequence of events.
type State struct {
	Color   Color   // Last valid color; all representations agree
	HexText string  // HEX field text as displayed, possibly invalid
	History History // Committed colors, most recent first
	Gesture Gesture // Pointer state of the surface
	Layout  Layout  // Surface and hue strip geometry
}

// NewState returns a session state showing c.
func NewState(c Color) State {
	return State{Color: c, HexText: c.Hex()}
}

// Display returns the text shown for field f. Copy actions must use this
// exact string.
func (s State) Display(f Field) string {
	switch f {
	case FieldRGB:
		return FormatRGB(s.Color.RGB)
	case FieldHSL:
		return FormatHSL(s.Color.HSL)
	default:
		return s.HexText
	}
}

// Event is an input to State.Apply.
type Event interface {
	event()
}

// HexEntered reports the full text of the HEX field after an edit.
type HexEntered struct{ Text string }

// ChannelEntered reports the text of an RGB number field after an edit.
type ChannelEntered struct {
	Channel Channel
	Text    string
}

// ChannelSet reports an RGB slider position.
type ChannelSet struct {
	Channel Channel
	Value   int
}

// HSLSet replaces the HSL value directly.
type HSLSet struct{ HSL HSL }

// PointerPressed reports a primary button press.
type PointerPressed struct{ X, Y float64 }

// PointerMoved reports pointer motion anywhere on the input surface.
type PointerMoved struct{ X, Y float64 }

// PointerReleased reports a primary button release anywhere.
type PointerReleased struct{ X, Y float64 }

// HistoryCommitted saves the current color to the history.
type HistoryCommitted struct{}

// HistorySelected re-applies the history entry at Index.
type HistorySelected struct{ Index int }

// Resized replaces the picker geometry.
type Resized struct{ Layout Layout }

func (HexEntered) event()       {}
func (ChannelEntered) event()   {}
func (ChannelSet) event()       {}
func (HSLSet) event()           {}
func (PointerPressed) event()   {}
func (PointerMoved) event()     {}
func (PointerReleased) event()  {}
func (HistoryCommitted) event() {}
func (HistorySelected) event()  {}
func (Resized) event()          {}

// Apply returns the state that results from e. All representations are
// recomputed before Apply returns.
//
// The only error is a *ParseError for HEX text that is not a color. The
// returned state then carries the typed text while the color keeps its
// last valid value.
func (s State) Apply(e Event) (State, error) {
	switch e := e.(type) {
	case HexEntered:
		s.HexText = e.Text
		rgb, err := ParseHex(e.Text)
		if err != nil {
			return s, err
		}
		s.Color = ColorFromRGB(rgb)

	case ChannelEntered:
		s = s.withRGB(e.Channel.Set(s.Color.RGB, ParseChannel(e.Text)))

	case ChannelSet:
		s = s.withRGB(e.Channel.Set(s.Color.RGB, uint8(ClampChannel(e.Value))))

	case HSLSet:
		s = s.withHSL(e.HSL.Normalize())

	case PointerPressed:
		switch {
		case s.Layout.Surface.Contains(e.X, e.Y):
			s.Gesture = GestureDragging
			s = s.withSurface(e.X, e.Y)
		case s.Layout.HueStrip.Contains(e.X, e.Y):
			hsl := s.Color.HSL
			hsl.H = HueAt(s.Layout.HueStrip, e.Y)
			s = s.withHSL(hsl)
		}

	case PointerMoved:
		if s.Gesture == GestureDragging {
			s = s.withSurface(e.X, e.Y)
		}

	case PointerReleased:
		s.Gesture = GestureIdle

	case HistoryCommitted:
		s.History = s.History.Add(s.Color.Hex())

	case HistorySelected:
		hex, ok := s.History.At(e.Index)
		if !ok {
			return s, nil
		}
		return s.Apply(HexEntered{Text: hex})

	case Resized:
		s.Layout = e.Layout
	}
	return s, nil
}

func (s State) withRGB(rgb RGB) State {
	s.Color = ColorFromRGB(rgb)
	s.HexText = s.Color.Hex()
	return s
}

func (s State) withHSL(hsl HSL) State {
	s.Color = ColorFromHSL(hsl)
	s.HexText = s.Color.Hex()
	return s
}

func (s State) withSurface(x, y float64) State {
	hsl := s.Color.HSL
	hsl.S, hsl.L = SurfaceAt(s.Layout.Surface, x, y)
	return s.withHSL(hsl)
}
