package huepick

import (
	"fmt"
	"strconv"
	"strings"
)

// Notation identifies the textual color format being parsed.
type Notation string

// Supported notations.
const (
	NotationHex Notation = "hex"
	NotationRGB Notation = "rgb"
	NotationHSL Notation = "hsl"
)

// ParseError describes text that is not a valid color in the given notation.
type ParseError struct {
	Input    string   // The text as entered
	Notation Notation // Notation the input was parsed as
	Reason   string   // Human-readable cause
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s color %q: %s", e.Notation, e.Input, e.Reason)
}

// ParseHex parses "#rrggbb" or "rrggbb" (either case) into RGB.
// Any other input returns a *ParseError.
func ParseHex(s string) (RGB, error) {
	digits := strings.TrimPrefix(s, "#")
	if len(digits) != 6 {
		return RGB{}, &ParseError{
			Input:    s,
			Notation: NotationHex,
			Reason:   fmt.Sprintf("want 6 hex digits, got %d", len(digits)),
		}
	}

	var ch [3]uint8
	for i := range ch {
		pair := digits[i*2 : i*2+2]
		if !isHexDigit(pair[0]) || !isHexDigit(pair[1]) {
			return RGB{}, &ParseError{
				Input:    s,
				Notation: NotationHex,
				Reason:   fmt.Sprintf("%q is not a hex byte", pair),
			}
		}
		v, _ := strconv.ParseUint(pair, 16, 8)
		ch[i] = uint8(v)
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// IsHex reports whether s is a valid hex color.
func IsHex(s string) bool {
	_, err := ParseHex(s)
	return err == nil
}

// ClampChannel clamps v to the 8-bit channel range [0,255].
func ClampChannel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// ParseChannel coerces channel text typed by a user into [0,255].
// Leading digits are honoured ("12px" is 12); text without a leading
// number coerces to 0. The result is clamped, never rejected.
func ParseChannel(text string) uint8 {
	text = strings.TrimSpace(text)
	end := 0
	if end < len(text) && (text[end] == '-' || text[end] == '+') {
		end++
	}
	start := end
	for end < len(text) && text[end] >= '0' && text[end] <= '9' {
		end++
	}
	if end == start {
		return 0
	}
	v, err := strconv.Atoi(text[:end])
	if err != nil {
		// Only overflow reaches here; the sign decides the clamp side.
		if text[0] == '-' {
			return 0
		}
		return 255
	}
	return uint8(ClampChannel(v))
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
