package huepick

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseColor parses a color written as hex ("#ff0000" or "ff0000"),
// rgb ("rgb(255, 0, 0)") or hsl ("hsl(0, 100%, 50%)").
//
// Function names are case-insensitive, whitespace is ignored and percent
// signs in hsl are optional. Unlike interactive channel entry, components
// outside their range are rejected with a *ParseError.
func ParseColor(s string) (Color, error) {
	text := strings.ToLower(strings.TrimSpace(s))

	switch {
	case strings.HasPrefix(text, "rgb("):
		args, err := functionArgs(s, text, NotationRGB)
		if err != nil {
			return Color{}, err
		}
		var ch [3]int
		for i, arg := range args {
			v, err := strconv.Atoi(arg)
			if err != nil || v < 0 || v > 255 {
				return Color{}, &ParseError{
					Input:    s,
					Notation: NotationRGB,
					Reason:   fmt.Sprintf("component %d: %q is not an integer in 0-255", i+1, arg),
				}
			}
			ch[i] = v
		}
		return ColorFromRGB(RGB{R: uint8(ch[0]), G: uint8(ch[1]), B: uint8(ch[2])}), nil

	case strings.HasPrefix(text, "hsl("):
		args, err := functionArgs(s, text, NotationHSL)
		if err != nil {
			return Color{}, err
		}
		limits := [3]int{359, 100, 100}
		var vals [3]int
		for i, arg := range args {
			if i > 0 {
				arg = strings.TrimSuffix(arg, "%")
			}
			v, err := strconv.Atoi(arg)
			if err != nil || v < 0 || v > limits[i] {
				return Color{}, &ParseError{
					Input:    s,
					Notation: NotationHSL,
					Reason:   fmt.Sprintf("component %d: %q is not an integer in 0-%d", i+1, args[i], limits[i]),
				}
			}
			vals[i] = v
		}
		return ColorFromHSL(HSL{H: vals[0], S: vals[1], L: vals[2]}), nil
	}

	rgb, err := ParseHex(strings.TrimSpace(s))
	if err != nil {
		return Color{}, err
	}
	return ColorFromRGB(rgb), nil
}

// functionArgs splits "name(a, b, c)" into its three trimmed arguments.
func functionArgs(input, lowered string, n Notation) ([]string, error) {
	open := strings.IndexByte(lowered, '(')
	if !strings.HasSuffix(lowered, ")") {
		return nil, &ParseError{Input: input, Notation: n, Reason: "missing closing parenthesis"}
	}
	parts := strings.Split(lowered[open+1:len(lowered)-1], ",")
	if len(parts) != 3 {
		return nil, &ParseError{
			Input:    input,
			Notation: n,
			Reason:   fmt.Sprintf("want 3 components, got %d", len(parts)),
		}
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts, nil
}
