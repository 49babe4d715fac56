// Package clipboard provides clipboard operations via platform commands,
// native clipboard libraries, and terminal escape sequences.
package clipboard

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/fwojciec/huepick"
	"github.com/muesli/termenv"
)

// Backend names accepted by New.
const (
	BackendAuto   = "auto"
	BackendPBCopy = "pbcopy"
	BackendSystem = "system"
	BackendOSC52  = "osc52"
)

// Backends lists the accepted backend names.
var Backends = []string{BackendAuto, BackendPBCopy, BackendSystem, BackendOSC52}

// Compile-time interface verification.
var (
	_ huepick.Clipboard = (*PBCopy)(nil)
	_ huepick.Clipboard = (*System)(nil)
	_ huepick.Clipboard = (*OSC52)(nil)
)

// New returns the clipboard registered under name. "auto" (or "") uses the
// native system clipboard when one is available and falls back to OSC52.
func New(name string) (huepick.Clipboard, error) {
	switch name {
	case "", BackendAuto:
		if SystemAvailable() {
			return NewSystem(), nil
		}
		return NewOSC52(os.Stdout), nil
	case BackendPBCopy:
		return NewPBCopy(), nil
	case BackendSystem:
		return NewSystem(), nil
	case BackendOSC52:
		return NewOSC52(os.Stdout), nil
	default:
		return nil, fmt.Errorf("unknown clipboard %q (want one of %s)", name, strings.Join(Backends, ", "))
	}
}

// PBCopy implements Clipboard using macOS pbcopy command.
type PBCopy struct{}

// NewPBCopy returns a new PBCopy clipboard.
func NewPBCopy() *PBCopy {
	return &PBCopy{}
}

// Copy writes content to the system clipboard using pbcopy.
func (p *PBCopy) Copy(content string) error {
	cmd := exec.Command("pbcopy")
	cmd.Stdin = strings.NewReader(content)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("pbcopy: %w", err)
	}
	return nil
}

// System implements Clipboard with the platform clipboard
// (xclip, xsel, wl-copy, or the Windows and macOS APIs).
type System struct{}

// NewSystem returns a new System clipboard.
func NewSystem() *System {
	return &System{}
}

// SystemAvailable reports whether a native clipboard tool was found.
func SystemAvailable() bool {
	return !clipboard.Unsupported
}

// Copy writes content to the system clipboard.
func (s *System) Copy(content string) error {
	if err := clipboard.WriteAll(content); err != nil {
		return fmt.Errorf("system clipboard: %w", err)
	}
	return nil
}

// OSC52 implements Clipboard by asking the terminal to set the clipboard
// through an OSC 52 escape sequence. It works over SSH but gives no
// confirmation that the terminal honored the request.
type OSC52 struct {
	out *termenv.Output
}

// NewOSC52 returns an OSC52 clipboard writing escape sequences to w.
func NewOSC52(w io.Writer) *OSC52 {
	return &OSC52{out: termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))}
}

// Copy emits the escape sequence carrying content.
func (o *OSC52) Copy(content string) error {
	o.out.Copy(content)
	return nil
}
