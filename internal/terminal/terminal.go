// Package terminal implements menu.Host on top of a text terminal.
//
// A parameter handle is the path of a JSON file holding the host-native ramp
// value. Prompts read one line each; end of input cancels. Prompt text and
// option lists are only printed when the input is an interactive terminal.
package terminal

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/go-ports/rampage/internal/fsutil"
	"github.com/go-ports/rampage/internal/menu"
	"github.com/go-ports/rampage/internal/ramp"
)

// ErrNoRamp is returned by ReadRamp when the parameter file does not exist.
var ErrNoRamp = errors.New("parameter file does not exist")

// Host is a menu.Host reading answers from in and writing prompts to out and
// error dialogs to errOut.
type Host struct {
	in          *bufio.Reader
	out         io.Writer
	errOut      io.Writer
	interactive bool
}

var _ menu.Host = (*Host)(nil)

// New returns a Host. Prompts are shown when in is a terminal.
func New(in io.Reader, out, errOut io.Writer) *Host {
	return &Host{
		in:          bufio.NewReader(in),
		out:         out,
		errOut:      errOut,
		interactive: isTerminal(in),
	}
}

// SetInteractive forces prompt display on or off.
func (h *Host) SetInteractive(v bool) { h.interactive = v }

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// ---------------------------------------------------------------------------
// Parameter access
// ---------------------------------------------------------------------------

// ReadRamp loads the ramp stored in the parameter file.
func (*Host) ReadRamp(p menu.Parm) (ramp.Ramp, error) {
	return readRampFile(p.Handle)
}

func readRampFile(path string) (ramp.Ramp, error) {
	data, found, err := fsutil.ReadFileOptional(path)
	if err != nil {
		return ramp.Ramp{}, err
	}
	if !found {
		return ramp.Ramp{}, fmt.Errorf("%w: %s", ErrNoRamp, path)
	}
	r, err := ramp.FromJSON(data)
	if err != nil {
		return ramp.Ramp{}, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// WriteRamp replaces the parameter file with r.
func (*Host) WriteRamp(p menu.Parm, r ramp.Ramp) error {
	data, err := json.MarshalIndent(r, "", "    ")
	if err != nil {
		return err
	}
	return fsutil.WriteFileAtomic(p.Handle, append(data, '\n'), 0o644)
}

// ParmFor builds the parameter for a ramp file. An empty kind is detected from
// the file contents.
func ParmFor(path string, kind ramp.Kind) (menu.Parm, error) {
	p := menu.Parm{Handle: path, Kind: kind}
	if kind != "" {
		if !kind.Valid() {
			return p, fmt.Errorf("%w: %q", ramp.ErrInvalidKind, kind)
		}
		return p, nil
	}
	r, err := readRampFile(path)
	if err != nil {
		return p, fmt.Errorf("cannot detect ramp kind (use --kind): %w", err)
	}
	p.Kind, err = ramp.DetectKind(r)
	if err != nil {
		return p, fmt.Errorf("cannot detect ramp kind (use --kind): %w", err)
	}
	return p, nil
}

// ---------------------------------------------------------------------------
// Prompts
// ---------------------------------------------------------------------------

// PromptText reads one line. End of input cancels.
func (h *Host) PromptText(message string) (string, bool, error) {
	if h.interactive {
		fmt.Fprintf(h.out, "%s ", message)
	}
	return h.readLine()
}

// PromptSelect reads one line naming an option, either by exact name or by its
// 1-based number. An empty line or end of input cancels; anything else
// re-prompts.
func (h *Host) PromptSelect(message string, options []string) (string, bool, error) {
	for {
		if h.interactive {
			fmt.Fprintln(h.out, message)
			for i, o := range options {
				fmt.Fprintf(h.out, "  %d) %s\n", i+1, o)
			}
			fmt.Fprint(h.out, "> ")
		}
		line, ok, err := h.readLine()
		if err != nil || !ok || line == "" {
			return "", false, err
		}
		if choice, found := pick(line, options); found {
			return choice, true, nil
		}
		fmt.Fprintf(h.errOut, "No preset matches %q.\n", line)
	}
}

// ShowError prints message to the error stream.
func (h *Host) ShowError(message string) {
	fmt.Fprintf(h.errOut, "Error: %s\n", message)
}

// readLine returns the next line without its terminator. ok is false at end
// of input with nothing read.
func (h *Host) readLine() (string, bool, error) {
	line, err := h.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", false, err
	}
	if errors.Is(err, io.EOF) && line == "" {
		return "", false, nil
	}
	return strings.TrimRight(line, "\r\n"), true, nil
}

// pick resolves line to an option. Exact names win over numbers so that a
// preset named "2" stays selectable.
func pick(line string, options []string) (string, bool) {
	for _, o := range options {
		if o == line {
			return o, true
		}
	}
	if n, err := strconv.Atoi(strings.TrimSpace(line)); err == nil && n >= 1 && n <= len(options) {
		return options[n-1], true
	}
	return "", false
}
