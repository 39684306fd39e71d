package editor

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/piecetable"
)

// ErrSyntax is wrapped by errors for malformed edit script lines.
var ErrSyntax = errors.New("editor: syntax error")

// ScriptError reports the line of an edit script which failed.
type ScriptError struct {
	Line int
	Err  error
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Err.Error())
}

func (e *ScriptError) Unwrap() error {
	return e.Err
}

// Replay reads an edit script from r and applies every command to ed.
// Replay stops at the first line which cannot be parsed or applied and
// returns a *ScriptError for it. Commands applied before the failing line
// are not rolled back.
//
// Commands are
//
//	insert POS "text"   (text is a Go-quoted string)
//	delete I J
//	cut I J
//	copy I J
//	paste POS
//
// Blank lines and lines starting with '#' are ignored.
func Replay(ed *Editor, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineno, cmdcnt := 0, 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := apply(ed, line); err != nil {
			return &ScriptError{Line: lineno, Err: err}
		}
		cmdcnt++
	}
	if err := scanner.Err(); err != nil {
		return &ScriptError{Line: lineno, Err: err}
	}
	piecetable.T().Infof("replayed %d edit commands", cmdcnt)
	return nil
}

func apply(ed *Editor, line string) error {
	cmd, args, _ := strings.Cut(line, " ")
	args = strings.TrimSpace(args)
	piecetable.T().P("cmd", cmd).Debugf("%s", args)
	switch cmd {
	case "insert":
		p, text, ok := strings.Cut(args, " ")
		if !ok {
			return fmt.Errorf("%w: insert needs position and text", ErrSyntax)
		}
		pos, err := parsePos(p)
		if err != nil {
			return err
		}
		s, err := strconv.Unquote(strings.TrimSpace(text))
		if err != nil {
			return fmt.Errorf("%w: cannot unquote text %s", ErrSyntax, text)
		}
		return ed.Insert(s, pos)
	case "paste":
		pos, err := parsePos(args)
		if err != nil {
			return err
		}
		return ed.Paste(pos)
	case "delete", "cut", "copy":
		i, j, err := parseRange(args)
		if err != nil {
			return err
		}
		switch cmd {
		case "delete":
			return ed.Delete(i, j)
		case "cut":
			return ed.Cut(i, j)
		}
		return ed.Copy(i, j)
	}
	return fmt.Errorf("%w: unknown command %q", ErrSyntax, cmd)
}

func parsePos(s string) (uint64, error) {
	pos, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: illegal position %q", ErrSyntax, s)
	}
	return pos, nil
}

func parseRange(s string) (uint64, uint64, error) {
	f := strings.Fields(s)
	if len(f) != 2 {
		return 0, 0, fmt.Errorf("%w: expected range I J, have %q", ErrSyntax, s)
	}
	i, err := parsePos(f[0])
	if err != nil {
		return 0, 0, err
	}
	j, err := parsePos(f[1])
	if err != nil {
		return 0, 0, err
	}
	return i, j, nil
}
