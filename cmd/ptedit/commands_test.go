package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/piecetable/editor"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// execute runs ptedit with args, feeding stdin to the command.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	traceLevel, fragSize, emptyDoc, dictPath = "", 0, false, ""
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestApplyScriptFile(t *testing.T) {
	doc := writeTemp(t, "doc.txt", "Hello World")
	script := writeTemp(t, "edits.txt", "insert 5 \",\"\ninsert 12 \"!\"\n")
	out, err := execute(t, "", "apply", "--frag", "4", doc, script)
	if err != nil {
		t.Fatal(err)
	}
	if out != "Hello, World!" {
		t.Errorf("expected \"Hello, World!\", have %q", out)
	}
}

func TestApplyStdinToEmptyDocument(t *testing.T) {
	out, err := execute(t, "insert 0 \"abc\"\ncopy 0 3\npaste 3\n", "apply", "--empty")
	if err != nil {
		t.Fatal(err)
	}
	if out != "abcabc" {
		t.Errorf("expected \"abcabc\", have %q", out)
	}
}

func TestApplyReportsScriptLine(t *testing.T) {
	_, err := execute(t, "insert 0 \"abc\"\ndelete 2 9\n", "apply", "--empty")
	var serr *editor.ScriptError
	if !errors.As(err, &serr) || serr.Line != 2 {
		t.Errorf("expected script error at line 2, have %v", err)
	}
	if _, err = execute(t, "", "apply"); err == nil {
		t.Errorf("expected missing input file to be reported")
	}
}

func TestDotAndDump(t *testing.T) {
	edits := "insert 0 \"one two\"\ninsert 3 \" and\"\n"
	out, err := execute(t, edits, "dot", "--empty")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "strict digraph {") {
		t.Errorf("expected DOT output, have %q", out)
	}
	out, err = execute(t, edits, "dump", "--empty")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "3 pieces, 11 bytes") {
		t.Errorf("expected dump summary for 3 pieces, have %q", out)
	}
}

func TestSpell(t *testing.T) {
	dict := writeTemp(t, "words", "hello\nworld\n")
	doc := writeTemp(t, "doc.txt", "Hello wrld, hello World!")
	out, err := execute(t, "", "spell", "--dict", dict, doc)
	if err != nil {
		t.Fatal(err)
	}
	if out != "1 misspelled words\n" {
		t.Errorf("expected 1 misspelled word, have %q", out)
	}
}
