package textfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "text.txt")
	if err := os.WriteFile(name, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return name
}

func TestLoadSmallFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "piecetable")
	defer teardown()
	//
	name := writeFile(t, "Hello World")
	pt, err := Load(context.Background(), name, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if pt.String() != "Hello World" || pt.PieceCount() != 1 {
		t.Errorf("expected 1 piece \"Hello World\", have %d pieces %q", pt.PieceCount(), pt.String())
	}
	if err := pt.InsertString(5, ","); err != nil {
		t.Fatal(err)
	}
	if pt.String() != "Hello, World" {
		t.Errorf("expected loaded document to be editable, is %q", pt.String())
	}
}

func TestLoadFragments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "piecetable")
	defer teardown()
	//
	content := strings.Repeat("Lorem ipsum dolor sit amet. ", 40)
	name := writeFile(t, content)
	var frags []Fragment
	pt, err := LoadNotify(context.Background(), name, 500, 64, func(f Fragment) {
		frags = append(frags, f)
	})
	if err != nil {
		t.Fatal(err)
	}
	if pt.String() != content {
		t.Fatalf("loaded content differs from file content")
	}
	if len(frags) != (len(content)+63)/64 {
		t.Fatalf("expected %d fragment notifications, have %d", (len(content)+63)/64, len(frags))
	}
	if frags[0].Pos != 448 {
		t.Errorf("expected loading to start with fragment at 448, started at %d", frags[0].Pos)
	}
	sort.Slice(frags, func(i, j int) bool { return frags[i].Pos < frags[j].Pos })
	var pos int64
	for _, f := range frags {
		if f.Err != nil || f.Pos != pos {
			t.Fatalf("expected gapless fragments, have fragment at %d, expected %d", f.Pos, pos)
		}
		pos += f.Len
	}
	if pos != int64(len(content)) {
		t.Errorf("fragments cover %d bytes, expected %d", pos, len(content))
	}
}

func TestLoadTrailingFragmentFirst(t *testing.T) {
	content := strings.Repeat("x", 100)
	name := writeFile(t, content)
	var first *Fragment
	_, err := LoadNotify(context.Background(), name, -1, 30, func(f Fragment) {
		if first == nil {
			first = &f
		}
	})
	if err != nil {
		t.Fatal(err)
	}
	if first == nil || first.Pos != 90 || first.Len != 10 {
		t.Errorf("expected trailing fragment [90…100) to be loaded first, is %v", first)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	name := writeFile(t, "")
	pt, err := Load(context.Background(), name, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if pt.Size() != 0 || pt.PieceCount() != 0 {
		t.Errorf("expected empty document")
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(context.Background(), dir, 0, 0); !errors.Is(err, ErrNotRegular) {
		t.Errorf("expected directory to be rejected, error is %v", err)
	}
	if _, err := Load(context.Background(), filepath.Join(dir, "missing.txt"), 0, 0); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected missing file to be reported, error is %v", err)
	}
	name := writeFile(t, strings.Repeat("abc", 100))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Load(ctx, name, 0, 16); !errors.Is(err, context.Canceled) {
		t.Errorf("expected cancelled load to fail with context.Canceled, error is %v", err)
	}
}

func TestCancelledLoadStopsLoader(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "piecetable")
	defer teardown()
	//
	name := writeFile(t, strings.Repeat("abcdefgh", 512))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	_, err := LoadNotify(ctx, name, 0, 16, func(f Fragment) {
		cancel()
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		t.Errorf("expected cancelled load to succeed or fail with context.Canceled, error is %v", err)
	}
	if n := activeLoaders.Load(); n != 0 {
		t.Errorf("expected loader to have stopped before returning, %d still running", n)
	}
}
