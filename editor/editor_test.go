package editor

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/npillmayer/piecetable"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestClipboard(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "piecetable")
	defer teardown()
	//
	ed := New(piecetable.New([]byte("Hello World")), nil)
	if err := ed.Copy(0, 5); err != nil {
		t.Fatal(err)
	}
	if err := ed.Paste(11); err != nil {
		t.Fatal(err)
	}
	if ed.GetText() != "Hello WorldHello" {
		t.Errorf("expected copy+paste to append \"Hello\", have %q", ed.GetText())
	}
	if err := ed.Cut(5, 11); err != nil {
		t.Fatal(err)
	}
	if ed.GetText() != "HelloHello" || ed.Clipboard() != " World" {
		t.Errorf("expected cut to move \" World\" to clipboard, have %q and %q", ed.GetText(), ed.Clipboard())
	}
	if err := ed.Paste(5); err != nil {
		t.Fatal(err)
	}
	if ed.GetText() != "Hello WorldHello" {
		t.Errorf("expected paste to restore text, have %q", ed.GetText())
	}
	if err := ed.Document().Check(); err != nil {
		t.Error(err)
	}
}

func TestPasteEmptyClipboard(t *testing.T) {
	ed := New(nil, nil)
	if err := ed.Paste(0); err != nil {
		t.Fatal(err)
	}
	if ed.GetText() != "" {
		t.Errorf("expected empty clipboard to paste nothing")
	}
}

func TestEditorRangeErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "piecetable")
	defer teardown()
	//
	ed := New(piecetable.New([]byte("abc")), nil)
	if err := ed.Cut(2, 1); !errors.Is(err, piecetable.ErrIllegalArguments) {
		t.Errorf("expected inverted range to be illegal, error is %v", err)
	}
	if err := ed.Copy(1, 4); !errors.Is(err, piecetable.ErrIndexOutOfBounds) {
		t.Errorf("expected range beyond document to fail, error is %v", err)
	}
	if err := ed.Insert("x", 4); !errors.Is(err, piecetable.ErrIndexOutOfBounds) {
		t.Errorf("expected insert beyond document to fail, error is %v", err)
	}
	if err := ed.Delete(0, 5); !errors.Is(err, piecetable.ErrIndexOutOfBounds) {
		t.Errorf("expected delete beyond document to fail, error is %v", err)
	}
	if ed.GetText() != "abc" || ed.Clipboard() != "" {
		t.Errorf("expected failed operations to leave editor unchanged")
	}
}

func TestMisspellings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "piecetable")
	defer teardown()
	//
	dict := NewDictionary("the", "quick", "brown", "fox", "jumps", "over", "lazy", "dog")
	ed := New(piecetable.New([]byte("The quick brwn fox jumps over the lazzy dog.")), dict)
	if n := ed.Misspellings(); n != 2 {
		t.Errorf("expected 2 misspelled words, have %d", n)
	}
	if err := ed.Insert("o", 12); err != nil {
		t.Fatal(err)
	}
	if n := ed.Misspellings(); n != 1 {
		t.Errorf("expected 1 misspelled word after correction, have %d", n)
	}
	if n := New(nil, dict).Misspellings(); n != 0 {
		t.Errorf("expected empty document to have no misspellings, have %d", n)
	}
	if n := New(piecetable.New([]byte("one, two; three")), nil).Misspellings(); n != 3 {
		t.Errorf("expected every word misspelled without dictionary, have %d", n)
	}
}

func TestMisspellingsSeparateIdeographs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "piecetable")
	defer teardown()
	//
	text := "漢字かな"
	if n := len(splitWords(text)); n != 1 {
		t.Fatalf("expected letters to form a single field, have %d", n)
	}
	// every ideograph is a break opportunity, so each one counts as a word
	dict := NewDictionary("漢", "字")
	ed := New(piecetable.New([]byte("漢字")), dict)
	if n := ed.Misspellings(); n != 0 {
		t.Errorf("expected ideographs to be looked up one by one, have %d misspellings", n)
	}
	ed = New(piecetable.New([]byte("漢字")), nil)
	if n := ed.Misspellings(); n != 2 {
		t.Errorf("expected 2 words without dictionary, have %d", n)
	}
}

func TestSplitWords(t *testing.T) {
	words := splitWords("'don't' stop-me (now)!\n")
	if strings.Join(words, "|") != "don't|stop|me|now" {
		t.Errorf("unexpected words %v", words)
	}
}

func TestLoadDictionary(t *testing.T) {
	dict, err := LoadDictionary(strings.NewReader("apple\n\n  pear \nBerlin\n"))
	if err != nil {
		t.Fatal(err)
	}
	if dict.Len() != 3 {
		t.Errorf("expected 3 words, have %d", dict.Len())
	}
	if !dict.Contains("Apple") || !dict.Contains("pear") || !dict.Contains("Berlin") {
		t.Errorf("expected dictionary to contain words")
	}
	if dict.Contains("berlin") {
		t.Errorf("expected proper name not to match in lower case")
	}
	var nodict *Dictionary
	if nodict.Contains("apple") || nodict.Len() != 0 {
		t.Errorf("expected nil dictionary to be empty")
	}
}

func TestConcurrentEdits(t *testing.T) {
	ed := New(nil, nil)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := 0; k < 100; k++ {
				if err := ed.Insert("ab", 0); err != nil {
					t.Error(err)
					return
				}
			}
		}()
	}
	wg.Wait()
	if len(ed.GetText()) != 8*100*2 {
		t.Errorf("expected %d bytes, have %d", 8*100*2, len(ed.GetText()))
	}
	if err := ed.Document().Check(); err != nil {
		t.Error(err)
	}
}
