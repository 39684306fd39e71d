package editor

import (
	"bufio"
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/npillmayer/piecetable"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"
)

// TextEditor is the interface for manipulating and analyzing text documents.
type TextEditor interface {
	// Cut removes [i,j) from the document and places it in the clipboard.
	// Previous clipboard contents is overwritten.
	Cut(i, j uint64) error
	// Copy places [i,j) of the document in the clipboard.
	// Previous clipboard contents is overwritten.
	Copy(i, j uint64) error
	// Paste inserts the contents of the clipboard at position i.
	// Nothing is inserted if the clipboard is empty.
	Paste(i uint64) error
	// GetText returns the document as a string.
	GetText() string
	// Misspellings returns the number of words of the document not
	// contained in the editor's dictionary.
	Misspellings() int
	// Insert inserts s at position i.
	Insert(s string, i uint64) error
	// Delete removes [i,j) from the document.
	Delete(i, j uint64) error
}

// Editor is a TextEditor editing a piece table. It is safe for concurrent
// use; operations are serialized.
type Editor struct {
	mx        sync.Mutex
	pt        *piecetable.PieceTable
	dict      *Dictionary
	clipboard string
}

var _ TextEditor = &Editor{}

// New creates an editor for a piece table. dict is used for spell checking
// and may be nil, in which case every word counts as misspelled.
// A nil table is replaced by an empty document.
func New(pt *piecetable.PieceTable, dict *Dictionary) *Editor {
	if pt == nil {
		pt = piecetable.New(nil)
	}
	return &Editor{pt: pt, dict: dict}
}

// Document returns the piece table the editor operates on. Clients must not
// modify it while the editor is in use.
func (ed *Editor) Document() *piecetable.PieceTable {
	return ed.pt
}

// Clipboard returns the current contents of the clipboard.
func (ed *Editor) Clipboard() string {
	ed.mx.Lock()
	defer ed.mx.Unlock()
	return ed.clipboard
}

// Cut removes [i,j) from the document and places it in the clipboard.
func (ed *Editor) Cut(i, j uint64) error {
	ed.mx.Lock()
	defer ed.mx.Unlock()
	s, err := ed.report(i, j)
	if err != nil {
		return fmt.Errorf("cut: %w", err)
	}
	if err = ed.pt.Delete(i, j-i); err != nil {
		return fmt.Errorf("cut: %w", err)
	}
	ed.clipboard = s
	return nil
}

// Copy places [i,j) in the clipboard.
func (ed *Editor) Copy(i, j uint64) error {
	ed.mx.Lock()
	defer ed.mx.Unlock()
	s, err := ed.report(i, j)
	if err != nil {
		return fmt.Errorf("copy: %w", err)
	}
	ed.clipboard = s
	return nil
}

// Paste inserts the clipboard at position i.
func (ed *Editor) Paste(i uint64) error {
	ed.mx.Lock()
	defer ed.mx.Unlock()
	if ed.clipboard == "" {
		return nil
	}
	if err := ed.pt.InsertString(i, ed.clipboard); err != nil {
		return fmt.Errorf("paste: %w", err)
	}
	return nil
}

// GetText returns the document as a string.
func (ed *Editor) GetText() string {
	ed.mx.Lock()
	defer ed.mx.Unlock()
	return ed.pt.String()
}

// Insert inserts s at position i.
func (ed *Editor) Insert(s string, i uint64) error {
	ed.mx.Lock()
	defer ed.mx.Unlock()
	if err := ed.pt.InsertString(i, s); err != nil {
		return fmt.Errorf("insert: %w", err)
	}
	return nil
}

// Delete removes [i,j) from the document.
func (ed *Editor) Delete(i, j uint64) error {
	ed.mx.Lock()
	defer ed.mx.Unlock()
	if j < i {
		return fmt.Errorf("delete [%d,%d): %w", i, j, piecetable.ErrIllegalArguments)
	}
	if err := ed.pt.Delete(i, j-i); err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	return nil
}

// Misspellings counts the words of the document which are not contained in
// the dictionary. Words are found by splitting the text at line break
// opportunities (UAX#14) and stripping everything but letters and inner
// apostrophes. Splitting at non-letters alone would find words in scripts
// separating them by spaces or punctuation only; the line breaking
// algorithm also separates ideographs, which are words of their own in
// Chinese or Japanese text.
func (ed *Editor) Misspellings() int {
	ed.mx.Lock()
	defer ed.mx.Unlock()
	linewrap := uax14.NewLineWrap()
	segmenter := segment.NewSegmenter(linewrap)
	segmenter.Init(bufio.NewReader(ed.pt.Reader()))
	cnt, words := 0, 0
	for segmenter.Next() {
		for _, word := range splitWords(string(segmenter.Bytes())) {
			words++
			if !ed.dict.Contains(word) {
				piecetable.T().P("word", word).Debugf("misspelled")
				cnt++
			}
		}
	}
	piecetable.T().Infof("%d of %d words misspelled", cnt, words)
	return cnt
}

func (ed *Editor) report(i, j uint64) (string, error) {
	if j < i {
		return "", fmt.Errorf("range [%d,%d): %w", i, j, piecetable.ErrIllegalArguments)
	}
	return ed.pt.Report(i, j-i)
}

func splitWords(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})
	words := fields[:0]
	for _, f := range fields {
		if f = strings.Trim(f, "'"); f != "" {
			words = append(words, f)
		}
	}
	return words
}
