package piecelist

import (
	"testing"

	"github.com/npillmayer/piecetable/piecetree"
)

func TestListEdits(t *testing.T) {
	l := New([]byte("Hello World"))
	if err := l.Insert(5, []byte(",")); err != nil {
		t.Fatal(err)
	}
	if err := l.Insert(6, []byte(" wide")); err != nil {
		t.Fatal(err)
	}
	if l.String() != "Hello, wide World" {
		t.Fatalf("unexpected document %q", l.String())
	}
	// inserting at the start of a piece always adds a piece
	if len(l.Pieces()) != 4 {
		t.Errorf("expected 4 pieces, have %v", l.Pieces())
	}
	if err := l.Delete(3, 8); err != nil {
		t.Fatal(err)
	}
	if l.String() != "Hel World" || l.Size() != 9 {
		t.Errorf("expected \"Hel World\", have %q", l.String())
	}
	want := []piecetree.Piece{
		{Kind: piecetree.Initial, Offset: 0, Length: 3},
		{Kind: piecetree.Initial, Offset: 5, Length: 6},
	}
	if len(l.Pieces()) != len(want) || l.Pieces()[0] != want[0] || l.Pieces()[1] != want[1] {
		t.Errorf("expected pieces %v, have %v", want, l.Pieces())
	}
}

func TestListBounds(t *testing.T) {
	l := New(nil)
	if err := l.Insert(1, []byte("x")); err != ErrIndexOutOfBounds {
		t.Errorf("expected insert beyond end to fail")
	}
	if err := l.Delete(0, 1); err != ErrIndexOutOfBounds {
		t.Errorf("expected delete on empty list to fail")
	}
	if err := l.Insert(0, nil); err != nil || l.Size() != 0 {
		t.Errorf("expected empty insert to be a no-op")
	}
}
