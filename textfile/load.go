package textfile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/guiguan/caster"
	"github.com/npillmayer/piecetable"
)

/*
BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/

// Some constants for fragement size defaults
const (
	twoKb     = 2048
	sixKb     = 6144
	tenKb     = 10240
	hundredKb = 1024000
	oneMb     = 1048576
)

// ErrNotRegular is returned when trying to load anything but a regular file.
var ErrNotRegular = errors.New("textfile: not a regular file")

// Fragment describes a range of a file which has been loaded. Fragments are
// broadcast to subscribers while a file is loading. If loading the range
// failed, Err is set.
type Fragment struct {
	Pos int64 // start position of the fragment within the file
	Len int64 // length of the fragment in bytes
	Err error
}

// activeLoaders counts loader goroutines still running.
var activeLoaders atomic.Int32

// textFile represents an OS file which will be loaded into a piece table.
type textFile struct {
	path string         // file name
	info os.FileInfo    // result from Stat(path)
	file *os.File       // file handle
	cast *caster.Caster // broadcaster for async file loading
	buf  []byte         // initial buffer for the piece table
}

// Load reads a file, which should be a text file, and loads it as the initial
// buffer of a new piece table.
// Clients may indicate an initial cursor position and a recommended fragment
// length. Both may be 0, letting Load use sensible defaults. An initialPos of
// -1 means reading the trailing fragment first.
//
// Fragments are read by a background goroutine. Load returns after all
// fragments have been loaded, or with an error if loading failed or ctx has
// been cancelled.
//
func Load(ctx context.Context, name string, initialPos int64, fragSize int64) (*piecetable.PieceTable, error) {
	return LoadNotify(ctx, name, initialPos, fragSize, nil)
}

// LoadNotify is like Load, but calls notify for every fragment loaded, in
// loading order. notify is called from a separate goroutine; all calls
// complete before LoadNotify returns.
func LoadNotify(ctx context.Context, name string, initialPos int64, fragSize int64,
	notify func(Fragment)) (*piecetable.PieceTable, error) {
	//
	tf, err := openFile(name)
	if err != nil {
		return nil, err
	}
	defer tf.file.Close()
	size := tf.info.Size()
	if size == 0 {
		return piecetable.New(nil), nil
	}
	if initialPos > size || initialPos < 0 {
		initialPos = size - 1
	}
	fragSize = fragmentSize(size, fragSize)
	count := (size + fragSize - 1) / fragSize
	tf.buf = make([]byte, size)
	tf.cast = caster.New(ctx) // we will broadcast messages when fragments are loaded
	loaded, ok := tf.cast.Sub(ctx, uint(count))
	if !ok {
		return nil, fmt.Errorf("textfile: cannot subscribe to loader: %w", ctx.Err())
	}
	var notified chan struct{}
	if notify != nil {
		ch, ok := tf.cast.Sub(ctx, uint(count))
		if !ok {
			return nil, fmt.Errorf("textfile: cannot subscribe to loader: %w", ctx.Err())
		}
		notified = make(chan struct{})
		go func() {
			defer close(notified)
			for m := range ch {
				notify(m.(Fragment))
			}
		}()
	}
	loaderDone := make(chan struct{})
	go func() {
		defer close(loaderDone)
		tf.loadAllFragments(ctx, initialPos/fragSize*fragSize, fragSize)
	}()
	err = tf.await(ctx, loaded, count)
	<-loaderDone // file must not be closed while the loader reads from it
	if notified != nil {
		<-notified
	}
	if err != nil {
		return nil, err
	}
	piecetable.T().P("file", name).Infof("loaded %d bytes in %d fragments", size, count)
	return piecetable.New(tf.buf), nil
}

// openFile opens an OS file and collect some useful information on it,
// checking for error conditions.
func openFile(name string) (*textFile, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegular, name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	tf := &textFile{
		path: name,
		info: fi,
		file: file,
	}
	return tf, nil
}

func fragmentSize(size int64, fragSize int64) int64 {
	if fragSize > 0 && fragSize <= tenKb {
		return min(fragSize, size)
	}
	if size < 64 {
		return size
	} else if size < 1024 {
		return 64
	} else if size < tenKb {
		return 256
	} else if size < hundredKb {
		return 512
	} else if size < oneMb {
		return twoKb
	}
	return sixKb
}

// await collects count fragment messages from the loader.
func (tf *textFile) await(ctx context.Context, loaded <-chan interface{}, count int64) error {
	for count > 0 {
		select {
		case m, ok := <-loaded:
			if !ok {
				if err := ctx.Err(); err != nil {
					return err
				}
				return fmt.Errorf("textfile: loading %s stopped early", tf.path)
			}
			if frag := m.(Fragment); frag.Err != nil {
				return frag.Err
			}
			count--
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// --- File loading goroutine ------------------------------------------------

// loadAllFragments reads the file fragment by fragment, starting at start and
// wrapping around at the end of the file. Every fragment is published to the
// caster's subscribers.
func (tf *textFile) loadAllFragments(ctx context.Context, start int64, fragSize int64) {
	activeLoaders.Add(1)
	defer activeLoaders.Add(-1)
	defer tf.cast.Close()
	size := int64(len(tf.buf))
	pos := start
	for {
		if ctx.Err() != nil {
			return
		}
		l := min(fragSize, size-pos)
		frag := Fragment{Pos: pos, Len: l}
		cnt, err := tf.file.ReadAt(tf.buf[pos:pos+l], pos)
		if err != nil && err != io.EOF {
			frag.Err = fmt.Errorf("error loading text fragment: %w", err)
		} else if int64(cnt) < l {
			frag.Err = fmt.Errorf("not all bytes loaded for text fragment at %d", pos)
		}
		piecetable.T().Debugf("loaded fragment [%d…%d)", pos, pos+l)
		tf.cast.Pub(frag)
		if frag.Err != nil {
			return
		}
		pos += l
		if pos >= size {
			pos = 0
		}
		if pos == start {
			return // when iterated over all fragments, stop
		}
	}
}
