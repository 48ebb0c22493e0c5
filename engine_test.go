/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package bsdiff

import (
	"bytes"
	"fmt"
	"math/rand"
	"testing"
	"time"
)

// applyForTest reconstructs NEW from OLD and the three Encode streams. It
// exists only to verify round-trip correctness in these tests; the package
// intentionally does not expose an apply path, so this mirrors bspatch's
// control loop just enough to check Encode's output, and is not meant as a
// reference implementation.
func applyForTest(t *testing.T, old, ctrl, diff, extra []byte) []byte {
	t.Helper()

	var out bytes.Buffer
	oldPos := int64(0)

	for off := 0; off+24 <= len(ctrl); off += 24 {
		lenf := getOffset(ctrl[off : off+8])
		extraLen := getOffset(ctrl[off+8 : off+16])
		seek := getOffset(ctrl[off+16 : off+24])

		if lenf < 0 || extraLen < 0 {
			t.Fatalf("negative control field at triple %v", off/24)
		}

		if oldPos+lenf > int64(len(old)) || int64(len(diff)) < lenf {
			t.Fatalf("diff slice too short at triple %v", off/24)
		}

		for k := int64(0); k < lenf; k++ {
			out.WriteByte(old[oldPos+k] + diff[k])
		}

		diff = diff[lenf:]

		if int64(len(extra)) < extraLen {
			t.Fatalf("extra slice too short at triple %v", off/24)
		}

		out.Write(extra[:extraLen])
		extra = extra[extraLen:]

		oldPos += lenf + seek
	}

	return out.Bytes()
}

func roundTrip(t *testing.T, old, new []byte) {
	t.Helper()

	ctrl, diff, extra, err := Encode(old, new)

	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	got := applyForTest(t, old, ctrl, diff, extra)

	if !bytes.Equal(got, new) {
		t.Fatalf("round trip mismatch: got %q, want %q", got, new)
	}
}

func TestEncodeEmptyEmpty(t *testing.T) {
	roundTrip(t, nil, nil)
}

func TestEncodeSimpleLiterals(t *testing.T) {
	roundTrip(t, []byte("abc"), []byte("abc"))
	roundTrip(t, []byte("abcxef"), []byte("abcxef"))
	roundTrip(t, []byte("abcdef"), []byte("abcxef"))
	roundTrip(t, []byte("hello"), []byte("world"))
}

func TestEncodeIdentity(t *testing.T) {
	old := []byte("the quick brown fox jumps over the lazy dog")
	ctrl, diff, extra, err := Encode(old, old)

	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	if len(ctrl) != 24 {
		t.Fatalf("expected a single control triple for an identity patch, got %v bytes", len(ctrl))
	}

	lenf := getOffset(ctrl[0:8])
	extraLen := getOffset(ctrl[8:16])
	seek := getOffset(ctrl[16:24])

	if lenf != int64(len(old)) {
		t.Errorf("expected lenf=%v, got %v", len(old), lenf)
	}

	if extraLen != 0 {
		t.Errorf("expected extraLen=0, got %v", extraLen)
	}

	if seek != 0 {
		t.Errorf("expected seek=0, got %v", seek)
	}

	for _, b := range diff {
		if b != 0 {
			t.Fatalf("expected an all-zero diff stream for an identity patch, got %v", diff)
		}
	}

	if len(extra) != 0 {
		t.Fatalf("expected an empty extra stream for an identity patch, got %v bytes", len(extra))
	}
}

func TestEncodeRepeatedLiterals(t *testing.T) {
	old := bytes.Repeat([]byte("a"), 1024)
	roundTrip(t, old, old)
}

func TestEncodeRandomWithZeroedRegion(t *testing.T) {
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	old := make([]byte, 1024)
	rnd.Read(old)

	new := make([]byte, len(old))
	copy(new, old)

	for i := 500; i < 520; i++ {
		new[i] = 0
	}

	roundTrip(t, old, new)
}

func TestEncodeDeterministic(t *testing.T) {
	old := []byte("the quick brown fox jumps over the lazy dog, repeatedly, over and over")
	new := []byte("the slow brown fox jumps over the sleepy dog, repeatedly, over and over again")

	ctrl1, diff1, extra1, err1 := Encode(old, new)

	if err1 != nil {
		t.Fatalf("Encode failed: %v", err1)
	}

	ctrl2, diff2, extra2, err2 := Encode(old, new)

	if err2 != nil {
		t.Fatalf("Encode failed: %v", err2)
	}

	if !bytes.Equal(ctrl1, ctrl2) || !bytes.Equal(diff1, diff2) || !bytes.Equal(extra1, extra2) {
		t.Fatal("two Encode calls on the same inputs produced different output")
	}
}

func TestEncodeRandomFuzz(t *testing.T) {
	verbose := testing.Verbose()
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

	for ii := 1; ii <= 20; ii++ {
		oldLen := rnd.Intn(300)
		old := make([]byte, oldLen)
		rnd.Read(old)

		new := make([]byte, oldLen)
		copy(new, old)

		// sprinkle in edits: random overwrites, plus (each with even odds)
		// an insertion and a deletion, to exercise both the diff and extra
		// streams.
		edits := rnd.Intn(10)

		for k := 0; k < edits; k++ {
			if len(new) == 0 {
				break
			}

			p := rnd.Intn(len(new))
			new[p] = byte(rnd.Intn(256))
		}

		if rnd.Intn(2) == 0 {
			ins := make([]byte, rnd.Intn(40))
			rnd.Read(ins)
			p := rnd.Intn(len(new) + 1)
			tail := append([]byte{}, new[p:]...)
			new = append(new[:p], append(ins, tail...)...)
		}

		if len(new) > 0 && rnd.Intn(2) == 0 {
			p := rnd.Intn(len(new))
			n := rnd.Intn(len(new) - p)
			new = append(new[:p], new[p+n:]...)
		}

		if verbose {
			fmt.Printf("Test %v: old=%v bytes, new=%v bytes\n", ii, len(old), len(new))
		}

		roundTrip(t, old, new)
	}
}

type recordingListener struct {
	events []*Event
}

func (this *recordingListener) ProcessEvent(evt *Event) {
	this.events = append(this.events, evt)
}

func TestEngineNotifiesListeners(t *testing.T) {
	l := &recordingListener{}
	e := NewEngine()
	e.AddListener(l)

	if _, _, _, err := e.Encode([]byte("hello world"), []byte("hello there world")); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	if len(l.events) < 2 {
		t.Fatalf("expected at least a scan-start and scan-end event, got %v", len(l.events))
	}

	if l.events[0].Type() != EvtScanStart {
		t.Errorf("expected first event to be EvtScanStart, got %v", l.events[0].Type())
	}

	if l.events[len(l.events)-1].Type() != EvtScanEnd {
		t.Errorf("expected last event to be EvtScanEnd, got %v", l.events[len(l.events)-1].Type())
	}
}

func TestEngineListenerPanicDoesNotAbortEncode(t *testing.T) {
	e := NewEngine()
	e.AddListener(panicListener{})

	if _, _, _, err := e.Encode([]byte("abc"), []byte("abcdef")); err != nil {
		t.Fatalf("Encode failed despite listener panic recovery: %v", err)
	}
}

type panicListener struct{}

func (panicListener) ProcessEvent(evt *Event) {
	panic("boom")
}
