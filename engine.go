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
	"time"

	"github.com/binarydiff/bsdiff-go/suffixsort"
)

// Engine holds the state needed across one Encode call: registered
// listeners and nothing else. It is stateless between calls, so a single
// Engine value may be reused, or the zero value used directly via Encode.
type Engine struct {
	listeners []Listener
}

// NewEngine creates an Engine with no listeners attached.
func NewEngine() *Engine {
	return &Engine{}
}

// AddListener registers a progress listener.
func (this *Engine) AddListener(l Listener) {
	this.listeners = append(this.listeners, l)
}

// Encode builds a BSDIFF40 delta: a control-triple stream, a diff byte
// stream and an extra byte stream, from which NEW can be reconstructed
// given OLD and the triples. The three returned slices are uncompressed;
// framing them behind a Header and compressing each with a Codec is the
// job of package io.
//
// Encode is synchronous and single-threaded: one call owns old, new and
// the growing outputs for its entire lifetime. Concurrent calls on
// disjoint inputs are independent and safe.
func Encode(old, new []byte) (ctrl, diff, extra []byte, err error) {
	return NewEngine().Encode(old, new)
}

// Encode is the method form of the package-level Encode, additionally
// notifying any listeners registered on this Engine.
func (this *Engine) Encode(old, new []byte) (ctrl, diff, extra []byte, err error) {
	n := int64(len(old))
	m := int64(len(new))

	if n > maxEncodableLen || m > maxEncodableLen {
		return nil, nil, nil, NewCodecError("input exceeds the 63-bit offset width", ErrInputTooLarge)
	}

	i := suffixsort.Build(old)

	db := make([]byte, 0, m+1)
	eb := make([]byte, 0, m+1)
	ctrlBuf := make([]byte, 0, 24*8)

	var (
		scan, pos, length int64
		lastScan, lastPos int64
		lastOffset        int64
		oldScore, scsc    int64
		nTriples          int
	)

	notifyListeners(this.listeners, NewScanEvent(EvtScanStart, 0, m, 0, time.Time{}))

	for scan < m {
		oldScore = 0
		scsc = scan + length
		scan += length

		for scan < m {
			pos, length = suffixsort.Search(i, old, new[scan:], 0, n)

			for ; scsc < scan+length; scsc++ {
				if scsc+lastOffset < n && old[scsc+lastOffset] == new[scsc] {
					oldScore++
				}
			}

			if (length == oldScore && length != 0) || length > oldScore+8 {
				break
			}

			if scan+lastOffset < n && old[scan+lastOffset] == new[scan] {
				oldScore--
			}

			scan++
		}

		if length != oldScore || scan == m {
			lenf := forwardExtend(old, new, lastScan, lastPos, scan, n)
			lenb := int64(0)

			if scan < m {
				lenb = backwardExtend(old, new, lastScan, scan, pos)
			}

			if lastScan+lenf > scan-lenb {
				lenf, lenb = resolveOverlap(old, new, lastScan, lastPos, scan, pos, lenf, lenb)
			}

			for k := int64(0); k < lenf; k++ {
				db = append(db, new[lastScan+k]-old[lastPos+k])
			}

			extraLen := (scan - lenb) - (lastScan + lenf)

			for k := int64(0); k < extraLen; k++ {
				eb = append(eb, new[lastScan+lenf+k])
			}

			seek := (pos - lenb) - (lastPos + lenf)

			if scan == m {
				// the last triple has no following match to seek towards
				seek = 0
			}

			var triple [24]byte
			putOffset(lenf, triple[0:8])
			putOffset(extraLen, triple[8:16])
			putOffset(seek, triple[16:24])
			ctrlBuf = append(ctrlBuf, triple[:]...)
			nTriples++

			notifyListeners(this.listeners, NewScanEvent(EvtControlEmitted, scan, m, nTriples, time.Time{}))

			lastScan = scan - lenb
			lastPos = pos - lenb
			lastOffset = pos - scan
		}
	}

	notifyListeners(this.listeners, NewScanEvent(EvtScanEnd, m, m, nTriples, time.Time{}))

	return ctrlBuf, db, eb, nil
}

// forwardExtend walks forward from (lastScan, lastPos), picking the split
// point lenf that maximizes 2*matches - length. Ties keep the earlier
// position, per the strict '>' comparison below.
func forwardExtend(old, new []byte, lastScan, lastPos, scan, n int64) int64 {
	s, bestS, lenf := int64(0), int64(0), int64(0)

	for k := int64(0); lastScan+k < scan && lastPos+k < n; k++ {
		if old[lastPos+k] == new[lastScan+k] {
			s++
		}

		if s*2-(k+1) > bestS*2-lenf {
			bestS = s
			lenf = k + 1
		}
	}

	return lenf
}

// backwardExtend walks backward from (scan, pos), picking the split point
// lenb that maximizes 2*matches - length.
func backwardExtend(old, new []byte, lastScan, scan, pos int64) int64 {
	s, bestS, lenb := int64(0), int64(0), int64(0)

	for k := int64(1); scan >= lastScan+k && pos >= k; k++ {
		if old[pos-k] == new[scan-k] {
			s++
		}

		if s*2-k > bestS*2-lenb {
			bestS = s
			lenb = k
		}
	}

	return lenb
}

// resolveOverlap handles the case where the forward and backward regions
// overlap: sweep the overlap looking for the split point lens that
// maximizes forward matches minus backward matches, then shrink lenf/lenb
// to meet there.
func resolveOverlap(old, new []byte, lastScan, lastPos, scan, pos, lenf, lenb int64) (int64, int64) {
	overlap := (lastScan + lenf) - (scan - lenb)
	s, bestS, lens := int64(0), int64(0), int64(0)

	for k := int64(0); k < overlap; k++ {
		if new[lastScan+lenf-overlap+k] == old[lastPos+lenf-overlap+k] {
			s++
		}

		if new[scan-lenb+k] == old[pos-lenb+k] {
			s--
		}

		if s > bestS {
			bestS = s
			lens = k + 1
		}
	}

	return lenf + lens - overlap, lenb - lens
}
