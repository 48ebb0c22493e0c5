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

// Package io assembles and recovers the BSDIFF40 patch container around the
// three uncompressed streams an Engine.Encode call produces. It is the sink
// side of the encoder: the core never imports this package, and this
// package never imports suffixsort.
package io

import (
	"fmt"
	"os"
	"path/filepath"

	atomicfile "github.com/natefinch/atomic"

	bsdiff "github.com/binarydiff/bsdiff-go"
	"github.com/binarydiff/bsdiff-go/codec"
	"github.com/binarydiff/bsdiff-go/internal"
)

// WritePatch compresses ctrl, diff and extra with c, fills in the header's
// length fields and writes the framed BSDIFF40 patch atomically to path: no
// reader ever observes a partially written file, even if the process is
// killed mid-write.
func WritePatch(path string, newLen int64, ctrl, diff, extra []byte, c codec.Codec) error {
	if internal.IsReservedName(filepath.Base(path)) {
		return fmt.Errorf("refusing to write to reserved name %q", path)
	}

	cCtrl, err := c.Compress(ctrl)

	if err != nil {
		return fmt.Errorf("compressing ctrl stream: %w", err)
	}

	cDiff, err := c.Compress(diff)

	if err != nil {
		return fmt.Errorf("compressing diff stream: %w", err)
	}

	cExtra, err := c.Compress(extra)

	if err != nil {
		return fmt.Errorf("compressing extra stream: %w", err)
	}

	h := bsdiff.Header{
		CtrlLen: int64(len(cCtrl)),
		DiffLen: int64(len(cDiff)),
		NewLen:  newLen,
	}

	buf := internal.NewBufferStream(make([]byte, 0, bsdiff.HeaderLen+len(cCtrl)+len(cDiff)+len(cExtra)))
	buf.Write(h.Marshal())
	buf.Write(cCtrl)
	buf.Write(cDiff)
	buf.Write(cExtra)

	return atomicfile.WriteFile(path, buf)
}

// Patch holds a patch file's header plus the three still-compressed stream
// slices, exactly as recovered from disk. It performs no decompression and
// no OLD-side reconstruction; applying a patch is a separate tool's job,
// so this is framing-only.
type Patch struct {
	Header bsdiff.Header
	Ctrl   []byte
	Diff   []byte
	Extra  []byte
}

// ReadPatch reads and frames a BSDIFF40 patch file from path. It validates
// the magic and header length but does not decompress or apply anything.
func ReadPatch(path string) (*Patch, error) {
	raw, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	h, err := bsdiff.UnmarshalHeader(raw)

	if err != nil {
		return nil, err
	}

	start := int64(bsdiff.HeaderLen)
	ctrlEnd := start + h.CtrlLen
	diffEnd := ctrlEnd + h.DiffLen

	if ctrlEnd < start || diffEnd < ctrlEnd || diffEnd > int64(len(raw)) {
		return nil, bsdiff.NewCodecError("patch stream lengths do not fit the file", bsdiff.ErrInvalidHeader)
	}

	return &Patch{
		Header: h,
		Ctrl:   raw[start:ctrlEnd],
		Diff:   raw[ctrlEnd:diffEnd],
		Extra:  raw[diffEnd:],
	}, nil
}
