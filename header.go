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

import "bytes"

// Magic is the fixed 8-byte marker at the start of every patch file.
const Magic = "BSDIFF40"

// HeaderLen is the size in bytes of a serialized Header.
const HeaderLen = 32

// Header is the 32-byte BSDIFF40 patch header:
//
//	offset size content
//	  0    8   magic = "BSDIFF40"
//	  8    8   length of compressed CTRL stream
//	 16    8   length of compressed DIFF stream
//	 24    8   length of NEW in bytes
//
// All three integer fields are sign-magnitude little-endian int64s (see
// PutInt64/GetInt64). CtrlLen and DiffLen are filled in by the caller once
// the three streams have been compressed; the core only ever knows NewLen
// in advance.
type Header struct {
	CtrlLen int64
	DiffLen int64
	NewLen  int64
}

// Marshal serializes h into a new 32-byte slice.
func (h Header) Marshal() []byte {
	buf := make([]byte, HeaderLen)
	copy(buf[0:8], Magic)
	PutInt64(h.CtrlLen, buf[8:16])
	PutInt64(h.DiffLen, buf[16:24])
	PutInt64(h.NewLen, buf[24:32])
	return buf
}

// UnmarshalHeader parses a 32-byte header. It fails if the magic does not
// match or buf is too short.
func UnmarshalHeader(buf []byte) (Header, error) {
	if len(buf) < HeaderLen {
		return Header{}, NewCodecError("patch header truncated", ErrInvalidHeader)
	}

	if !bytes.Equal(buf[0:8], []byte(Magic)) {
		return Header{}, NewCodecError("bad magic, not a BSDIFF40 patch", ErrInvalidHeader)
	}

	return Header{
		CtrlLen: GetInt64(buf[8:16]),
		DiffLen: GetInt64(buf[16:24]),
		NewLen:  GetInt64(buf[24:32]),
	}, nil
}
