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

package codec

import (
	"bytes"
	"io"

	"github.com/dsnet/compress/bzip2"
)

// bzip2Codec is the default codec: the original BSDIFF40 reference tool
// compresses all three streams with libbzip2, and dsnet/compress is the
// only Go bzip2 implementation that can write the format (the standard
// library's compress/bzip2 is decode-only).
type bzip2Codec struct {
	level int
}

func newBZip2Codec(level int) (*bzip2Codec, error) {
	if level < bzip2.BestSpeed {
		level = bzip2.BestSpeed
	}

	if level > bzip2.BestCompression {
		level = bzip2.BestCompression
	}

	return &bzip2Codec{level: level}, nil
}

func (this *bzip2Codec) Compress(src []byte) ([]byte, error) {
	var buf bytes.Buffer

	zw, err := bzip2.NewWriter(&buf, &bzip2.WriterConfig{Level: this.level})

	if err != nil {
		return nil, err
	}

	if _, err := zw.Write(src); err != nil {
		return nil, err
	}

	if err := zw.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (this *bzip2Codec) Decompress(src []byte, outLen int) ([]byte, error) {
	zr, err := bzip2.NewReader(bytes.NewReader(src), nil)

	if err != nil {
		return nil, err
	}

	out := make([]byte, outLen)
	n, err := io.ReadFull(zr, out)

	if err != nil && err != io.ErrUnexpectedEOF {
		return nil, err
	}

	return out[:n], nil
}
