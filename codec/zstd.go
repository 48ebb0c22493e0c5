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

import "github.com/klauspost/compress/zstd"

// zstdCodec is the modern high-ratio/high-speed alternative: a single
// shared encoder and decoder reused across all three streams of one patch,
// since neither type is safe to recreate per-call cheaply.
type zstdCodec struct {
	enc *zstd.Encoder
	dec *zstd.Decoder
}

// level maps the generic 1-9 dial used by the other two codecs onto zstd's
// named speed/ratio presets.
func zstdLevel(level int) zstd.EncoderLevel {
	switch {
	case level <= 1:
		return zstd.SpeedFastest
	case level <= 4:
		return zstd.SpeedDefault
	case level <= 7:
		return zstd.SpeedBetterCompression
	default:
		return zstd.SpeedBestCompression
	}
}

func newZStdCodec(level int) (*zstdCodec, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstdLevel(level)))

	if err != nil {
		return nil, err
	}

	dec, err := zstd.NewReader(nil)

	if err != nil {
		enc.Close()
		return nil, err
	}

	return &zstdCodec{enc: enc, dec: dec}, nil
}

func (this *zstdCodec) Compress(src []byte) ([]byte, error) {
	return this.enc.EncodeAll(src, make([]byte, 0, len(src))), nil
}

func (this *zstdCodec) Decompress(src []byte, outLen int) ([]byte, error) {
	return this.dec.DecodeAll(src, make([]byte, 0, outLen))
}
