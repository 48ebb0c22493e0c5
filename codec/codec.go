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

// Package codec frames the three BSDIFF40 streams (CTRL, DIFF, EXTRA) with
// block compression. The core engine package never imports codec:
// compression is an external collaborator of the delta algorithm, not part
// of it.
package codec

import (
	"fmt"
	"strings"
)

const (
	BZIP2_TYPE = uint32(0) // default, historically what BSDIFF40 patches use
	LZO_TYPE   = uint32(1) // fast, lower ratio
	ZSTD_TYPE  = uint32(2) // modern, high ratio at higher levels
)

// Codec compresses and decompresses a single byte stream. Implementations
// wrap a specific third-party library; none of them buffer more than one
// stream's worth of data at a time.
type Codec interface {
	Compress(src []byte) ([]byte, error)
	Decompress(src []byte, outLen int) ([]byte, error)
}

// NewCodec creates a Codec for the given type and compression level. Level
// is library-specific: BZip2 clamps to [1,9], ZStd maps onto the library's
// named speed/ratio presets, and LZO clamps to [0,9] (0 and 1 both select
// the fast LZO1X-1 path).
func NewCodec(codecType uint32, level int) (Codec, error) {
	switch codecType {

	case BZIP2_TYPE:
		return newBZip2Codec(level)

	case LZO_TYPE:
		return newLZOCodec(level), nil

	case ZSTD_TYPE:
		return newZStdCodec(level)

	default:
		return nil, fmt.Errorf("unsupported codec type: '%d'", codecType)
	}
}

// GetName returns the name of the codec given its type.
func GetName(codecType uint32) (string, error) {
	switch codecType {

	case BZIP2_TYPE:
		return "BZIP2", nil

	case LZO_TYPE:
		return "LZO", nil

	case ZSTD_TYPE:
		return "ZSTD", nil

	default:
		return "", fmt.Errorf("unsupported codec type: '%d'", codecType)
	}
}

// GetType returns the type of the codec given its name.
func GetType(name string) (uint32, error) {
	switch strings.ToUpper(name) {

	case "BZIP2":
		return BZIP2_TYPE, nil

	case "LZO":
		return LZO_TYPE, nil

	case "ZSTD":
		return ZSTD_TYPE, nil

	default:
		return 0, fmt.Errorf("unsupported codec name: '%v'", name)
	}
}
