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

import "github.com/woozymasta/lzo"

// lzoCodec trades BZip2's ratio for speed: LZO1X-1 at level <=1, LZO1X-999
// above that. Useful for the --codec=lzo fast path on large firmware images
// where BZip2's block sort dominates encode time.
type lzoCodec struct {
	level int
}

func newLZOCodec(level int) *lzoCodec {
	if level < 0 {
		level = 0
	}

	if level > 9 {
		level = 9
	}

	return &lzoCodec{level: level}
}

func (this *lzoCodec) Compress(src []byte) ([]byte, error) {
	return lzo.Compress(src, &lzo.CompressOptions{Level: this.level})
}

func (this *lzoCodec) Decompress(src []byte, outLen int) ([]byte, error) {
	return lzo.Decompress(src, lzo.DefaultDecompressOptions(outLen))
}
