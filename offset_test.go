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
	"math/rand"
	"testing"
	"time"
)

func TestOffsetRoundTrip(t *testing.T) {
	cases := []int64{
		0, 1, -1, 127, -127, 255, -255,
		1 << 31, -(1 << 31),
		maxEncodableLen, -maxEncodableLen,
		(1 << 63) - 1, -((1 << 63) - 1),
	}

	for _, x := range cases {
		buf := make([]byte, 8)
		putOffset(x, buf)
		got := getOffset(buf)

		if got != x {
			t.Errorf("round trip failed for %v: got %v", x, got)
		}
	}
}

func TestOffsetRoundTripRandom(t *testing.T) {
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

	for ii := 0; ii < 2000; ii++ {
		x := int64(rnd.Uint64() >> 1)

		if rnd.Intn(2) == 0 {
			x = -x
		}

		buf := make([]byte, 8)
		PutInt64(x, buf)
		got := GetInt64(buf)

		if got != x {
			t.Fatalf("round trip failed for %v: got %v", x, got)
		}
	}
}

func TestOffsetNegativeZero(t *testing.T) {
	// -0 is a legal (if never produced by putOffset) sign-magnitude
	// encoding: all magnitude bits zero, sign bit set.
	buf := []byte{0, 0, 0, 0, 0, 0, 0, 0x80}

	if got := getOffset(buf); got != 0 {
		t.Errorf("expected -0 to decode as 0, got %v", got)
	}
}

func TestOffsetSignBit(t *testing.T) {
	buf := make([]byte, 8)
	putOffset(-42, buf)

	if buf[7]&0x80 == 0 {
		t.Errorf("expected sign bit set for negative value, buf=%v", buf)
	}

	// the magnitude is little-endian, so 42 sits in the first byte
	if buf[7]&0x80 != 0 {
		if buf[0] != 42 {
			t.Errorf("expected magnitude byte 42, got %v", buf[0])
		}
	}
}
