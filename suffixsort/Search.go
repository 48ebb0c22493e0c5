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

package suffixsort

// Search returns the position in old and the length of the longest common
// prefix between some suffix in i[st:en+1] and query, by bisection over
// the suffix array.
//
// This is deliberately NOT guaranteed to return the globally longest match:
// the bisection step only compares the first L bytes of each candidate
// suffix against query, where L is bounded by both remaining lengths. The
// delta driver's greedy heuristic depends on this exact behavior to produce
// byte-identical patches across implementations, so callers must not
// "improve" this into an exhaustive search.
func Search(i []int64, old, query []byte, st, en int64) (pos, length int64) {
	if en-st < 2 {
		x := matchLen(old[i[st]:], query)
		y := matchLen(old[i[en]:], query)

		if x > y {
			return i[st], x
		}

		return i[en], y
	}

	x := st + (en-st)/2
	l := min64(int64(len(old))-i[x], int64(len(query)))

	if compare(old[i[x]:i[x]+l], query[:l]) < 0 {
		return Search(i, old, query, x, en)
	}

	return Search(i, old, query, st, x)
}

// matchLen returns the length of the common prefix of a and b.
func matchLen(a, b []byte) int64 {
	n := int64(0)
	limit := min64(int64(len(a)), int64(len(b)))

	for n < limit && a[n] == b[n] {
		n++
	}

	return n
}

// compare is a lexicographic byte comparison returning <0, 0 or >0, the Go
// equivalent of memcmp over equal-length slices.
func compare(a, b []byte) int {
	for k := range a {
		if a[k] != b[k] {
			if a[k] < b[k] {
				return -1
			}

			return 1
		}
	}

	return 0
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}

	return b
}
