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

// Package suffixsort builds the suffix array that the delta engine searches
// against, using the Larsson-Sadakane doubling scheme (qsufsort): O(n log n)
// worst case, O(n) bucket initialization.
//
// The array I is a permutation of {0,...,n}: I[k] is the start offset in OLD
// of the k-th smallest suffix, with the empty suffix ranked lowest at
// I[0] = n. During construction, negative entries in I are run-length
// markers collapsing already-sorted runs; this is intrinsic to the
// algorithm, not an implementation detail to paper over.
package suffixsort

// Build constructs the suffix array of old. len(old) must fit in an int64
// minus 1 (the caller is expected to have already rejected oversized
// inputs). The returned slice has length len(old)+1.
func Build(old []byte) []int64 {
	n := int64(len(old))
	i := make([]int64, n+1)
	v := make([]int64, n+1)

	bucketSort(old, i, v, n)

	for h := int64(1); i[0] != -(n + 1); h += h {
		length := int64(0)
		pos := int64(0)

		for pos < n+1 {
			if i[pos] < 0 {
				length -= i[pos]
				pos -= i[pos]
				continue
			}

			if length != 0 {
				i[pos-length] = -length
			}

			length = v[i[pos]] + 1 - pos
			split(i, v, pos, length, h)
			pos += length
			length = 0
		}

		if length != 0 {
			i[pos-length] = -length
		}
	}

	for pos := int64(0); pos < n+1; pos++ {
		i[v[pos]] = pos
	}

	return i
}

// bucketSort seeds the doubling stage: a single-byte bucket sort of old
// into i, with v left holding each element's bucket-group rank and the
// run-length markers for singleton buckets already in place.
func bucketSort(old []byte, i, v []int64, n int64) {
	var buckets [256]int64

	for _, b := range old {
		buckets[b]++
	}

	for k := 1; k < 256; k++ {
		buckets[k] += buckets[k-1]
	}

	for k := 255; k > 0; k-- {
		buckets[k] = buckets[k-1]
	}

	buckets[0] = 0

	for pos, b := range old {
		buckets[b]++
		i[buckets[b]] = int64(pos)
	}

	i[0] = n

	for pos, b := range old {
		v[pos] = buckets[b]
	}

	v[n] = 0

	for k := 1; k < 256; k++ {
		if buckets[k] == buckets[k-1]+1 {
			i[buckets[k]] = -1
		}
	}

	i[0] = -1
}

// split is a three-way partition of the keys V[I[k]+h] over
// i[start:start+length], recursing on the outer (less-than / greater-than)
// partitions and collapsing the equal-keyed middle partition into one rank
// group.
func split(i, v []int64, start, length, h int64) {
	if length < 16 {
		insertionSplit(i, v, start, length, h)
		return
	}

	pivot := v[i[start+length/2]+h]
	jj := int64(0)
	kk := int64(0)

	for k := start; k < start+length; k++ {
		if v[i[k]+h] < pivot {
			jj++
		}
		if v[i[k]+h] == pivot {
			kk++
		}
	}

	jj += start
	kk += jj

	p, j, k := start, int64(0), int64(0)

	for p < jj {
		switch key := v[i[p]+h]; {
		case key < pivot:
			p++
		case key == pivot:
			i[p], i[jj+j] = i[jj+j], i[p]
			j++
		default:
			i[p], i[kk+k] = i[kk+k], i[p]
			k++
		}
	}

	for jj+j < kk {
		if v[i[jj+j]+h] == pivot {
			j++
		} else {
			i[jj+j], i[kk+k] = i[kk+k], i[jj+j]
			k++
		}
	}

	if jj > start {
		split(i, v, start, jj-start, h)
	}

	for p := int64(0); p < kk-jj; p++ {
		v[i[jj+p]] = kk - 1
	}

	if jj == kk-1 {
		i[jj] = -1
	}

	if start+length > kk {
		split(i, v, kk, start+length-kk, h)
	}
}

// insertionSplit handles the length < 16 case of split(): for each key
// value encountered from the minimum up, it gathers all equal-keyed
// suffixes contiguously, updates their V entries to the last slot of the
// gathered group, and marks resulting singletons with -1.
func insertionSplit(i, v []int64, start, length, h int64) {
	for k := start; k < start+length; {
		j := int64(1)
		x := v[i[k]+h]

		for p := int64(1); k+p < start+length; p++ {
			if v[i[k+p]+h] < x {
				x = v[i[k+p]+h]
				j = 0
			}

			if v[i[k+p]+h] == x {
				i[k+j], i[k+p] = i[k+p], i[k+j]
				j++
			}
		}

		for p := int64(0); p < j; p++ {
			v[i[k+p]] = k + j - 1
		}

		if j == 1 {
			i[k] = -1
		}

		k += j
	}
}
