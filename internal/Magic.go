/*
Copyright 2011-2024 Frederic Langlet
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

package internal

import (
	"encoding/binary"
)

// Magic values for the executable formats that binary patching typically
// targets. Archive, image and audio magics are irrelevant to a patch tool.
const (
	NO_MAGIC    = 0
	ELF_MAGIC   = 0x7F454C46
	MAC_MAGIC32 = 0xFEEDFACE
	MAC_CIGAM32 = 0xCEFAEDFE
	MAC_MAGIC64 = 0xFEEDFACF
	MAC_CIGAM64 = 0xCFFAEDFE
	WIN_MAGIC   = 0x4D5A
)

var _EXE_KEYS32 = [5]uint{
	ELF_MAGIC, MAC_MAGIC32, MAC_CIGAM32, MAC_MAGIC64, MAC_CIGAM64,
}

// GetMagicType checks the first bytes of the slice against the known
// executable magic values. Returns NO_MAGIC if none match.
func GetMagicType(src []byte) uint {
	if len(src) < 4 {
		return NO_MAGIC
	}

	key := uint(binary.BigEndian.Uint32(src))

	for _, k := range _EXE_KEYS32 {
		if key == k {
			return key
		}
	}

	if key>>16 == WIN_MAGIC {
		return WIN_MAGIC
	}

	return NO_MAGIC
}

// IsDataExecutable returns true if the provided magic parameter corresponds
// to a known executable data type (ELF, PE/COFF, Mach-O).
func IsDataExecutable(magic uint) bool {
	switch magic {
	case ELF_MAGIC, WIN_MAGIC, MAC_MAGIC32, MAC_CIGAM32, MAC_MAGIC64, MAC_CIGAM64:
		return true
	default:
		return false
	}
}
