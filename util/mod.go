package util

import (
	"fmt"
	"strconv"
	"unsafe"
)

func ArrayToString[T uint8 | uint16 | uint32 | uint64](arr []T) string {
	ret := ""

	for _, v := range arr {
		bitWidth := int(unsafe.Sizeof(v) * 8)
		ret += fmt.Sprintf("%0[1]*[2]x", bitWidth/4, v)
	}

	return ret
}

// StringToWords is the inverse of ArrayToString for uint64 elements: it
// splits a hex string into 16-nibble words.
func StringToWords(s string) ([]uint64, error) {
	const nibbles = 16

	if len(s) == 0 || len(s)%nibbles != 0 {
		return nil, fmt.Errorf("hex string length %d is not a multiple of %d", len(s), nibbles)
	}

	words := make([]uint64, 0, len(s)/nibbles)

	for i := 0; i < len(s); i += nibbles {
		v, err := strconv.ParseUint(s[i:i+nibbles], 16, 64)
		if err != nil {
			return nil, fmt.Errorf("bad hex word at offset %d: %w", i, err)
		}

		words = append(words, v)
	}

	return words, nil
}
