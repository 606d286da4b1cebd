package morton

import (
	"strconv"
	"strings"
)

// codeToBitString renders a code as bit-pairs "yx", most significant first,
// skipping leading zero pairs: 0b1101 -> "11_01".
func codeToBitString(raw uint32) string {
	var buf strings.Builder

	for i := 30; i >= 0; i -= 2 {
		pair := (raw >> uint(i)) & 0b11

		if buf.Len() == 0 && pair == 0 && i != 0 {
			continue
		}

		if buf.Len() != 0 {
			buf.WriteByte('_')
		}

		buf.WriteByte('0' + byte(pair>>1))
		buf.WriteByte('0' + byte(pair&1))
	}

	return buf.String()
}

// bitStringToCode parses the format produced by codeToBitString.
func bitStringToCode(bitStr string) (uint32, error) {
	bitStr = strings.Replace(bitStr, "_", "", -1)

	raw, err := strconv.ParseUint(bitStr, 2, 32)
	if err != nil {
		return 0, err
	}

	return uint32(raw), nil
}
