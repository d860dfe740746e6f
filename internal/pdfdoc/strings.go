package pdfdoc

import (
	"encoding/hex"
	"strings"
	"unicode/utf16"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// ByteString extracts the raw bytes of a PDF string object as a Go
// string. Named-destination keys compare bytewise, so no text decoding
// is applied.
func ByteString(o types.Object) (string, bool) {
	switch s := o.(type) {
	case types.StringLiteral:
		return unescapeLiteral(string(s)), true
	case types.HexLiteral:
		return string(decodeHex(string(s))), true
	default:
		return "", false
	}
}

// DecodeTextString decodes a PDF text string (outline titles and the
// like): UTF-16BE when the BOM is present, raw bytes otherwise.
func DecodeTextString(o types.Object) string {
	raw, ok := ByteString(o)
	if !ok {
		return ""
	}
	b := []byte(raw)
	if len(b) >= 2 && b[0] == 0xFE && b[1] == 0xFF {
		return decodeUTF16BE(b[2:])
	}
	return string(b)
}

func decodeUTF16BE(b []byte) string {
	u := make([]uint16, 0, len(b)/2)
	for i := 0; i+1 < len(b); i += 2 {
		u = append(u, uint16(b[i])<<8|uint16(b[i+1]))
	}
	return string(utf16.Decode(u))
}

// unescapeLiteral processes backslash escapes inside a literal string.
func unescapeLiteral(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var out strings.Builder
	out.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			out.WriteByte(c)
			continue
		}
		i++
		if i >= len(s) {
			break
		}
		switch s[i] {
		case 'n':
			out.WriteByte('\n')
		case 'r':
			out.WriteByte('\r')
		case 't':
			out.WriteByte('\t')
		case 'b':
			out.WriteByte('\b')
		case 'f':
			out.WriteByte('\f')
		case '\n':
			// Line continuation: emit nothing.
		case '0', '1', '2', '3', '4', '5', '6', '7':
			v := int(s[i] - '0')
			for n := 0; n < 2 && i+1 < len(s) && s[i+1] >= '0' && s[i+1] <= '7'; n++ {
				i++
				v = v*8 + int(s[i]-'0')
			}
			out.WriteByte(byte(v))
		default:
			out.WriteByte(s[i])
		}
	}
	return out.String()
}

func decodeHex(s string) []byte {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\n', '\r', '\t':
			return -1
		}
		return r
	}, s)
	if len(clean)%2 == 1 {
		clean += "0"
	}
	b, err := hex.DecodeString(clean)
	if err != nil {
		return nil
	}
	return b
}
