package step

import (
	"strconv"
	"strings"
	"unicode/utf16"

	"golang.org/x/text/encoding/charmap"
)

// decodeLatin1 decodes the raw file bytes. Exchange structures carry
// ISO 8859-1 payloads per ISO 10303-21; anything beyond that alphabet
// arrives through the string control directives handled in decodeString.
func decodeLatin1(raw []byte) (string, error) {
	return charmap.ISO8859_1.NewDecoder().String(string(raw))
}

// decodeString expands the string control directives of ISO 10303-21:
//
//	\\         backslash
//	\S\c       ISO 8859 upper-half character (code of c + 0x80)
//	\X\hh      single eight-bit code
//	\X2\...\X0\  UTF-16BE hex run
//	\X4\...\X0\  UTF-32BE hex run
//
// Malformed directives are kept verbatim rather than dropped; garbage in a
// name should stay visible, not vanish.
func decodeString(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var sb strings.Builder
	for i := 0; i < len(s); {
		if s[i] != '\\' {
			sb.WriteByte(s[i])
			i++
			continue
		}
		rest := s[i+1:]
		switch {
		case strings.HasPrefix(rest, `\`):
			sb.WriteByte('\\')
			i += 2
		case strings.HasPrefix(rest, `S\`) && len(rest) >= 3:
			sb.WriteRune(rune(rest[2]) + 0x80)
			i += 4
		case strings.HasPrefix(rest, `X2\`):
			hex, consumed, ok := hexRun(rest[3:])
			if !ok {
				sb.WriteByte('\\')
				i++
				continue
			}
			sb.WriteString(decodeUTF16Hex(hex))
			i += 1 + 3 + consumed
		case strings.HasPrefix(rest, `X4\`):
			hex, consumed, ok := hexRun(rest[3:])
			if !ok {
				sb.WriteByte('\\')
				i++
				continue
			}
			sb.WriteString(decodeUTF32Hex(hex))
			i += 1 + 3 + consumed
		case strings.HasPrefix(rest, `X\`) && len(rest) >= 4:
			if code, err := strconv.ParseUint(rest[2:4], 16, 8); err == nil {
				sb.WriteRune(rune(code))
				i += 5
			} else {
				sb.WriteByte('\\')
				i++
			}
		default:
			sb.WriteByte('\\')
			i++
		}
	}
	return sb.String()
}

// hexRun extracts the hex digits of a \X2\ or \X4\ run up to the closing
// \X0\ terminator. Returns the digits, the number of bytes consumed
// (including the terminator), and whether the run was well-formed.
func hexRun(s string) (string, int, bool) {
	end := strings.Index(s, `\X0\`)
	if end < 0 {
		return "", 0, false
	}
	return s[:end], end + 4, true
}

func decodeUTF16Hex(hex string) string {
	if len(hex)%4 != 0 {
		return hex
	}
	units := make([]uint16, 0, len(hex)/4)
	for i := 0; i+4 <= len(hex); i += 4 {
		u, err := strconv.ParseUint(hex[i:i+4], 16, 16)
		if err != nil {
			return hex
		}
		units = append(units, uint16(u))
	}
	return string(utf16.Decode(units))
}

func decodeUTF32Hex(hex string) string {
	if len(hex)%8 != 0 {
		return hex
	}
	var sb strings.Builder
	for i := 0; i+8 <= len(hex); i += 8 {
		u, err := strconv.ParseUint(hex[i:i+8], 16, 32)
		if err != nil {
			return hex
		}
		sb.WriteRune(rune(u))
	}
	return sb.String()
}
