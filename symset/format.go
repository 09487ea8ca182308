package symset

import "fmt"

// metachars are the pattern-grammar characters that must be backslash-escaped
// when they appear literally inside a formatted symset.
const metachars = `\.-^$*+?{}[]<>()|&~`

func isMetachar(b byte) bool {
	if b == 0 {
		return false // strchr(METACHARS, 0) would spuriously match the terminator
	}
	for i := 0; i < len(metachars); i++ {
		if metachars[i] == b {
			return true
		}
	}
	return false
}

func isPrintable(b byte) bool {
	return b >= 0x20 && b < 0x7f
}

// appendByte writes the textual form of byte b (escaped if needed) to buf.
func appendByte(buf []byte, b byte) []byte {
	switch {
	case !isPrintable(b) && !isMetachar(b):
		return append(buf, []byte(fmt.Sprintf(`\x%02x`, b))...)
	case isMetachar(b):
		return append(append(buf, '\\'), b)
	default:
		return append(buf, b)
	}
}

// Format renders s as a canonical bracket expression, parsable by the
// pattern grammar's symset production. Format then re-parsing always
// yields s back; the converse is not guaranteed, since many pattern strings
// denote the same set (e.g. "ab" and "ba" inside a class).
func Format(s Set) string {
	var buf, nbuf []byte
	nbuf = append(nbuf, '^', '[')
	buf = append(buf, '[')
	nsym, nnsym := 0, 0

	chr := 0
	for chr < 256 {
		member := s.Get(byte(chr))
		if member {
			nsym++
		} else {
			nnsym++
		}
		if member {
			buf = appendByte(buf, byte(chr))
		} else {
			nbuf = appendByte(nbuf, byte(chr))
		}

		start := chr
		for chr < 255 && s.Get(byte(chr)) == s.Get(byte(chr+1)) {
			chr++
		}
		if chr-start >= 2 {
			if member {
				buf = append(buf, '-')
				nsym--
			} else {
				nbuf = append(nbuf, '-')
				nnsym--
			}
		}
		if chr-start >= 1 {
			member = s.Get(byte(chr))
			if member {
				nsym++
				buf = appendByte(buf, byte(chr))
			} else {
				nnsym++
				nbuf = appendByte(nbuf, byte(chr))
			}
		}
		chr++
	}

	buf = append(buf, ']')
	nbuf = append(nbuf, ']')

	switch {
	case nnsym == 0:
		return "<>"
	case nsym == 1:
		return string(buf[1 : len(buf)-1])
	case nnsym == 1:
		// nbuf is "^[" + content + "]"; drop the redundant leading '^' and
		// the now-unneeded brackets, leaving a bare "^x" or "^x-y".
		return "^" + string(nbuf[2:len(nbuf)-1])
	}

	if len(buf) < len(nbuf) {
		return string(buf)
	}
	return string(nbuf)
}
