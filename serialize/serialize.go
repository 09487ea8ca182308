// Package serialize implements a compact on-disk encoding for a dfa.DFA,
// mixing run-length encoding of each state's 256 transitions with LEB128
// varints for state ids.
package serialize

import (
	"errors"
	"math"

	"github.com/ltregex/ltregex/dfa"
)

// ErrTruncated is returned by Decode when buf ends before a complete DFA
// could be read, or when a target state id is not below the decoded state
// count.
var ErrTruncated = errors.New("serialize: truncated buffer")

// ErrStateCountOverflow is returned by Decode when the encoded state count
// or a target state id exceeds math.MaxInt32. A LEB128
// varint has no inherent width limit, so a decoded value must be checked
// before it is narrowed into the state-count/id range Decode indexes with.
var ErrStateCountOverflow = errors.New("serialize: state count overflow")

func putLEB128(buf []byte, n int) []byte {
	for n>>7 != 0 {
		buf = append(buf, byte(n&0x7f)|0x80)
		n >>= 7
	}
	return append(buf, byte(n))
}

func getLEB128(buf []byte) (n, consumed int, ok bool) {
	shift := 0
	for {
		if consumed >= len(buf) {
			return 0, 0, false
		}
		b := buf[consumed]
		n |= int(b&0x7f) << shift
		consumed++
		shift += 7
		if b&0x80 == 0 {
			return n, consumed, true
		}
	}
}

// Encode serializes d using a mix of run-length encoding and LEB128
// varints: a leading LEB128 state count, then, per state, one flag byte
// (bit 1 accepting, bit 0 terminating) followed by runs of
// (run-length byte, LEB128 target state id) pairs covering all 256 input
// bytes.
func Encode(d *dfa.DFA) []byte {
	var buf []byte
	buf = putLEB128(buf, len(d.States))

	for _, st := range d.States {
		var flags byte
		if st.Accepting {
			flags |= 0x2
		}
		if st.Terminating {
			flags |= 0x1
		}
		buf = append(buf, flags)

		for chr := 0; chr < 256; {
			start := chr
			for chr < 255 && st.Transitions[chr] == st.Transitions[chr+1] {
				chr++
			}
			runLen := chr - start
			buf = append(buf, byte(runLen))
			buf = putLEB128(buf, int(st.Transitions[chr]))
			chr++
		}
	}

	return buf
}

// Decode deserializes a DFA from buf, which must have been produced by
// Encode (or a format-compatible binary). It returns the decoded DFA and
// the number of bytes consumed from the front of buf. A state count or
// target id too large to trust is reported as ErrStateCountOverflow rather
// than narrowed silently.
func Decode(buf []byte) (*dfa.DFA, int, error) {
	size, pos, ok := getLEB128(buf)
	if !ok {
		return nil, 0, ErrTruncated
	}
	if size < 0 || size > math.MaxInt32 {
		return nil, 0, ErrStateCountOverflow
	}

	states := make([]dfa.State, size)

	for id := 0; id < size; id++ {
		if pos >= len(buf) {
			return nil, 0, ErrTruncated
		}
		flags := buf[pos]
		pos++
		states[id].Accepting = flags&0x2 != 0
		states[id].Terminating = flags&0x1 != 0

		for chr := 0; chr < 256; {
			if pos >= len(buf) {
				return nil, 0, ErrTruncated
			}
			runLen := int(buf[pos])
			pos++

			target, n, ok := getLEB128(buf[pos:])
			if !ok {
				return nil, 0, ErrTruncated
			}
			if target < 0 || target > math.MaxInt32 {
				return nil, 0, ErrStateCountOverflow
			}
			if target >= size {
				return nil, 0, ErrTruncated
			}
			pos += n

			for i := 0; i <= runLen; i++ {
				states[id].Transitions[chr] = dfa.StateID(target)
				chr++
			}
		}
	}

	return &dfa.DFA{States: states, Initial: 0}, pos, nil
}
