package cbc

import (
	"github.com/pion/transport/v3/utils/xor"
)

// xorBytes computes the exclusive-or of src1 and src2 and stores it in dst.
// It returns the number of bytes written.
func xorBytes(dst, src1, src2 []byte) int {
	n := len(src1)
	if len(src2) < n {
		n = len(src2)
	}
	if len(dst) < n {
		n = len(dst)
	}

	return xor.XorBytes(dst[:n], src1[:n], src2[:n])
}

// wipe zeros the given buffer.
func wipe(v []byte) {
	if len(v) == 0 {
		return
	}
	v[0] = 0
	for ofs := 1; ofs < len(v); ofs *= 2 {
		copy(v[ofs:], v[:ofs])
	}
}

// dup returns an independent copy of p.
func dup(p []byte) []byte {
	q := make([]byte, len(p))
	copy(q, p)

	return q
}
