// Package csprng provides a cryptographically secure random source for
// generating keys, IVs and bounded integers.
package csprng

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"io"
	"math"
)

// Errors returned by a Source.
var (
	// ErrSourceClosed is returned for any use of a closed Source.
	ErrSourceClosed = errors.New("source is closed")

	// ErrInvalidRange is returned when the requested integer range is empty
	// or inverted.
	ErrInvalidRange = errors.New("invalid range")
)

// Source supplies cryptographically secure random bytes and unbiased bounded
// integers. A Source owns its entropy lifecycle; consumers such as the mode
// engine never retain one.
type Source interface {
	io.Reader

	// GetBytes returns n fresh random bytes.
	GetBytes(n int) ([]byte, error)

	// NextInt returns a uniform integer in [0, max).
	NextInt(max int) (int, error)

	// IntRange returns a uniform integer in [min, max], inclusive.
	IntRange(min, max int) (int, error)

	// Reset rebinds the source to the system entropy reader.
	Reset() error

	// Close releases the source. Idempotent.
	Close() error
}

type source struct {
	r      io.Reader
	closed bool
}

// New returns a Source backed by the operating system's CSPRNG.
func New() Source {
	return &source{r: rand.Reader}
}

func (s *source) Read(p []byte) (int, error) {
	if s.closed {
		return 0, ErrSourceClosed
	}

	return io.ReadFull(s.r, p)
}

func (s *source) GetBytes(n int) ([]byte, error) {
	if s.closed {
		return nil, ErrSourceClosed
	}

	b := make([]byte, n)
	if _, err := io.ReadFull(s.r, b); err != nil {
		return nil, err
	}

	return b, nil
}

// NextInt draws 64 raw bits and rejects draws that fall in the region that
// would bias the modulo result, redrawing until an unbiased value lands.
func (s *source) NextInt(max int) (int, error) {
	if s.closed {
		return 0, ErrSourceClosed
	}
	if max <= 0 {
		return 0, ErrInvalidRange
	}

	bound := uint64(max)
	limit := math.MaxUint64 - (math.MaxUint64 % bound)

	var buf [8]byte
	for {
		if _, err := io.ReadFull(s.r, buf[:]); err != nil {
			return 0, err
		}
		draw := binary.BigEndian.Uint64(buf[:])
		if draw < limit {
			return int(draw % bound), nil
		}
	}
}

func (s *source) IntRange(min, max int) (int, error) {
	if min > max {
		return 0, ErrInvalidRange
	}

	n, err := s.NextInt(max - min + 1)
	if err != nil {
		return 0, err
	}

	return min + n, nil
}

func (s *source) Reset() error {
	if s.closed {
		return ErrSourceClosed
	}
	s.r = rand.Reader

	return nil
}

func (s *source) Close() error {
	s.closed = true

	return nil
}
