// Package cbc implements a Cipher Block Chaining mode engine over any block
// cipher primitive, plus a constant-time comparison helper for secrets.
//
// See NIST SP 800-38A, pp 10-11.
package cbc

import (
	"github.com/pion/logging"
)

type modeState int

const (
	modeUnconfigured modeState = iota
	modeConfigured
	modeClosed
)

// Mode chains a block cipher in CBC mode over successive same-size blocks.
//
// A Mode processes exactly one block per call; callers drive multi-block
// buffers by looping over block boundaries. A Mode is not safe for concurrent
// use: chain state mutates on every call, so use one Mode per logical stream.
type Mode struct {
	cipher    BlockCipher
	blockSize int

	dir   Direction
	state modeState

	// iv holds the feedback for the next block: after block i it equals the
	// raw ciphertext of block i. next is decrypt scratch; the two must be
	// independent storage.
	iv   []byte
	next []byte

	sharedCipher bool
	unchecked    bool

	log logging.LeveledLogger
}

// NewMode returns an unconfigured Mode bound to the given cipher. The cipher
// binding is immutable for the life of the Mode; call Init to configure a
// direction and key material.
//
// By default the Mode owns the cipher exclusively and forwards Close to it.
func NewMode(cipher BlockCipher, opts ...ModeOption) (*Mode, error) {
	if cipher == nil {
		return nil, ErrNilCipher
	}

	mode := &Mode{
		cipher:    cipher,
		blockSize: cipher.BlockSize(),
	}
	mode.iv = make([]byte, mode.blockSize)
	mode.next = make([]byte, mode.blockSize)

	for _, opt := range opts {
		if err := opt(mode); err != nil {
			return nil, err
		}
	}

	if mode.log == nil {
		mode.log = logging.NewDefaultLoggerFactory().NewLogger("cbc")
	}

	return mode, nil
}

// BlockSize returns the underlying cipher's block size.
func (m *Mode) BlockSize() int {
	return m.blockSize
}

// Init configures the Mode for one direction with the given key and IV.
// The IV length must equal the cipher's block size; key length constraints
// are delegated to the underlying cipher. Both buffers are copied, never
// retained. Calling Init on a configured Mode rebinds it and resets the
// chain state; calling it on a closed Mode returns ErrModeClosed.
func (m *Mode) Init(dir Direction, key, iv []byte) error {
	if m.state == modeClosed {
		return ErrModeClosed
	}
	if !dir.valid() {
		return ErrWrongDirection
	}
	if key == nil || iv == nil {
		return ErrNilKeyMaterial
	}
	if len(iv) != m.blockSize {
		return ErrBadIVLength
	}

	if err := m.cipher.Init(dir, key); err != nil {
		return &cipherError{Op: "init", Err: err}
	}

	copy(m.iv, iv)
	copy(m.next, iv)
	m.dir = dir
	m.state = modeConfigured

	m.log.Debugf("mode configured dir=%s blockSize=%d", dir, m.blockSize)

	return nil
}

// EncryptBlock encrypts one block from src into dst and advances the chain.
// Dst and src may point at the same memory. Operate at an offset by slicing:
// EncryptBlock(dst[off:], src[off:]).
func (m *Mode) EncryptBlock(dst, src []byte) error {
	if err := m.checkTransform(DirectionEncrypt, dst, src); err != nil {
		return err
	}

	// XOR the plaintext into the feedback, encrypt the result, then the
	// fresh ciphertext becomes the feedback for the next block.
	xorBytes(m.iv, m.iv, src[:m.blockSize])
	if err := m.cipher.EncryptBlock(dst, m.iv); err != nil {
		return &cipherError{Op: "encrypt", Err: err}
	}
	copy(m.iv, dst[:m.blockSize])

	return nil
}

// DecryptBlock decrypts one block from src into dst and advances the chain.
// Dst and src may point at the same memory. Operate at an offset by slicing.
func (m *Mode) DecryptBlock(dst, src []byte) error {
	if err := m.checkTransform(DirectionDecrypt, dst, src); err != nil {
		return err
	}

	// Save the ciphertext before the cipher call: it is the next feedback
	// value, and dst may alias src. XOR before promoting so in-place
	// transforms stay correct.
	copy(m.next, src[:m.blockSize])
	if err := m.cipher.DecryptBlock(dst, src); err != nil {
		return &cipherError{Op: "decrypt", Err: err}
	}
	xorBytes(dst, dst[:m.blockSize], m.iv)
	copy(m.iv, m.next)

	return nil
}

// TransformBlock dispatches to EncryptBlock or DecryptBlock based on the
// direction bound at Init.
func (m *Mode) TransformBlock(dst, src []byte) error {
	if m.state == modeClosed {
		return ErrModeClosed
	}
	if m.state != modeConfigured {
		return ErrNotInitialized
	}
	if m.dir == DirectionEncrypt {
		return m.EncryptBlock(dst, src)
	}

	return m.DecryptBlock(dst, src)
}

// Close zero-fills the chain state and, unless the cipher is shared, closes
// the underlying cipher. Cipher close failures are swallowed so teardown
// cannot mask an earlier error. Close is idempotent.
func (m *Mode) Close() error {
	if m.state == modeClosed {
		return nil
	}
	m.state = modeClosed

	wipe(m.iv)
	wipe(m.next)

	if !m.sharedCipher {
		if err := m.cipher.Close(); err != nil {
			m.log.Warnf("cipher close failed: %v", err)
		}
	}

	m.log.Debug("mode closed")

	return nil
}

func (m *Mode) checkTransform(dir Direction, dst, src []byte) error {
	switch m.state {
	case modeClosed:
		return ErrModeClosed
	case modeUnconfigured:
		return ErrNotInitialized
	case modeConfigured:
	}
	if m.dir != dir {
		return ErrWrongDirection
	}
	if !m.unchecked && (len(src) < m.blockSize || len(dst) < m.blockSize) {
		return ErrShortBuffer
	}

	return nil
}
