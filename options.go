package cbc

import "github.com/pion/logging"

// ModeOption represents a Mode configuration, passed to NewMode.
type ModeOption func(*Mode) error

// SharedCipher marks the underlying cipher as shared with other owners:
// Close will not be forwarded to it. The cipher must be side-effect-free per
// call for sharing to be sound.
func SharedCipher() ModeOption {
	return func(m *Mode) error {
		m.sharedCipher = true

		return nil
	}
}

// UncheckedTransforms disables the per-call full-block bounds check on
// EncryptBlock and DecryptBlock. Passing a buffer shorter than one block is
// then the caller's contract violation.
func UncheckedTransforms() ModeOption {
	return func(m *Mode) error {
		m.unchecked = true

		return nil
	}
}

// WithLoggerFactory sets the factory used for lifecycle logging.
func WithLoggerFactory(factory logging.LoggerFactory) ModeOption {
	return func(m *Mode) error {
		m.log = factory.NewLogger("cbc")

		return nil
	}
}
