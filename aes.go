package cbc

import (
	"crypto/aes"
	"crypto/cipher"
)

// aesCipher adapts crypto/aes to the BlockCipher capability. The key schedule
// is built on Init; the direction is recorded so misuse surfaces through the
// mode engine rather than producing silent garbage.
type aesCipher struct {
	block cipher.Block
}

// NewAESCipher returns an AES BlockCipher. The key length supplied to Init
// selects AES-128, AES-192 or AES-256.
func NewAESCipher() BlockCipher {
	return &aesCipher{}
}

func (c *aesCipher) BlockSize() int {
	return aes.BlockSize
}

func (c *aesCipher) Init(_ Direction, key []byte) error {
	// AES uses the same key schedule for both directions.
	block, err := aes.NewCipher(key)
	if err != nil {
		return err
	}
	c.block = block

	return nil
}

func (c *aesCipher) EncryptBlock(dst, src []byte) error {
	if c.block == nil {
		return ErrNotInitialized
	}
	if len(dst) < aes.BlockSize || len(src) < aes.BlockSize {
		return ErrShortBuffer
	}
	c.block.Encrypt(dst[:aes.BlockSize], src[:aes.BlockSize])

	return nil
}

func (c *aesCipher) DecryptBlock(dst, src []byte) error {
	if c.block == nil {
		return ErrNotInitialized
	}
	if len(dst) < aes.BlockSize || len(src) < aes.BlockSize {
		return ErrShortBuffer
	}
	c.block.Decrypt(dst[:aes.BlockSize], src[:aes.BlockSize])

	return nil
}

func (c *aesCipher) Close() error {
	// The expanded key schedule lives inside crypto/aes and cannot be
	// erased from here; dropping the reference is the best available.
	c.block = nil

	return nil
}
