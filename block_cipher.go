package cbc

// BlockCipher is the capability the mode engine requires from the plugged-in
// cipher primitive. The engine is generic over any conforming implementation;
// it never assumes a particular algorithm or block size.
//
// Offsets are expressed by slicing: to operate at an offset, pass buf[off:].
type BlockCipher interface {
	// BlockSize returns the cipher's fixed block size in bytes.
	BlockSize() int

	// Init binds the cipher to a direction and key. It may be called again
	// to rebind; implementations must not retain the caller's key buffer.
	Init(dir Direction, key []byte) error

	// EncryptBlock encrypts exactly one block from src into dst.
	// Dst and src may point at the same memory.
	EncryptBlock(dst, src []byte) error

	// DecryptBlock decrypts exactly one block from src into dst.
	// Dst and src may point at the same memory.
	DecryptBlock(dst, src []byte) error

	// Close releases the cipher and erases any retained key state.
	// It must be idempotent.
	Close() error
}

// Transformer is the direction-agnostic surface of a configured mode.
type Transformer interface {
	BlockSize() int
	TransformBlock(dst, src []byte) error
}
