package cbc

import "io"

// KeyMaterial bundles the key and IV required to initialize a Mode.
// After KeyMaterial is passed to Init it may be wiped or reused by the
// caller: the Mode copies both buffers and retains neither.
type KeyMaterial struct {
	Key []byte
	IV  []byte
}

// GenerateKeyMaterial draws a fresh key of keyLen bytes and an IV of
// blockSize bytes from the given reader, typically a csprng.Source.
func GenerateKeyMaterial(r io.Reader, keyLen, blockSize int) (KeyMaterial, error) {
	km := KeyMaterial{
		Key: make([]byte, keyLen),
		IV:  make([]byte, blockSize),
	}

	if _, err := io.ReadFull(r, km.Key); err != nil {
		return KeyMaterial{}, err
	}
	if _, err := io.ReadFull(r, km.IV); err != nil {
		return KeyMaterial{}, err
	}

	return km, nil
}

// Wipe zero-fills the key and IV.
func (k *KeyMaterial) Wipe() {
	wipe(k.Key)
	wipe(k.IV)
}

// Init configures the Mode from the bundle; equivalent to
// mode.Init(dir, k.Key, k.IV).
func (k *KeyMaterial) Init(mode *Mode, dir Direction) error {
	return mode.Init(dir, k.Key, k.IV)
}
