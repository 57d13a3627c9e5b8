package seal

import (
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
)

// Sealer encrypts backend credentials before they are written to the
// session store and decrypts them on load.
type Sealer struct {
	aead cipher.AEAD
}

// New creates a sealer from a hex-encoded 32-byte key. An empty key selects
// a random one, which means persisted sessions do not survive a restart.
func New(hexKey string) (*Sealer, error) {
	var key []byte
	if hexKey == "" {
		key = make([]byte, chacha20poly1305.KeySize)
		if _, err := rand.Read(key); err != nil {
			return nil, fmt.Errorf("generate seal key: %w", err)
		}
	} else {
		var err error
		key, err = hex.DecodeString(hexKey)
		if err != nil {
			return nil, fmt.Errorf("decode seal key: %w", err)
		}
		if len(key) != chacha20poly1305.KeySize {
			return nil, fmt.Errorf("seal key must be %d bytes, got %d", chacha20poly1305.KeySize, len(key))
		}
	}

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("init aead: %w", err)
	}
	return &Sealer{aead: aead}, nil
}

// Seal encrypts plaintext and returns nonce-prefixed ciphertext.
func (s *Sealer) Seal(plaintext string) ([]byte, error) {
	nonce := make([]byte, s.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}
	return s.aead.Seal(nonce, nonce, []byte(plaintext), nil), nil
}

// Open decrypts a blob produced by Seal.
func (s *Sealer) Open(blob []byte) (string, error) {
	if len(blob) < s.aead.NonceSize() {
		return "", fmt.Errorf("sealed blob too short")
	}
	nonce, ciphertext := blob[:s.aead.NonceSize()], blob[s.aead.NonceSize():]
	plaintext, err := s.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("open sealed credential: %w", err)
	}
	return string(plaintext), nil
}
