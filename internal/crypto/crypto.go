package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"io"
)

// Field-level encryption for sensitive tenant data (SSN last four).
// The key is fixed here; in production it comes from a key management
// system.
var encryptionKey = []byte("rentflow-32-byte-field-cipher-k!")

// EncryptField encrypts a value with AES-GCM and returns the
// ciphertext and the nonce used.
func EncryptField(plaintext string) (ciphertext, nonce []byte, err error) {
	if plaintext == "" {
		return nil, nil, errors.New("nothing to encrypt")
	}

	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		return nil, nil, err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, nil, err
	}

	nonce = make([]byte, aesgcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, nil, err
	}

	return aesgcm.Seal(nil, nonce, []byte(plaintext), nil), nonce, nil
}

// DecryptField reverses EncryptField.
func DecryptField(ciphertext, nonce []byte) (string, error) {
	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		return "", err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	plaintext, err := aesgcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}
