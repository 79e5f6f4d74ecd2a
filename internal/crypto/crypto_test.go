package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptDecryptField(t *testing.T) {
	ciphertext, nonce, err := EncryptField("6789")
	require.NoError(t, err)
	require.NotEmpty(t, ciphertext)
	require.NotEmpty(t, nonce)

	plaintext, err := DecryptField(ciphertext, nonce)
	require.NoError(t, err)
	assert.Equal(t, "6789", plaintext)
}

func TestEncryptFieldEmptyInput(t *testing.T) {
	_, _, err := EncryptField("")
	assert.Error(t, err)
}

func TestDecryptFieldTamperedCiphertext(t *testing.T) {
	ciphertext, nonce, err := EncryptField("6789")
	require.NoError(t, err)

	ciphertext[0] ^= 0xff
	_, err = DecryptField(ciphertext, nonce)
	assert.Error(t, err)
}

func TestEncryptFieldNoncesDiffer(t *testing.T) {
	_, n1, err := EncryptField("6789")
	require.NoError(t, err)
	_, n2, err := EncryptField("6789")
	require.NoError(t, err)
	assert.NotEqual(t, n1, n2)
}
