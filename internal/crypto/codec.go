package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"io"

	"github.com/Imadeveloperrr/backend-test-v1/internal/model"
)

const nonceSize = 12

// deriveKey hashes the shared secret down to a fixed 256-bit key; the raw
// secret is never used as key material.
func deriveKey(secret string) []byte {
	sum := sha256.Sum256([]byte(secret))
	return sum[:]
}

// Encrypt seals plaintext under a key derived from secret and returns a
// URL-safe token laid out as base64url(nonce || ciphertext || tag). The nonce
// comes from crypto/rand on every call, so encrypting the same plaintext
// twice yields different tokens.
func Encrypt(plaintext []byte, secret string) (string, error) {
	block, err := aes.NewCipher(deriveKey(secret))
	if err != nil {
		return "", err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, nonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	sealed := gcm.Seal(nonce, nonce, plaintext, nil)
	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

// Decrypt reverses Encrypt. A wrong secret, a truncated token, bad encoding
// or any tampering all surface as model.ErrIntegrity — never partial
// plaintext.
func Decrypt(token string, secret string) ([]byte, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, model.ErrIntegrity
	}
	if len(raw) < nonceSize {
		return nil, model.ErrIntegrity
	}

	block, err := aes.NewCipher(deriveKey(secret))
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	plaintext, err := gcm.Open(nil, raw[:nonceSize], raw[nonceSize:], nil)
	if err != nil {
		return nil, model.ErrIntegrity
	}
	return plaintext, nil
}
