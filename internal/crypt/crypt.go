// Package crypt handles the password-encrypted events payload. The
// exporter writes "v1|" followed by three base64 fields (salt, nonce,
// ciphertext) where the key is PBKDF2-SHA256 over the password and
// the cipher is AES-256-GCM. A file without the version tag is plain
// JSON and never passes through this package.
package crypt

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	versionTag = "v1|"

	saltSize   = 16
	nonceSize  = 12
	keySize    = 32
	iterations = 65536
)

// ErrWrongPassword covers both a bad password and a tampered payload;
// AES-GCM authentication cannot tell the two apart.
var ErrWrongPassword = errors.New("wrong password or corrupt payload")

// ErrMalformed means the payload carried the version tag but its
// framing is broken, so no password could ever open it.
var ErrMalformed = errors.New("malformed encrypted payload")

// IsEncrypted reports whether raw carries the encrypted-payload
// version tag. Anything else is treated as plain JSON by the loader.
func IsEncrypted(raw string) bool {
	return strings.HasPrefix(raw, versionTag)
}

// Decrypt opens a "v1|" payload with the given password and returns
// the plaintext JSON document.
func Decrypt(raw, password string) ([]byte, error) {
	if !IsEncrypted(raw) {
		return nil, ErrMalformed
	}
	parts := strings.Split(strings.TrimPrefix(raw, versionTag), "|")
	if len(parts) != 3 {
		return nil, ErrMalformed
	}

	salt, err := base64.StdEncoding.DecodeString(parts[0])
	if err != nil || len(salt) != saltSize {
		return nil, ErrMalformed
	}
	nonce, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil || len(nonce) != nonceSize {
		return nil, ErrMalformed
	}
	ciphertext, err := base64.StdEncoding.DecodeString(parts[2])
	if err != nil {
		return nil, ErrMalformed
	}

	aead, err := newAEAD(password, salt)
	if err != nil {
		return nil, err
	}
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrWrongPassword
	}
	return plaintext, nil
}

// Encrypt seals plaintext under the password in the "v1|" format. Used
// by the companion export tooling and by tests; the viewer itself only
// decrypts.
func Encrypt(plaintext []byte, password string) (string, error) {
	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}
	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("generating nonce: %w", err)
	}

	aead, err := newAEAD(password, salt)
	if err != nil {
		return "", err
	}
	ciphertext := aead.Seal(nil, nonce, plaintext, nil)

	return versionTag +
		base64.StdEncoding.EncodeToString(salt) + "|" +
		base64.StdEncoding.EncodeToString(nonce) + "|" +
		base64.StdEncoding.EncodeToString(ciphertext), nil
}

func newAEAD(password string, salt []byte) (cipher.AEAD, error) {
	key := pbkdf2.Key([]byte(password), salt, iterations, keySize, sha256.New)
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("creating GCM: %w", err)
	}
	return aead, nil
}
