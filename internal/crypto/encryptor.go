// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

var (
	// ErrEmptyPassphrase is returned by [NewEncryptor] for an empty passphrase.
	ErrEmptyPassphrase = errors.New("empty encryption passphrase")
	// ErrDecryption is returned when a blob cannot be opened with the key.
	ErrDecryption = errors.New("decryption failed")
)

// DefaultSalt is the Argon2id salt used when the caller has none. Every
// client of one account must derive the same key, so the salt is fixed.
var DefaultSalt = []byte("objsync/payload/v1")

// argonParams holds the Argon2id tuning parameters.
type argonParams struct {
	time    uint32
	memory  uint32
	threads uint8
	keyLen  uint32
}

// defaultArgonParams follows OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
var defaultArgonParams = argonParams{
	time:    1,
	memory:  64 * 1024,
	threads: 4,
	keyLen:  32,
}

// aesEncryptor is the AES-256-GCM implementation of [Encryptor].
type aesEncryptor struct {
	aead      cipher.AEAD
	signature string
}

// NewEncryptor derives a 256-bit key from passphrase and salt with Argon2id
// and returns an [Encryptor] built on it. A nil salt means [DefaultSalt].
func NewEncryptor(passphrase string, salt []byte) (Encryptor, error) {
	return newEncryptor(passphrase, salt, defaultArgonParams)
}

func newEncryptor(passphrase string, salt []byte, p argonParams) (*aesEncryptor, error) {
	if passphrase == "" {
		return nil, ErrEmptyPassphrase
	}
	if salt == nil {
		salt = DefaultSalt
	}

	key := argon2.IDKey([]byte(passphrase), salt, p.time, p.memory, p.threads, p.keyLen)
	return newEncryptorFromKey(key)
}

// NewEncryptorFromKey builds an [Encryptor] on an already derived 32-byte key.
func NewEncryptorFromKey(key []byte) (Encryptor, error) {
	return newEncryptorFromKey(key)
}

func newEncryptorFromKey(key []byte) (*aesEncryptor, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	sum := sha256.Sum256(key)
	return &aesEncryptor{
		aead:      gcm,
		signature: hex.EncodeToString(sum[:]),
	}, nil
}

// Encrypt implements [Encryptor].
func (e *aesEncryptor) Encrypt(plaintext []byte) ([]byte, error) {
	nonce := make([]byte, e.aead.NonceSize(), e.aead.NonceSize()+len(plaintext)+e.aead.Overhead())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	return e.aead.Seal(nonce, nonce, plaintext, nil), nil
}

// Decrypt implements [Encryptor].
func (e *aesEncryptor) Decrypt(blob []byte) ([]byte, error) {
	nonceSize := e.aead.NonceSize()
	if len(blob) < nonceSize {
		return nil, fmt.Errorf("%w: ciphertext too short", ErrDecryption)
	}

	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]
	plaintext, err := e.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryption, err)
	}

	return plaintext, nil
}

// Signature implements [Encryptor].
func (e *aesEncryptor) Signature() string {
	return e.signature
}
