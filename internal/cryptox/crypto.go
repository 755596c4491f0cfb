// Package cryptox provides the key derivation and sealing primitives used by
// the credential vault: argon2id for turning keyfile material into an AES key,
// and AES-256-GCM for sealing the credential at rest.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"

	"golang.org/x/crypto/argon2"
)

// DeriveKey derives a 32-byte sealing key from raw key material and a salt
// using argon2id. The same (material, salt) pair always yields the same key.
func DeriveKey(material []byte, salt []byte) []byte {
	return argon2.IDKey(material, salt, 1, 64*1024, 4, 32)
}

// Seal encrypts plaintext with AES-GCM under the given key. A fresh random
// 12-byte nonce is generated per call and returned alongside the ciphertext.
//
// The key must be 16, 24 or 32 bytes long.
func Seal(plaintext, key []byte) (ciphertext, nonce []byte, err error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, nil, err
	}

	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, nil, err
	}

	nonce = make([]byte, aesgcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, nil, err
	}

	ciphertext = aesgcm.Seal(nil, nonce, plaintext, nil)
	return ciphertext, nonce, nil
}

// Open decrypts ciphertext produced by Seal. It fails if the key or nonce do
// not match or the ciphertext was tampered with.
func Open(ciphertext, nonce, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	return aesgcm.Open(nil, nonce, ciphertext, nil)
}
