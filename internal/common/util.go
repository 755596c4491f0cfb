package common

import "crypto/rand"

// GenerateRandByteArray returns size bytes from the system CSPRNG.
// It panics if the random source fails, which is not recoverable anyway.
func GenerateRandByteArray(size int) []byte {
	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return buf
}

// WipeByteArray zeroes the buffer in place. Safe on nil.
func WipeByteArray(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}
