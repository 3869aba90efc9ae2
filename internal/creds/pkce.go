package creds

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
)

// Unreserved characters permitted in a PKCE code verifier (RFC 7636 §4.1).
const verifierChars = "~.-_ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// verifierLen is the maximum length RFC 7636 allows. Longer is stronger,
// so we always generate at the cap.
const verifierLen = 128

// newCodeVerifier generates a 128-byte code verifier drawn uniformly
// from the unreserved character set.
func newCodeVerifier() ([]byte, error) {
	// Rejection sampling keeps the draw uniform: 3*66 = 198 is the
	// largest multiple of len(verifierChars) below 256.
	const limit = 198

	verifier := make([]byte, 0, verifierLen)
	buf := make([]byte, verifierLen)

	for len(verifier) < verifierLen {
		if _, err := rand.Read(buf); err != nil {
			return nil, fmt.Errorf("reading random bytes: %w", err)
		}

		for _, b := range buf {
			if b >= limit {
				continue
			}

			verifier = append(verifier, verifierChars[int(b)%len(verifierChars)])
			if len(verifier) == verifierLen {
				break
			}
		}
	}

	return verifier, nil
}

// challengeS256 derives the S256 code challenge: the URL-safe unpadded
// base64 encoding of the verifier's SHA-256 digest.
func challengeS256(verifier []byte) string {
	sum := sha256.Sum256(verifier)

	return base64.RawURLEncoding.EncodeToString(sum[:])
}
