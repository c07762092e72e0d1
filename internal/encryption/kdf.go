package encryption

import "crypto/sha256"

// DeriveKey hashes password with SHA-256 and returns the first keyLen bytes of the digest.
// Requests longer than the digest return the whole digest. No salt is applied, so equal
// passwords always produce equal keys.
func DeriveKey(password []byte, keyLen int) []byte {
	sum := sha256.Sum256(password)

	n := min(max(keyLen, 0), len(sum))

	key := make([]byte, n)
	copy(key, sum[:n])

	return key
}

// DeriveKeyString is DeriveKey for a string password.
func DeriveKeyString(password string, keyLen int) []byte {
	return DeriveKey([]byte(password), keyLen)
}
