package box

import (
	"bytes"

	"github.com/idelchi/encbox/internal/encryption"
)

// Container is an immutable set of fields bound to a key and a cipher.
// It is safe for concurrent use.
type Container struct {
	fields []byte
	key    []byte
	cipher *encryption.Cipher
}

// Encrypt encrypts the field buffer. The result carries neither the variant nor the IV.
func (c *Container) Encrypt() ([]byte, error) {
	return c.cipher.Encrypt(c.key, c.fields)
}

// Decrypt derives the key for v from password and decrypts ciphertext into a Container.
// The recovered fields are a single blob; the original field boundaries are not known.
//
// With CTR and OFB a wrong password of any kind still succeeds and yields garbage.
func Decrypt(password string, ciphertext []byte, v encryption.Variant) (*Container, error) {
	c, err := encryption.NewCipher(v)
	if err != nil {
		return nil, err
	}

	key := encryption.DeriveKeyString(password, c.KeyLen())

	fields, err := c.Decrypt(key, ciphertext)
	if err != nil {
		return nil, err
	}

	return &Container{fields: fields, key: key, cipher: c}, nil
}

// Fields returns a copy of the field buffer.
func (c *Container) Fields() []byte {
	return bytes.Clone(c.fields)
}

// Key returns a copy of the key.
func (c *Container) Key() []byte {
	return bytes.Clone(c.key)
}

// Variant returns the variant of the container's cipher.
func (c *Container) Variant() encryption.Variant {
	return c.cipher.Variant()
}
