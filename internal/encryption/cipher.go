package encryption

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// Cipher encrypts and decrypts whole buffers with one AES variant.
// It holds no key material and is safe for concurrent use.
type Cipher struct {
	variant Variant
	spec    Spec
}

// NewCipher returns a Cipher for v.
func NewCipher(v Variant) (*Cipher, error) {
	spec, err := Resolve(v)
	if err != nil {
		return nil, err
	}

	return &Cipher{variant: v, spec: spec}, nil
}

// MustCipher is like NewCipher but panics if v is not part of the registry.
func MustCipher(v Variant) *Cipher {
	c, err := NewCipher(v)
	if err != nil {
		panic(err)
	}

	return c
}

// Variant returns the variant the cipher was built for.
func (c *Cipher) Variant() Variant {
	return c.variant
}

// Spec returns the parameters of the cipher's variant.
func (c *Cipher) Spec() Spec {
	return c.spec
}

// KeyLen returns the key length in bytes the cipher expects.
func (c *Cipher) KeyLen() int {
	return c.spec.KeyLen
}

// Name returns the OpenSSL name of the variant.
func (c *Cipher) Name() string {
	return c.spec.Name
}

// Encrypt encrypts plaintext under key. Padded modes always append at least one byte
// of PKCS#7 padding; stream modes return exactly len(plaintext) bytes.
func (c *Cipher) Encrypt(key, plaintext []byte) ([]byte, error) {
	block, iv, err := c.prepare(key)
	if err != nil {
		return nil, err
	}

	switch c.spec.Mode {
	case ModeECB:
		return encryptECB(block, pkcs7Pad(plaintext, aes.BlockSize)), nil
	case ModeCBC:
		return encryptCBC(block, iv, pkcs7Pad(plaintext, aes.BlockSize)), nil
	case ModeCTR, ModeOFB:
		return xorStream(c.spec.Mode, block, iv, plaintext), nil
	default:
		return nil, primitiveError("encrypting", fmt.Errorf("unknown mode %d", c.spec.Mode))
	}
}

// Decrypt reverses Encrypt. Padded modes fail on empty, misaligned or badly padded input.
// Stream modes never fail on content: a wrong key of the right length yields garbage.
func (c *Cipher) Decrypt(key, ciphertext []byte) ([]byte, error) {
	block, iv, err := c.prepare(key)
	if err != nil {
		return nil, err
	}

	if c.spec.Padded() {
		if len(ciphertext) == 0 {
			return nil, primitiveError("decrypting", ErrEmptyData)
		}

		if len(ciphertext)%aes.BlockSize != 0 {
			return nil, primitiveError("decrypting", ErrInvalidBlockSize)
		}
	}

	var plaintext []byte

	switch c.spec.Mode {
	case ModeECB:
		plaintext = decryptECB(block, ciphertext)
	case ModeCBC:
		plaintext = decryptCBC(block, iv, ciphertext)
	case ModeCTR, ModeOFB:
		return xorStream(c.spec.Mode, block, iv, ciphertext), nil
	default:
		return nil, primitiveError("decrypting", fmt.Errorf("unknown mode %d", c.spec.Mode))
	}

	unpadded, err := pkcs7Unpad(plaintext)
	if err != nil {
		return nil, primitiveError("removing padding", err)
	}

	return unpadded, nil
}

// prepare validates the key length, builds the block cipher and selects the fixed IV.
func (c *Cipher) prepare(key []byte) (cipher.Block, []byte, error) {
	if len(key) != c.spec.KeyLen {
		return nil, nil, &KeyLengthError{Expected: c.spec.KeyLen, Actual: len(key)}
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, nil, primitiveError("creating cipher", err)
	}

	if !c.spec.NeedsIV() {
		return block, nil, nil
	}

	iv := fixedIV(c.spec.IVLen)
	if len(iv) != block.BlockSize() {
		return nil, nil, primitiveError("selecting iv",
			fmt.Errorf("%w: need %d bytes, have %d", ErrMissingIV, block.BlockSize(), len(iv)))
	}

	return block, iv, nil
}
