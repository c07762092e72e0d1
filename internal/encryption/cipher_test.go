package encryption_test

import (
	"bytes"
	"crypto/aes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/encbox/internal/encryption"
)

const longText = `Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod tempor
incididunt ut labore et dolore magna aliqua. Ut enim ad minim veniam, quis nostrud exercitation
ullamco laboris nisi ut aliquip ex ea commodo consequat.`

func TestCipherRoundTrip(t *testing.T) {
	t.Parallel()

	plaintexts := map[string][]byte{
		"empty":       {},
		"one byte":    {0x42},
		"block":       bytes.Repeat([]byte{'a'}, aes.BlockSize),
		"block+1":     bytes.Repeat([]byte{'b'}, aes.BlockSize+1),
		"long text":   []byte(longText),
		"binary data": {0x00, 0xff, 0x10, 0x10, 0x10},
	}

	for _, variant := range encryption.Variants() {
		c := encryption.MustCipher(variant)
		key := encryption.DeriveKeyString("round trip", c.KeyLen())

		for name, plaintext := range plaintexts {
			t.Run(variant.String()+"/"+name, func(t *testing.T) {
				t.Parallel()

				ciphertext, err := c.Encrypt(key, plaintext)
				require.NoError(t, err)

				got, err := c.Decrypt(key, ciphertext)
				require.NoError(t, err)
				assert.Equal(t, plaintext, got)
			})
		}
	}
}

func TestCipherOutputLength(t *testing.T) {
	t.Parallel()

	for _, variant := range encryption.Variants() {
		t.Run(variant.String(), func(t *testing.T) {
			t.Parallel()

			c := encryption.MustCipher(variant)
			key := encryption.DeriveKeyString("length", c.KeyLen())

			for _, n := range []int{0, 1, 15, 16, 17, 100} {
				ciphertext, err := c.Encrypt(key, make([]byte, n))
				require.NoError(t, err)

				if c.Spec().Padded() {
					assert.Zero(t, len(ciphertext)%aes.BlockSize)
					assert.Greater(t, len(ciphertext), n)
					assert.LessOrEqual(t, len(ciphertext), n+aes.BlockSize)
				} else {
					assert.Len(t, ciphertext, n)
				}
			}
		})
	}
}

func TestCipherDeterministic(t *testing.T) {
	t.Parallel()

	c := encryption.MustCipher(encryption.AES192CBC)
	key := encryption.DeriveKeyString("password", c.KeyLen())

	first, err := c.Encrypt(key, []byte(longText))
	require.NoError(t, err)

	second, err := c.Encrypt(key, []byte(longText))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCipherKeyLengthMismatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		variant encryption.Variant
		keyLen  int
	}{
		{encryption.AES128ECB, 0},
		{encryption.AES128CBC, 15},
		{encryption.AES128CTR, 32},
		{encryption.AES192OFB, 16},
		{encryption.AES256CBC, 24},
		{encryption.AES256ECB, 33},
	}

	for _, tt := range tests {
		t.Run(tt.variant.String(), func(t *testing.T) {
			t.Parallel()

			c := encryption.MustCipher(tt.variant)
			key := make([]byte, tt.keyLen)

			_, err := c.Encrypt(key, []byte("data"))
			require.ErrorIs(t, err, encryption.ErrKeyLengthMismatch)

			var kle *encryption.KeyLengthError
			require.ErrorAs(t, err, &kle)
			assert.Equal(t, c.KeyLen(), kle.Expected)
			assert.Equal(t, tt.keyLen, kle.Actual)

			_, err = c.Decrypt(key, make([]byte, aes.BlockSize))
			require.ErrorIs(t, err, encryption.ErrKeyLengthMismatch)
		})
	}
}

func TestCipherDecryptPrimitiveErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		variant    encryption.Variant
		ciphertext []byte
		cause      error
	}{
		{"ecb empty", encryption.AES128ECB, nil, encryption.ErrEmptyData},
		{"cbc empty", encryption.AES256CBC, []byte{}, encryption.ErrEmptyData},
		{"ecb misaligned", encryption.AES192ECB, make([]byte, 17), encryption.ErrInvalidBlockSize},
		{"cbc misaligned", encryption.AES128CBC, make([]byte, 5), encryption.ErrInvalidBlockSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := encryption.MustCipher(tt.variant)
			key := encryption.DeriveKeyString("password", c.KeyLen())

			_, err := c.Decrypt(key, tt.ciphertext)
			require.ErrorIs(t, err, encryption.ErrCipherPrimitive)
			require.ErrorIs(t, err, tt.cause)
		})
	}
}

func TestCipherStreamModesAcceptAnyLength(t *testing.T) {
	t.Parallel()

	for _, variant := range []encryption.Variant{encryption.AES128CTR, encryption.AES256OFB} {
		c := encryption.MustCipher(variant)
		key := encryption.DeriveKeyString("password", c.KeyLen())

		got, err := c.Decrypt(key, []byte{1, 2, 3})
		require.NoError(t, err, variant.String())
		assert.Len(t, got, 3)
	}
}

func TestCipherWrongKey(t *testing.T) {
	t.Parallel()

	for _, variant := range encryption.Variants() {
		t.Run(variant.String(), func(t *testing.T) {
			t.Parallel()

			c := encryption.MustCipher(variant)
			right := encryption.DeriveKeyString("right", c.KeyLen())
			wrong := encryption.DeriveKeyString("wrong", c.KeyLen())

			ciphertext, err := c.Encrypt(right, []byte(longText))
			require.NoError(t, err)

			got, err := c.Decrypt(wrong, ciphertext)

			if c.Spec().Mode.Stream() {
				require.NoError(t, err, "stream modes cannot detect a wrong key")
				assert.Len(t, got, len(longText))
				assert.NotEqual(t, []byte(longText), got)

				return
			}

			if err != nil {
				require.ErrorIs(t, err, encryption.ErrCipherPrimitive)

				return
			}

			assert.NotEqual(t, []byte(longText), got)
		})
	}
}

func TestCipherVariantSensitivity(t *testing.T) {
	t.Parallel()

	seen := make(map[string]encryption.Variant)

	for _, variant := range encryption.Variants() {
		c := encryption.MustCipher(variant)
		key := encryption.DeriveKeyString("password", c.KeyLen())

		ciphertext, err := c.Encrypt(key, []byte(longText))
		require.NoError(t, err)

		prev, dup := seen[string(ciphertext)]
		assert.False(t, dup, "%s and %s produced identical ciphertexts", prev, variant)

		seen[string(ciphertext)] = variant
	}
}

func TestCipherDoesNotModifyInputs(t *testing.T) {
	t.Parallel()

	c := encryption.MustCipher(encryption.AES128CBC)
	key := encryption.DeriveKeyString("password", c.KeyLen())
	keyCopy := bytes.Clone(key)

	plaintext := []byte(strings.Repeat("x", 40))
	plainCopy := bytes.Clone(plaintext)

	ciphertext, err := c.Encrypt(key, plaintext)
	require.NoError(t, err)

	cipherCopy := bytes.Clone(ciphertext)

	_, err = c.Decrypt(key, ciphertext)
	require.NoError(t, err)

	assert.Equal(t, keyCopy, key)
	assert.Equal(t, plainCopy, plaintext)
	assert.Equal(t, cipherCopy, ciphertext)
}

func TestNewCipherUnsupported(t *testing.T) {
	t.Parallel()

	_, err := encryption.NewCipher(encryption.Variant(12))
	require.ErrorIs(t, err, encryption.ErrUnsupportedScheme)

	assert.Panics(t, func() { encryption.MustCipher(encryption.Variant(500)) })
}

func FuzzCipherDecrypt(f *testing.F) {
	f.Add(uint8(0), []byte{})
	f.Add(uint8(1), bytes.Repeat([]byte{0x10}, aes.BlockSize))
	f.Add(uint8(10), []byte("not a ciphertext"))

	f.Fuzz(func(t *testing.T, index uint8, data []byte) {
		variant := encryption.Variant(uint32(index) % uint32(len(encryption.Variants())))
		c := encryption.MustCipher(variant)
		key := encryption.DeriveKeyString("fuzz", c.KeyLen())

		_, _ = c.Decrypt(key, data)
	})
}

func FuzzCipherRoundTrip(f *testing.F) {
	f.Add(uint8(0), "password", []byte("Some Crypto Text"))
	f.Add(uint8(11), "", []byte{})

	f.Fuzz(func(t *testing.T, index uint8, password string, plaintext []byte) {
		variant := encryption.Variant(uint32(index) % uint32(len(encryption.Variants())))
		c := encryption.MustCipher(variant)
		key := encryption.DeriveKeyString(password, c.KeyLen())

		ciphertext, err := c.Encrypt(key, plaintext)
		if err != nil {
			t.Fatalf("encrypt: %v", err)
		}

		got, err := c.Decrypt(key, ciphertext)
		if err != nil {
			t.Fatalf("decrypt: %v", err)
		}

		if !bytes.Equal(plaintext, got) {
			t.Fatalf("round trip mismatch: %x != %x", plaintext, got)
		}
	})
}

func BenchmarkCipherEncrypt(b *testing.B) {
	data := bytes.Repeat([]byte(longText), 16)

	for _, variant := range []encryption.Variant{encryption.AES128ECB, encryption.AES256CBC, encryption.AES256CTR} {
		c := encryption.MustCipher(variant)
		key := encryption.DeriveKeyString("bench", c.KeyLen())

		b.Run(variant.String(), func(b *testing.B) {
			b.SetBytes(int64(len(data)))

			for range b.N {
				if _, err := c.Encrypt(key, data); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
