package box

import (
	"bytes"
	"fmt"

	"github.com/idelchi/encbox/internal/encryption"
)

// DefaultVariant is the variant a Builder starts with.
const DefaultVariant = encryption.AES128ECB

// Builder accumulates fields and key material for a Container.
// Setters mutate the builder in place and return it for chaining.
// A Builder must not be used from several goroutines at once.
type Builder struct {
	fields      []byte
	password    string
	hasPassword bool
	key         []byte
	cipher      *encryption.Cipher
}

// NewBuilder returns an empty Builder using DefaultVariant.
func NewBuilder() *Builder {
	return NewBuilderWith(encryption.MustCipher(DefaultVariant))
}

// NewBuilderWith returns an empty Builder using c.
func NewBuilderWith(c *encryption.Cipher) *Builder {
	return &Builder{cipher: c}
}

// AddField appends the textual form of v to the field buffer.
// Byte slices are appended as is; every other value is formatted like fmt.Sprint.
// Fields are not delimited, so "ab" followed by "c" equals "a" followed by "bc".
func (b *Builder) AddField(v any) *Builder {
	switch field := v.(type) {
	case []byte:
		b.fields = append(b.fields, field...)
	case string:
		b.fields = append(b.fields, field...)
	default:
		b.fields = fmt.Append(b.fields, field)
	}

	return b
}

// AddFields appends each value in order, as AddField does.
func (b *Builder) AddFields(vs ...any) *Builder {
	for _, v := range vs {
		b.AddField(v)
	}

	return b
}

// AddAll appends every element of a typed slice to b.
func AddAll[T any](b *Builder, vs []T) *Builder {
	for _, v := range vs {
		b.AddField(v)
	}

	return b
}

// SetPassword stores password and derives the key for the current variant.
func (b *Builder) SetPassword(password string) *Builder {
	b.password = password
	b.hasPassword = true
	b.key = encryption.DeriveKeyString(password, b.cipher.KeyLen())

	return b
}

// SetCipher switches to variant v, re-deriving the key when a password is set.
// On error the builder is left unchanged.
func (b *Builder) SetCipher(v encryption.Variant) (*Builder, error) {
	c, err := encryption.NewCipher(v)
	if err != nil {
		return b, err
	}

	b.cipher = c

	if b.hasPassword {
		b.key = encryption.DeriveKeyString(b.password, c.KeyLen())
	}

	return b, nil
}

// Reset drops the accumulated fields and keeps the password and variant.
func (b *Builder) Reset() *Builder {
	b.fields = nil

	return b
}

// Build snapshots the builder into a Container. The builder stays usable.
func (b *Builder) Build() (*Container, error) {
	if !b.hasPassword {
		return nil, &BuildError{Reason: "no key set"}
	}

	return &Container{
		fields: bytes.Clone(b.fields),
		key:    bytes.Clone(b.key),
		cipher: b.cipher,
	}, nil
}

// Fields returns a copy of the accumulated field buffer.
func (b *Builder) Fields() []byte {
	return bytes.Clone(b.fields)
}

// Key returns a copy of the derived key, or nil if no password was set.
func (b *Builder) Key() []byte {
	return bytes.Clone(b.key)
}

// Variant returns the currently selected variant.
func (b *Builder) Variant() encryption.Variant {
	return b.cipher.Variant()
}

// HasPassword reports whether SetPassword was called.
func (b *Builder) HasPassword() bool {
	return b.hasPassword
}
