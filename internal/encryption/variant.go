package encryption

import (
	"fmt"
	"strings"
)

// Variant identifies one AES key size and mode combination.
// The numeric value is the stable scheme index exposed on the command line.
type Variant uint32

const (
	AES128ECB Variant = iota
	AES128CBC
	AES128CTR
	AES128OFB
	AES192ECB
	AES192CBC
	AES192CTR
	AES192OFB
	AES256ECB
	AES256CBC
	AES256CTR
	AES256OFB
)

// Spec describes the parameters of a Variant.
type Spec struct {
	// Name is the OpenSSL spelling of the cipher, e.g. "aes-128-cbc".
	Name string
	// KeyLen is the key length in bytes.
	KeyLen int
	// IVLen is the IV length in bytes, 0 when the mode takes none.
	IVLen int
	// Mode is the mode of operation.
	Mode CipherMode
}

// NeedsIV reports whether the mode requires an initialization vector.
func (s Spec) NeedsIV() bool {
	return s.IVLen > 0
}

// Padded reports whether the output is PKCS#7 padded to the AES block size.
func (s Spec) Padded() bool {
	return s.Mode.Padded()
}

const (
	keyLen128 = 16
	keyLen192 = 24
	keyLen256 = 32
	blockIV   = 16
)

// specs is indexed by Variant.
var specs = [...]Spec{
	AES128ECB: {Name: "aes-128-ecb", KeyLen: keyLen128, Mode: ModeECB},
	AES128CBC: {Name: "aes-128-cbc", KeyLen: keyLen128, IVLen: blockIV, Mode: ModeCBC},
	AES128CTR: {Name: "aes-128-ctr", KeyLen: keyLen128, IVLen: blockIV, Mode: ModeCTR},
	AES128OFB: {Name: "aes-128-ofb", KeyLen: keyLen128, IVLen: blockIV, Mode: ModeOFB},
	AES192ECB: {Name: "aes-192-ecb", KeyLen: keyLen192, Mode: ModeECB},
	AES192CBC: {Name: "aes-192-cbc", KeyLen: keyLen192, IVLen: blockIV, Mode: ModeCBC},
	AES192CTR: {Name: "aes-192-ctr", KeyLen: keyLen192, IVLen: blockIV, Mode: ModeCTR},
	AES192OFB: {Name: "aes-192-ofb", KeyLen: keyLen192, IVLen: blockIV, Mode: ModeOFB},
	AES256ECB: {Name: "aes-256-ecb", KeyLen: keyLen256, Mode: ModeECB},
	AES256CBC: {Name: "aes-256-cbc", KeyLen: keyLen256, IVLen: blockIV, Mode: ModeCBC},
	AES256CTR: {Name: "aes-256-ctr", KeyLen: keyLen256, IVLen: blockIV, Mode: ModeCTR},
	AES256OFB: {Name: "aes-256-ofb", KeyLen: keyLen256, IVLen: blockIV, Mode: ModeOFB},
}

// Resolve returns the Spec of v.
func Resolve(v Variant) (Spec, error) {
	if !v.Valid() {
		return Spec{}, fmt.Errorf("%w: %d", ErrUnsupportedScheme, uint32(v))
	}

	return specs[v], nil
}

// FromIndex maps a scheme index to its Variant.
func FromIndex(index uint32) (Variant, error) {
	v := Variant(index)
	if !v.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedScheme, index)
	}

	return v, nil
}

// ParseVariant looks up a Variant by its name, ignoring case.
func ParseVariant(name string) (Variant, error) {
	want := strings.ToLower(strings.TrimSpace(name))

	for i, spec := range specs {
		if spec.Name == want {
			return Variant(i), nil //nolint:gosec // bounded by len(specs)
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnsupportedScheme, name)
}

// Variants returns every Variant in index order.
func Variants() []Variant {
	out := make([]Variant, len(specs))
	for i := range specs {
		out[i] = Variant(i) //nolint:gosec // bounded by len(specs)
	}

	return out
}

// Valid reports whether v is part of the registry.
func (v Variant) Valid() bool {
	return int(v) < len(specs)
}

// Index returns the scheme index of v.
func (v Variant) Index() uint32 {
	return uint32(v)
}

// Spec returns the parameters of v, or the zero Spec if v is not valid.
func (v Variant) Spec() Spec {
	if !v.Valid() {
		return Spec{}
	}

	return specs[v]
}

func (v Variant) String() string {
	if !v.Valid() {
		return fmt.Sprintf("Variant(%d)", uint32(v))
	}

	return specs[v].Name
}
