package encryption

// Fixed initialization vectors. Ciphertexts are only compatible with existing
// encrypted boxes when these stay byte-identical.
var (
	iv16 = [16]byte{0, 1, 2, 3, 4, 5, 6, 7, 0, 1, 2, 3, 4, 5, 6, 7}
	iv12 = [12]byte{0, 1, 2, 3, 4, 5, 6, 7, 0, 1, 2, 3}
)

// fixedIV returns a fresh copy of the fixed IV of the requested length,
// or nil when no IV of that length is defined.
func fixedIV(length int) []byte {
	switch length {
	case len(iv16):
		iv := iv16

		return iv[:]
	case len(iv12):
		iv := iv12

		return iv[:]
	default:
		return nil
	}
}
