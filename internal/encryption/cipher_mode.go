package encryption

// CipherMode is the block cipher mode of operation used by a variant.
type CipherMode byte

const (
	// ModeECB encrypts each padded block independently.
	ModeECB CipherMode = iota
	// ModeCBC chains padded blocks starting from the IV.
	ModeCBC
	// ModeCTR XORs the input with an encrypted big-endian counter seeded by the IV.
	ModeCTR
	// ModeOFB XORs the input with the repeatedly encrypted IV.
	ModeOFB
)

func (m CipherMode) String() string {
	switch m {
	case ModeECB:
		return "ecb"
	case ModeCBC:
		return "cbc"
	case ModeCTR:
		return "ctr"
	case ModeOFB:
		return "ofb"
	default:
		return "unknown"
	}
}

// Padded reports whether the mode operates on whole blocks with PKCS#7 padding.
func (m CipherMode) Padded() bool {
	return m == ModeECB || m == ModeCBC
}

// Stream reports whether the mode produces output of the same length as its input.
func (m CipherMode) Stream() bool {
	return m == ModeCTR || m == ModeOFB
}
