package encryption

import (
	"crypto/cipher"
)

func encryptECB(block cipher.Block, data []byte) []byte {
	ciphertext := make([]byte, len(data))
	size := block.BlockSize()

	for i := 0; i < len(data); i += size {
		block.Encrypt(ciphertext[i:i+size], data[i:i+size])
	}

	return ciphertext
}

func decryptECB(block cipher.Block, data []byte) []byte {
	plaintext := make([]byte, len(data))
	size := block.BlockSize()

	for i := 0; i < len(data); i += size {
		block.Decrypt(plaintext[i:i+size], data[i:i+size])
	}

	return plaintext
}

func encryptCBC(block cipher.Block, iv, data []byte) []byte {
	ciphertext := make([]byte, len(data))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, data)

	return ciphertext
}

func decryptCBC(block cipher.Block, iv, data []byte) []byte {
	plaintext := make([]byte, len(data))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, data)

	return plaintext
}

// xorStream runs a CTR or OFB keystream over data. The operation is its own inverse.
func xorStream(mode CipherMode, block cipher.Block, iv, data []byte) []byte {
	var stream cipher.Stream

	switch mode {
	case ModeCTR:
		stream = cipher.NewCTR(block, iv)
	default:
		stream = cipher.NewOFB(block, iv) //nolint:staticcheck // OFB output must stay byte-compatible
	}

	out := make([]byte, len(data))
	stream.XORKeyStream(out, data)

	return out
}
