// Package encryption provides the AES variants used by encrypted boxes.
//
// Twelve variants are supported: AES with 128, 192 or 256 bit keys in ECB, CBC,
// CTR or OFB mode. Keys are derived from a password with a single unsalted SHA-256
// pass and every mode that needs an IV uses the same fixed IV, so output is
// deterministic and byte-compatible with the OpenSSL ciphers of the same name.
// Nothing in this package authenticates ciphertexts.
package encryption
