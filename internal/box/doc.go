// Package box builds and opens encrypted boxes: a list of fields concatenated
// into one buffer and encrypted under a password-derived key.
//
// A Builder collects fields, the password and the AES variant. Build freezes them
// into a Container, whose Encrypt method produces the ciphertext. Decrypt reverses
// the process given the same password and variant. The variant is not stored in
// the ciphertext, so callers must remember it.
package box
