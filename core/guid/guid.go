// Package guid generates IFC globally unique identifiers: 22-character
// strings over the fixed 64-symbol IFC alphabet, compressed from 128 bits.
// These are identity tokens, not a security primitive.
package guid

import (
	"github.com/google/uuid"
	"github.com/zeebo/blake3"
)

// alphabet is the IFC base-64 character set (not RFC 4648 base64).
const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz_$"

// Length is the fixed length of an encoded GUID.
const Length = 22

// Random returns a fresh GUID from 128 random bits. Used for entities
// with no natural identity, chiefly relationship entities.
func Random() string {
	u := uuid.New()
	return encode(u[:])
}

// Stable returns a deterministic GUID derived from key and suffix. Equal
// inputs always yield the same GUID, so repeated export of the same
// drawing reuses identifiers for its domain objects. Collisions are not
// cryptographically excluded; this is an identity convention, not a
// security boundary.
func Stable(key, suffix string) string {
	h := blake3.New()
	h.Write([]byte(key))
	h.Write([]byte{0})
	h.Write([]byte(suffix))
	sum := h.Sum(nil)
	return encode(sum[:16])
}

// encode compresses 16 bytes into 22 base-64 digits, most significant
// first. 22 digits hold 132 bits, so the leading digit carries only the
// top 2 bits and is always one of "0123".
func encode(data []byte) string {
	var buf [16]byte
	copy(buf[:], data)

	var out [Length]byte
	for i := Length - 1; i >= 0; i-- {
		rem := 0
		for j := 0; j < len(buf); j++ {
			cur := rem<<8 | int(buf[j])
			buf[j] = byte(cur >> 6)
			rem = cur & 63
		}
		out[i] = alphabet[rem]
	}
	return string(out[:])
}
