// Package gameid issues table identifiers: UUIDv7 payloads rendered as
// 26-character Crockford base32 strings, so IDs sort by creation time and
// paste cleanly into URLs and log lines.
package gameid

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"
)

const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Generate returns a fresh game ID. The leading 48 bits carry the current
// Unix millisecond timestamp, the rest is crypto/rand entropy with the
// UUIDv7 version and variant bits forced.
func Generate() string {
	var u [16]byte

	ms := time.Now().UnixMilli()
	u[0] = byte(ms >> 40)
	u[1] = byte(ms >> 32)
	u[2] = byte(ms >> 24)
	u[3] = byte(ms >> 16)
	u[4] = byte(ms >> 8)
	u[5] = byte(ms)

	if _, err := rand.Read(u[6:]); err != nil {
		panic("gameid: entropy source failed: " + err.Error())
	}
	u[6] = (u[6] & 0x0f) | 0x70
	u[8] = (u[8] & 0x3f) | 0x80

	return encode(u)
}

// encode packs 128 bits into 26 base32 characters, five bits at a time,
// most significant bit first. The final character covers bits past the end
// of the payload, which read as zero.
func encode(u [16]byte) string {
	var b strings.Builder
	b.Grow(26)

	for i := 0; i < 26; i++ {
		bit := i * 5
		idx, off := bit/8, bit%8

		var v byte
		if off <= 3 {
			v = (u[idx] >> (3 - off)) & 0x1f
		} else {
			v = (u[idx] << (off - 3)) & 0x1f
			if idx+1 < len(u) {
				v |= u[idx+1] >> (11 - off)
			}
		}
		b.WriteByte(alphabet[v])
	}
	return b.String()
}

// Validate reports whether id is a well-formed game ID. The first
// character encodes the top two bits of a 128-bit value plus padding, so
// it cannot exceed '7'.
func Validate(id string) error {
	if len(id) != 26 {
		return fmt.Errorf("game ID must be 26 characters, got %d", len(id))
	}
	if id[0] > '7' {
		return fmt.Errorf("game ID first character must be 0-7, got %c", id[0])
	}
	for i := 0; i < len(id); i++ {
		if !strings.ContainsRune(alphabet, rune(id[i])) {
			return fmt.Errorf("game ID has invalid character %c at position %d", id[i], i)
		}
	}
	return nil
}
