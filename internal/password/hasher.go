package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Params holds the Argon2id cost parameters baked into every encoded hash.
type Params struct {
	Memory     uint32 // KiB
	Time       uint32
	Threads    uint8
	SaltLength uint32
	KeyLength  uint32
}

// DefaultParams follows the current OWASP recommendation for Argon2id.
func DefaultParams() Params {
	return Params{
		Memory:     64 * 1024,
		Time:       1,
		Threads:    4,
		SaltLength: 16,
		KeyLength:  32,
	}
}

var errMalformedHash = errors.New("malformed password hash")

// maxMemoryKiB caps the memory parameter accepted from stored hashes, so a
// tampered row cannot make Verify allocate gigabytes.
const maxMemoryKiB = 4 * 1024 * 1024

// Hasher hashes and verifies passwords with Argon2id. It holds no mutable
// state: construct one at startup and share it freely.
//
// Encoded hashes use the PHC string format:
//
//	$argon2id$v=19$m=<memory>,t=<time>,p=<threads>$<b64 salt>$<b64 key>
//
// so each hash self-describes the parameters needed to verify it later.
type Hasher struct {
	params Params
}

// NewHasher creates a Hasher with the given cost parameters.
func NewHasher(params Params) *Hasher {
	return &Hasher{params: params}
}

// Hash derives an Argon2id key from plaintext with a fresh random salt and
// returns the PHC-encoded string. Two calls with the same plaintext yield
// different encodings.
func (h *Hasher) Hash(plaintext string) (string, error) {
	salt := make([]byte, h.params.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(plaintext), salt, h.params.Time, h.params.Memory, h.params.Threads, h.params.KeyLength)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.params.Memory, h.params.Time, h.params.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)
	return encoded, nil
}

// Verify reports whether plaintext matches the encoded hash. A malformed or
// unsupported hash is indistinguishable from a wrong password: both return
// false. The key comparison is constant time.
func (h *Hasher) Verify(plaintext, encoded string) bool {
	params, salt, key, err := decode(encoded)
	if err != nil {
		return false
	}

	computed := argon2.IDKey([]byte(plaintext), salt, params.Time, params.Memory, params.Threads, uint32(len(key)))
	return subtle.ConstantTimeCompare(computed, key) == 1
}

// IsEncoded reports whether encoded parses as an Argon2id hash this package
// produced. Callers use it to flag stored credentials that did not come from
// Hash, e.g. plaintext rows migrated from legacy data.
func IsEncoded(encoded string) bool {
	_, _, _, err := decode(encoded)
	return err == nil
}

func decode(encoded string) (Params, []byte, []byte, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return Params{}, nil, nil, errMalformedHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return Params{}, nil, nil, errMalformedHash
	}
	if version != argon2.Version {
		return Params{}, nil, nil, errMalformedHash
	}

	var p Params
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.Memory, &p.Time, &p.Threads); err != nil {
		return Params{}, nil, nil, errMalformedHash
	}
	// argon2.IDKey panics on zero time or parallelism; those values can only
	// come from a tampered row, so treat them as malformed.
	if p.Time < 1 || p.Threads < 1 {
		return Params{}, nil, nil, errMalformedHash
	}
	if p.Memory < 8 || p.Memory > maxMemoryKiB {
		return Params{}, nil, nil, errMalformedHash
	}

	salt, err := base64.RawStdEncoding.Strict().DecodeString(parts[4])
	if err != nil {
		return Params{}, nil, nil, errMalformedHash
	}
	key, err := base64.RawStdEncoding.Strict().DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return Params{}, nil, nil, errMalformedHash
	}

	p.SaltLength = uint32(len(salt))
	p.KeyLength = uint32(len(key))
	return p, salt, key, nil
}
