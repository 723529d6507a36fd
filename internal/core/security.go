// AngelaMos | 2026
// security.go

package core

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/crypto/argon2"
)

const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
	saltLength   = 16
)

var ErrInvalidHash = errors.New("invalid password hash")

func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	hash := argon2.IDKey(
		[]byte(password),
		salt,
		argonTime,
		argonMemory,
		argonThreads,
		argonKeyLen,
	)

	return encodeHash(argonParams{
		memory:  argonMemory,
		time:    argonTime,
		threads: argonThreads,
		keyLen:  argonKeyLen,
	}, salt, hash), nil
}

func VerifyPassword(password, encodedHash string) (bool, error) {
	params, salt, hash, err := decodeHash(encodedHash)
	if err != nil {
		return false, err
	}

	candidate := argon2.IDKey(
		[]byte(password),
		salt,
		params.time,
		params.memory,
		params.threads,
		params.keyLen,
	)

	return subtle.ConstantTimeCompare(hash, candidate) == 1, nil
}

// VerifyPasswordWithRehash returns a replacement hash when the stored one
// was produced with different argon2 parameters.
func VerifyPasswordWithRehash(
	password, encodedHash string,
) (bool, string, error) {
	valid, err := VerifyPassword(password, encodedHash)
	if err != nil || !valid {
		return false, "", err
	}

	if !NeedsRehash(encodedHash) {
		return true, "", nil
	}

	newHash, err := HashPassword(password)
	if err != nil {
		//nolint:nilerr // password verified; rehash failure is non-critical
		return true, "", nil
	}

	return true, newHash, nil
}

var dummyHash = sync.OnceValue(func() string {
	hash, err := HashPassword("campus-api-dummy-credential")
	if err != nil {
		panic(fmt.Sprintf("security: generate dummy hash: %v", err))
	}
	return hash
})

// VerifyPasswordTimingSafe runs a full argon2 verification even when the
// account does not exist, so unknown emails cost the same as bad passwords.
func VerifyPasswordTimingSafe(
	password string,
	encodedHash *string,
) (bool, string, error) {
	missing := encodedHash == nil || *encodedHash == ""

	target := dummyHash()
	if !missing {
		target = *encodedHash
	}

	valid, newHash, err := VerifyPasswordWithRehash(password, target)
	if missing {
		return false, "", nil
	}

	return valid, newHash, err
}

type argonParams struct {
	memory  uint32
	time    uint32
	threads uint8
	keyLen  uint32
}

func encodeHash(p argonParams, salt, hash []byte) string {
	return fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		p.memory,
		p.time,
		p.threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	)
}

func decodeHash(encodedHash string) (*argonParams, []byte, []byte, error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 {
		return nil, nil, nil, fmt.Errorf("%w: wrong segment count", ErrInvalidHash)
	}

	if parts[1] != "argon2id" {
		return nil, nil, nil, fmt.Errorf(
			"%w: unsupported algorithm %q", ErrInvalidHash, parts[1],
		)
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return nil, nil, nil, fmt.Errorf("%w: version: %w", ErrInvalidHash, err)
	}

	if version != argon2.Version {
		return nil, nil, nil, fmt.Errorf(
			"%w: incompatible version %d", ErrInvalidHash, version,
		)
	}

	params := &argonParams{}
	_, err := fmt.Sscanf(
		parts[3],
		"m=%d,t=%d,p=%d",
		&params.memory,
		&params.time,
		&params.threads,
	)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: params: %w", ErrInvalidHash, err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: salt: %w", ErrInvalidHash, err)
	}

	hash, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: hash: %w", ErrInvalidHash, err)
	}

	//nolint:gosec // G115: argon2id key length is 32 bytes
	params.keyLen = uint32(len(hash))

	return params, salt, hash, nil
}

func NeedsRehash(encodedHash string) bool {
	params, _, _, err := decodeHash(encodedHash)
	if err != nil {
		return true
	}

	return params.memory != argonMemory ||
		params.time != argonTime ||
		params.threads != argonThreads ||
		params.keyLen != argonKeyLen
}
