package keystream

import (
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"
)

// SeedFunc turns a passphrase into a Generator seed. The domain separates
// generators derived from the same passphrase for different roles. A SeedFunc
// must be deterministic and return exactly SeedSize bytes.
type SeedFunc func(passphrase, domain string) ([]byte, error)

const (
	saltPrefix       = "delfin/"
	pbkdf2Iterations = 4096

	argon2Time    = 1
	argon2Memory  = 64 * 1024
	argon2Threads = 4
)

// PBKDF2Seed derives a seed with PBKDF2-HMAC-SHA256.
func PBKDF2Seed(passphrase, domain string) ([]byte, error) {
	return pbkdf2.Key([]byte(passphrase), []byte(saltPrefix+domain), pbkdf2Iterations, SeedSize, sha256.New), nil
}

// Argon2Seed derives a seed with Argon2id.
func Argon2Seed(passphrase, domain string) ([]byte, error) {
	return argon2.IDKey([]byte(passphrase), []byte(saltPrefix+domain), argon2Time, argon2Memory, argon2Threads, SeedSize), nil
}

// SeedFuncByName resolves the KDF names accepted on the command line.
func SeedFuncByName(name string) (SeedFunc, error) {
	switch name {
	case "", "pbkdf2":
		return PBKDF2Seed, nil
	case "argon2", "argon2id":
		return Argon2Seed, nil
	}
	return nil, fmt.Errorf("unknown key derivation %q (want pbkdf2 or argon2)", name)
}

// FromPassphrase derives a seed for domain and builds a Generator from it.
func FromPassphrase(derive SeedFunc, passphrase, domain string) (*Generator, error) {
	seed, err := derive(passphrase, domain)
	if err != nil {
		return nil, err
	}
	return New(seed)
}
