package stego

import (
	"crypto/cipher"

	"github.com/andresmejia3/delfin/pkg/keystream"
)

// StreamFunc builds a keystream from a passphrase.
type StreamFunc func(passphrase string) (cipher.Stream, error)

// CipherSuite assigns keystreams to the two roles of the wire format. Legacy
// masks the header of every version and, for version 0, continues into the
// payload. Current masks the payload of version 1; when nil, Legacy is
// used for that role too.
type CipherSuite struct {
	Legacy  StreamFunc
	Current StreamFunc
}

// Derivation domains of the two roles.
const (
	DomainLegacy  = "legacy"
	DomainCurrent = "current"
)

// NewCipherSuite derives both roles from derive, each under its own domain.
func NewCipherSuite(derive keystream.SeedFunc) CipherSuite {
	return CipherSuite{
		Legacy:  generatorFunc(derive, DomainLegacy),
		Current: generatorFunc(derive, DomainCurrent),
	}
}

// DefaultCipherSuite uses PBKDF2 seeds.
func DefaultCipherSuite() CipherSuite {
	return NewCipherSuite(keystream.PBKDF2Seed)
}

func generatorFunc(derive keystream.SeedFunc, domain string) StreamFunc {
	return func(passphrase string) (cipher.Stream, error) {
		return keystream.FromPassphrase(derive, passphrase, domain)
	}
}

func (s CipherSuite) legacy(passphrase string) (cipher.Stream, error) {
	if s.Legacy == nil {
		return nil, newError(ErrLegacyUnsupported, "legacy format unsupported",
			"no keystream is configured for the header cipher")
	}
	return s.Legacy(passphrase)
}

func (s CipherSuite) current(passphrase string) (cipher.Stream, error) {
	if s.Current == nil {
		return s.legacy(passphrase)
	}
	return s.Current(passphrase)
}
