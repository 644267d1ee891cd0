package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/andresmejia3/delfin/pkg/keystream"
	"github.com/andresmejia3/delfin/pkg/stego"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// PassphraseEnvVar is consulted when --passphrase is not given.
const PassphraseEnvVar = "DELFIN_PASSPHRASE"

var errPassphraseMismatch = errors.New("passphrases do not match")

// secretFlags are shared by every command that reads or writes a masked image.
type secretFlags struct {
	Pass string
	Ask  bool
	KDF  string
}

func (s *secretFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&s.Pass, "passphrase", "p", "", "Passphrase used to mask the hidden data (env "+PassphraseEnvVar+")")
	cmd.Flags().BoolVar(&s.Ask, "ask-pass", false, "Prompt for the passphrase on the terminal")
	cmd.Flags().StringVar(&s.KDF, "kdf", "pbkdf2", "Passphrase to seed derivation: pbkdf2, argon2")
}

// resolve returns the passphrase from the flag, the environment or the
// terminal, in that order. An empty result means no masking.
func (s *secretFlags) resolve(confirm bool) (string, error) {
	if s.Pass != "" {
		return s.Pass, nil
	}
	if env := os.Getenv(PassphraseEnvVar); env != "" {
		return env, nil
	}
	if !s.Ask {
		return "", nil
	}

	pass, err := readPassword("Passphrase: ")
	if err != nil {
		return "", err
	}
	if confirm {
		again, err := readPassword("Confirm passphrase: ")
		if err != nil {
			return "", err
		}
		if !bytes.Equal(pass, again) {
			return "", errPassphraseMismatch
		}
	}
	return string(pass), nil
}

// options turns the flags into stego options.
func (s *secretFlags) options(confirm bool) ([]stego.Option, error) {
	derive, err := keystream.SeedFuncByName(s.KDF)
	if err != nil {
		return nil, err
	}
	pass, err := s.resolve(confirm)
	if err != nil {
		return nil, err
	}
	return []stego.Option{
		stego.WithPassphrase(pass),
		stego.WithCipherSuite(stego.NewCipherSuite(derive)),
	}, nil
}

func readPassword(prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		pass, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		return pass, err
	}

	// Piped input: take the first line.
	line, err := readLine(os.Stdin)
	fmt.Fprintln(os.Stderr)
	return line, err
}

func readLine(r io.Reader) ([]byte, error) {
	line, err := bufio.NewReader(r).ReadBytes('\n')
	if err != nil && err != io.EOF {
		return nil, err
	}
	return bytes.TrimRight(line, "\r\n"), nil
}
