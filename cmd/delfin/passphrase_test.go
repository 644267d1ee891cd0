package main

import (
	"strings"
	"testing"
)

func TestResolvePassphraseOrder(t *testing.T) {
	t.Setenv(PassphraseEnvVar, "from-env")

	s := secretFlags{Pass: "from-flag"}
	if got, err := s.resolve(false); err != nil || got != "from-flag" {
		t.Errorf("flag: got %q, %v", got, err)
	}

	s = secretFlags{}
	if got, err := s.resolve(false); err != nil || got != "from-env" {
		t.Errorf("env: got %q, %v", got, err)
	}

	t.Setenv(PassphraseEnvVar, "")
	if got, err := s.resolve(false); err != nil || got != "" {
		t.Errorf("none: got %q, %v", got, err)
	}
}

func TestSecretFlagsUnknownKDF(t *testing.T) {
	s := secretFlags{Pass: "x", KDF: "md5"}
	if _, err := s.options(false); err == nil {
		t.Error("expected error for unknown kdf")
	}

	s.KDF = "argon2"
	opts, err := s.options(false)
	if err != nil {
		t.Fatalf("options failed: %v", err)
	}
	if len(opts) != 2 {
		t.Errorf("got %d options, want 2", len(opts))
	}
}

func TestReadLine(t *testing.T) {
	tests := map[string]string{
		"secret\nrest":  "secret",
		"secret\r\n":    "secret",
		"no newline":    "no newline",
		"":              "",
		"\nsecond line": "",
	}
	for in, want := range tests {
		got, err := readLine(strings.NewReader(in))
		if err != nil {
			t.Fatalf("readLine(%q) failed: %v", in, err)
		}
		if string(got) != want {
			t.Errorf("readLine(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNewGenerator(t *testing.T) {
	defer func() { ksFlags.Pass, ksFlags.Seed, ksFlags.KDF, ksFlags.Domain = "", "", "", "" }()

	ksFlags.Pass, ksFlags.Seed = "", ""
	if _, err := newGenerator(); err == nil {
		t.Error("expected error without passphrase or seed")
	}

	ksFlags.Pass, ksFlags.Seed = "p", "00"
	if _, err := newGenerator(); err == nil {
		t.Error("expected error with both passphrase and seed")
	}

	ksFlags.Pass, ksFlags.Seed = "", "zz"
	if _, err := newGenerator(); err == nil {
		t.Error("expected error for non-hex seed")
	}

	ksFlags.Seed = "0102"
	if _, err := newGenerator(); err == nil {
		t.Error("expected error for short seed")
	}

	// Matches the keystream package known answer for an all-ones seed.
	ksFlags.Seed = strings.Repeat("01", 16)
	gen, err := newGenerator()
	if err != nil {
		t.Fatalf("newGenerator failed: %v", err)
	}
	if b := gen.NextByte(); b != 0xa2 {
		t.Errorf("first byte = %#x, want 0xa2", b)
	}

	ksFlags.Pass, ksFlags.Seed, ksFlags.KDF = "pass", "", "pbkdf2"
	if _, err := newGenerator(); err != nil {
		t.Errorf("passphrase generator failed: %v", err)
	}
}
