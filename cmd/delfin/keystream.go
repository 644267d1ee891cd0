package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"

	"github.com/andresmejia3/delfin/pkg/keystream"
	"github.com/andresmejia3/delfin/pkg/stego"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	ksFlags struct {
		Pass   string
		Seed   string
		KDF    string
		Domain string
		Count  int
	}
)

var keystreamCmd = &cobra.Command{
	Use:   "keystream",
	Short: "Dump keystream bytes for a passphrase or raw seed",
	Run: func(cmd *cobra.Command, args []string) {
		if ksFlags.Count < 0 {
			log.Fatal().Msg("number of bytes cannot be negative")
		}

		gen, err := newGenerator()
		if err != nil {
			log.Fatal().Err(err).Msg("Error creating keystream")
		}

		out := make([]byte, ksFlags.Count)
		for i := range out {
			out[i] = gen.NextByte()
		}
		fmt.Fprint(os.Stdout, hex.Dump(out))
	},
}

func newGenerator() (*keystream.Generator, error) {
	if (ksFlags.Pass == "") == (ksFlags.Seed == "") {
		return nil, errors.New("exactly one of passphrase or seed is required")
	}

	if ksFlags.Seed != "" {
		seed, err := hex.DecodeString(ksFlags.Seed)
		if err != nil {
			return nil, fmt.Errorf("seed must be hex: %w", err)
		}
		return keystream.New(seed)
	}

	derive, err := keystream.SeedFuncByName(ksFlags.KDF)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("kdf", ksFlags.KDF).Str("domain", ksFlags.Domain).Msg("Deriving seed")
	return keystream.FromPassphrase(derive, ksFlags.Pass, ksFlags.Domain)
}

func init() {
	rootCmd.AddCommand(keystreamCmd)

	keystreamCmd.Flags().StringVarP(&ksFlags.Pass, "passphrase", "p", "", "Passphrase to derive the seed from")
	keystreamCmd.Flags().StringVar(&ksFlags.Seed, "seed", "", "Raw 16-byte seed as hex")
	keystreamCmd.Flags().StringVar(&ksFlags.KDF, "kdf", "pbkdf2", "Passphrase to seed derivation: pbkdf2, argon2")
	keystreamCmd.Flags().StringVar(&ksFlags.Domain, "domain", stego.DomainCurrent, "Derivation domain: "+stego.DomainLegacy+" or "+stego.DomainCurrent)
	keystreamCmd.Flags().IntVarP(&ksFlags.Count, "num-bytes", "n", 32, "Number of keystream bytes to print")
}
