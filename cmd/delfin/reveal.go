package main

import (
	"os"

	"github.com/andresmejia3/delfin/pkg/envelope"
	"github.com/andresmejia3/delfin/pkg/imgio"
	"github.com/andresmejia3/delfin/pkg/stego"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	revealFlags struct {
		Image  string
		Out    string
		Raw    bool
		Secret secretFlags
	}
)

var revealCmd = &cobra.Command{
	Use:   "reveal",
	Short: "Reveal a file hidden in an image",
	Run: func(cmd *cobra.Command, args []string) {
		img, err := imgio.Load(revealFlags.Image)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load image")
		}

		opts, err := revealFlags.Secret.options(false)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to read passphrase")
		}
		opts = append(opts, stego.WithProgress(os.Stderr))

		payload, err := stego.Decrypt(cmd.Context(), img, opts...)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to reveal file")
		}

		if !revealFlags.Raw && envelope.IsSealed(payload) {
			if payload, err = envelope.Open(payload); err != nil {
				log.Fatal().Err(err).Msg("Failed to open envelope")
			}
		}

		if err := writeRevealed(revealFlags.Out, payload); err != nil {
			log.Fatal().Err(err).Msg("Failed to write revealed file")
		}
		log.Debug().Int("bytes", len(payload)).Msg("File revealed")
	},
}

// writeRevealed writes payload to path, or to stdout when path is empty.
// The file is closed before returning so a failed flush is reported.
func writeRevealed(path string, payload []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(payload)
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := f.Write(payload); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func init() {
	rootCmd.AddCommand(revealCmd)

	revealCmd.Flags().StringVarP(&revealFlags.Image, "image-path", "i", "", "Path to image (required)")
	revealCmd.MarkFlagRequired("image-path")
	revealCmd.Flags().StringVarP(&revealFlags.Out, "output", "o", "", "Output path for revealed file (default stdout)")
	revealCmd.Flags().BoolVar(&revealFlags.Raw, "raw", false, "Write the payload as stored, without opening an envelope")
	revealFlags.Secret.register(revealCmd)
}
