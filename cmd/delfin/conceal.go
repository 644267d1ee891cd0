package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/andresmejia3/delfin/pkg/envelope"
	"github.com/andresmejia3/delfin/pkg/imgio"
	"github.com/andresmejia3/delfin/pkg/stego"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	concealFlags struct {
		Image    string
		Msg      string
		File     string
		Out      string
		Version  int
		DryRun   bool
		Compress bool
		ECC      bool
		Secret   secretFlags
	}
)

var concealCmd = &cobra.Command{
	Use:   "conceal",
	Short: "Conceal a file in an image",
	Run: func(cmd *cobra.Command, args []string) {
		if concealFlags.Msg != "" && concealFlags.File != "" {
			log.Fatal().Msg("message and file flags cannot both be provided")
		}
		if concealFlags.Msg == "" && concealFlags.File == "" {
			log.Fatal().Msg("one of message or file is required")
		}
		if concealFlags.Version != int(stego.LegacyVersion) && concealFlags.Version != int(stego.CurrentVersion) {
			log.Fatal().Int("version", concealFlags.Version).Msg("header version can only be 0 or 1")
		}

		// Default output handling
		if concealFlags.Out == "" {
			concealFlags.Out = filepath.Join("output", "hidden.png")
		}
		if _, err := imgio.FormatFromPath(concealFlags.Out); err != nil {
			log.Fatal().Err(err).Str("output", concealFlags.Out).Msg("Unsupported output format")
		}

		payload, err := readPayload()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to read payload")
		}
		if concealFlags.Compress || concealFlags.ECC {
			payload, err = envelope.Seal(payload, envelope.Options{
				Compress: concealFlags.Compress,
				ECC:      concealFlags.ECC,
			})
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to seal payload")
			}
		}

		img, err := imgio.Load(concealFlags.Image)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load image")
		}

		bounds := img.Bounds()
		capacity := stego.PayloadCapacity(bounds.Dx(), bounds.Dy())
		log.Debug().Int("payload", len(payload)).Int("capacity", capacity).Msg("Checking capacity")

		if concealFlags.DryRun {
			if len(payload) > capacity {
				log.Fatal().Int("payload", len(payload)).Int("capacity", capacity).Msg("Payload does not fit")
			}
			fmt.Printf("Payload of %d bytes fits (capacity %d bytes, %.1f%% used)\n",
				len(payload), capacity, 100*float64(len(payload))/float64(max(capacity, 1)))
			return
		}

		opts, err := concealFlags.Secret.options(true)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to read passphrase")
		}
		opts = append(opts,
			stego.WithVersion(byte(concealFlags.Version)),
			stego.WithProgress(os.Stderr),
		)

		out, err := stego.Encrypt(cmd.Context(), img, payload, opts...)
		if err != nil {
			log.Fatal().Err(err).Int("payload", len(payload)).Int("capacity", capacity).Msg("Failed to conceal file")
		}

		if err := imgio.Save(concealFlags.Out, out); err != nil {
			log.Fatal().Err(err).Msg("Failed to save image")
		}
		log.Info().Str("output", concealFlags.Out).Int("bytes", len(payload)).Msg("File concealed")
	},
}

func readPayload() ([]byte, error) {
	if concealFlags.Msg != "" {
		return []byte(concealFlags.Msg), nil
	}
	if concealFlags.File == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(concealFlags.File)
}

func init() {
	rootCmd.AddCommand(concealCmd)

	concealCmd.Flags().StringVarP(&concealFlags.Image, "image-path", "i", "", "Path to cover image (required)")
	concealCmd.MarkFlagRequired("image-path")
	concealCmd.Flags().StringVarP(&concealFlags.Msg, "message", "m", "", "Message you want to conceal")
	concealCmd.Flags().StringVarP(&concealFlags.File, "file", "f", "", "Path to file to conceal. Use '-' for stdin.")
	concealCmd.Flags().StringVarP(&concealFlags.Out, "output", "o", "", "Output path for the image (png, bmp or tiff)")
	concealCmd.Flags().IntVar(&concealFlags.Version, "version", int(stego.CurrentVersion), "Header version to write (0 or 1)")
	concealCmd.Flags().BoolVar(&concealFlags.DryRun, "dry-run", false, "Check if the file fits without encoding")
	concealCmd.Flags().BoolVarP(&concealFlags.Compress, "compress", "z", false, "Compress the file with zstd before embedding")
	concealCmd.Flags().BoolVar(&concealFlags.ECC, "ecc", false, "Protect the file with Reed-Solomon parity")
	concealFlags.Secret.register(concealCmd)
}
