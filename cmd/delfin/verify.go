package main

import (
	"fmt"

	"github.com/andresmejia3/delfin/pkg/imgio"
	"github.com/andresmejia3/delfin/pkg/stego"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	verifyFlags struct {
		Image  string
		Secret secretFlags
	}
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify that an image carries a readable hidden file",
	Long:  `Extracts the hidden payload without writing it and reports its size and SHA-256 digest. Sealed payloads are also checked with their Reed-Solomon parity.`,
	Run: func(cmd *cobra.Command, args []string) {
		img, err := imgio.Load(verifyFlags.Image)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load image")
		}
		opts, err := verifyFlags.Secret.options(false)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to read passphrase")
		}

		result, err := stego.Verify(cmd.Context(), img, opts...)
		if err != nil {
			log.Fatal().Err(err).Msg("Verification failed")
		}

		fmt.Println("✅ Image verification successful!")
		fmt.Printf("Version:          %d\n", result.Version)
		fmt.Printf("Payload Size:     %d bytes\n", result.PayloadSize)
		fmt.Printf("Pixels Used:      %d\n", result.PixelsUsed)
		fmt.Printf("SHA-256:          %s\n", result.SHA256)

		if result.Sealed {
			fmt.Printf("Envelope:         ok (%d bytes inside)\n", result.InnerSize)
		}
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().StringVarP(&verifyFlags.Image, "image-path", "i", "", "Path to image (required)")
	verifyCmd.MarkFlagRequired("image-path")
	verifyFlags.Secret.register(verifyCmd)
}
