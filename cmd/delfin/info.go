package main

import (
	"fmt"

	"github.com/andresmejia3/delfin/pkg/imgio"
	"github.com/andresmejia3/delfin/pkg/stego"
	"github.com/spf13/cobra"
)

var infoSecret secretFlags

var infoCmd = &cobra.Command{
	Use:   "info [image_path]",
	Short: "Inspect a stego image and display its header",
	Long:  `Reads the header of a steganographic image to report the header version and the size of the hidden payload. Masked images need the passphrase.`,
	Args:  cobra.ExactArgs(1), // Requires exactly one argument: the image path
	RunE: func(cmd *cobra.Command, args []string) error {
		imagePath := args[0]

		img, err := imgio.Load(imagePath)
		if err != nil {
			return err
		}
		opts, err := infoSecret.options(false)
		if err != nil {
			return err
		}

		info, err := stego.GetInfo(img, opts...)
		if err != nil {
			return fmt.Errorf("failed to get info from %s: %w", imagePath, err)
		}

		payloadCipher := "current keystream"
		if info.LegacyPayloadKey {
			payloadCipher = "continued header keystream"
		}

		fmt.Println("Stego Header Information:")
		fmt.Println("-------------------------")
		fmt.Printf("Version:          %d\n", info.Version)
		fmt.Printf("Header Size:      %d bytes\n", info.HeaderSize)
		fmt.Printf("Payload Size:     %d bytes\n", info.PayloadSize)
		fmt.Printf("Capacity:         %d bytes (%dx%d)\n", info.Capacity, info.Width, info.Height)
		fmt.Printf("Masked:           %t\n", info.Encrypted)
		if info.Encrypted {
			fmt.Printf("Payload Cipher:   %s\n", payloadCipher)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
	infoSecret.register(infoCmd)
}
