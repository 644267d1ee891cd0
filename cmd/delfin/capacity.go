package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/andresmejia3/delfin/pkg/imgio"
	"github.com/andresmejia3/delfin/pkg/stego"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var capacityCmd = &cobra.Command{
	Use:   "capacity [image-path]",
	Short: "Calculate the storage capacity of an image",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		img, err := imgio.Load(args[0])
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load image")
		}

		bounds := img.Bounds()
		w, h := bounds.Dx(), bounds.Dy()

		wtr := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(wtr, "Width\tHeight\tPixels\tTotal (Bytes)\tHeader (Bytes)\tPayload (Bytes)")
		fmt.Fprintln(wtr, "-----\t------\t------\t-------------\t--------------\t---------------")
		fmt.Fprintf(wtr, "%d\t%d\t%d\t%d\t%d\t%d\n",
			w, h, w*h, stego.Capacity(w, h), stego.HeaderSize, stego.PayloadCapacity(w, h))
		wtr.Flush()
	},
}

func init() {
	rootCmd.AddCommand(capacityCmd)
}
