package main

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/spf13/cobra"

	"github.com/rockingship/splash/splash"
)

func newDecodeCmd() *cobra.Command {
	var width, height int

	cmd := &cobra.Command{
		Use:   "decode <input.splash> <output.png>",
		Short: "Decode a Splash packet to a PNG",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if width <= 0 || height <= 0 {
				return fmt.Errorf("--width and --height are required (the Splash wire format carries no dimensions; the host supplies them)")
			}
			return runDecode(args[0], args[1], width, height)
		},
	}

	cmd.Flags().IntVar(&width, "width", 0, "frame width (required)")
	cmd.Flags().IntVar(&height, "height", 0, "frame height (required)")

	return cmd
}

func runDecode(inPath, outPath string, width, height int) error {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("read input %s: %w", inPath, err)
	}

	dec, err := splash.NewDecoder(width, height)
	if err != nil {
		return fmt.Errorf("open decoder: %w", err)
	}

	frame, warnings, err := dec.Decode(data)
	if err != nil {
		return fmt.Errorf("decode %s: %w", inPath, err)
	}
	for _, w := range warnings {
		fmt.Fprintln(os.Stderr, "warning:", w)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output %s: %w", outPath, err)
	}
	defer out.Close()

	if err := png.Encode(out, imageFromFrame(frame)); err != nil {
		return fmt.Errorf("write PNG %s: %w", outPath, err)
	}

	fmt.Printf("%s: %dx%d -> %s\n", inPath, frame.Width, frame.Height, outPath)
	return nil
}

func imageFromFrame(frame *splash.Frame) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, frame.Width, frame.Height))
	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			k := y*frame.Stride + x*4
			o := img.PixOffset(x, y)
			img.Pix[o] = frame.Pix[k]
			img.Pix[o+1] = frame.Pix[k+1]
			img.Pix[o+2] = frame.Pix[k+2]
			img.Pix[o+3] = frame.Pix[k+3]
		}
	}
	return img
}
