package main

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/spf13/cobra"

	"github.com/rockingship/splash/splash"
)

func newEncodeCmd() *cobra.Command {
	var radius int
	var ppf, ppk float64

	cmd := &cobra.Command{
		Use:   "encode <input.png> <output.splash>",
		Short: "Encode a single image frame to a Splash packet",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(args[0], args[1], splash.Options{Radius: radius, PPF: ppf, PPK: ppk})
		},
	}

	cmd.Flags().IntVar(&radius, "radius", 5, "brush radius in pixels")
	cmd.Flags().Float64Var(&ppf, "ppf", 1, "pixel budget divisor for non-initial frames")
	cmd.Flags().Float64Var(&ppk, "ppk", 2, "pixel budget divisor for the first frame")

	return cmd
}

func runEncode(inPath, outPath string, opts splash.Options) error {
	in, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("open input %s: %w", inPath, err)
	}
	defer in.Close()

	img, _, err := image.Decode(in)
	if err != nil {
		return fmt.Errorf("decode input %s: %w", inPath, err)
	}

	frame := frameFromImage(img)

	enc, err := splash.NewEncoder(frame.Width, frame.Height, opts)
	if err != nil {
		return fmt.Errorf("open encoder: %w", err)
	}

	pkt, warnings, err := enc.Encode(frame)
	if err != nil {
		return fmt.Errorf("encode %s: %w", inPath, err)
	}
	for _, w := range warnings {
		fmt.Fprintln(os.Stderr, "warning:", w)
	}

	if err := os.WriteFile(outPath, pkt.Data, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", outPath, err)
	}

	fmt.Printf("%s: %dx%d -> %d bytes\n", inPath, frame.Width, frame.Height, len(pkt.Data))
	return nil
}

// frameFromImage converts a decoded image.Image to the codec's RGB0
// boundary format, following the same stdlib image conversion approach
// the teacher repo uses at its own host boundary (examples/export_png).
func frameFromImage(img image.Image) *splash.Frame {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	frame := splash.NewFrame(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			k := y*frame.Stride + x*4
			frame.Pix[k] = byte(r >> 8)
			frame.Pix[k+1] = byte(g >> 8)
			frame.Pix[k+2] = byte(b >> 8)
			frame.Pix[k+3] = 255
		}
	}
	return frame
}
