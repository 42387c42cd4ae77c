package splash

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer formats diagnostic text with locale-aware number grouping, so a
// warning like "Inaccurate 12,345 final pixels" reads the same way
// regardless of how big a frame the caller threw at the codec.
var printer = message.NewPrinter(language.English)

// WarningKind distinguishes the two non-fatal conditions spec.md §7 names.
type WarningKind int

const (
	// WarningIncompleteScanLine fires when the decoder's bitstream ends
	// before the engine reports "terminate".
	WarningIncompleteScanLine WarningKind = iota
	// WarningInaccurateFinalPixels fires when Options.PPF == 1 (the
	// encoder intended to fully resolve the frame) and the canvas still
	// disagrees with the source frame on at least one channel.
	WarningInaccurateFinalPixels
)

// Warning is a single non-fatal diagnostic raised while encoding or
// decoding a frame. Warnings never abort processing; the caller decides
// whether to surface them.
type Warning struct {
	Kind    WarningKind
	Frame   int
	Message string
}

func (w Warning) String() string {
	return w.Message
}

func newIncompleteScanLineWarning(frame int) Warning {
	return Warning{
		Kind:    WarningIncompleteScanLine,
		Frame:   frame,
		Message: printer.Sprintf("Incomplete scan line"),
	}
}

func newInaccurateFinalPixelsWarning(frame, mismatches int) Warning {
	return Warning{
		Kind:    WarningInaccurateFinalPixels,
		Frame:   frame,
		Message: printer.Sprintf("Inaccurate %d final pixels", mismatches),
	}
}
