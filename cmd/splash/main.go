// Command splash is a host harness for the Splash codec library: it reads
// a PNG, encodes it to a .splash packet (or the reverse), and reports the
// diagnostics the core codec raises along the way. It is the kind of thin
// "hand me RGB0, take my packet" adapter spec.md keeps external to the
// core codec.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "splash",
		Short: "Encode and decode images with the Splash sparse-sample codec",
	}
	cmd.AddCommand(newEncodeCmd())
	cmd.AddCommand(newDecodeCmd())
	return cmd
}
