package kle2kmk

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dasdy/kle2kmk/keymap"
	"github.com/dasdy/kle2kmk/layout"
	"github.com/dasdy/kle2kmk/model"
)

// checkCmd represents the check command.
var checkCmd = &cobra.Command{
	Use:   "check [keymap.py]",
	Short: "Summarize a generated keymap",
	Long:  `Parse a keymap.py written by kle2kmk and print the layers it defines with their key counts.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "keymap.py"
		if len(args) > 0 {
			path = args[0]
		}

		file, err := layout.OpenPath(path)
		if err != nil {
			return err
		}
		defer file.Close()

		km, err := keymap.Parse(file)
		if err != nil {
			return fmt.Errorf("could not parse %s: %w", path, err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s: %d layers\n", path, len(km.Layers))

		for _, layer := range km.Layers {
			transparent := 0

			for _, code := range layer.Bindings {
				if code == model.KeycodeTransparent {
					transparent++
				}
			}

			fmt.Fprintf(out, "  %-8s %3d keys, %3d transparent\n", layer.Name, len(layer.Bindings), transparent)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
