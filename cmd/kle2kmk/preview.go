package kle2kmk

import (
	"github.com/spf13/cobra"

	"github.com/dasdy/kle2kmk/convert"
	"github.com/dasdy/kle2kmk/web"
)

var (
	port int
	dev  bool
)

// previewCmd represents the preview command.
var previewCmd = &cobra.Command{
	Use:   "preview [input]",
	Short: "Show the converted layers in a browser",
	Long: `Convert the layout in memory and serve an HTML drawing of the four layers,
with each key placed at its keyboard-layout-editor position. Nothing is written to disk.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		normalizer, closeCache := buildNormalizer()
		defer closeCache()

		result, err := convert.Load(cmd.Context(), inputArg(args), normalizer)
		if err != nil {
			return err
		}

		return web.StartServer(port, result, dev)
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().IntVarP(&port, "port", "p", 9000,
		"Port on which server should be watching")

	previewCmd.Flags().BoolVar(&dev,
		"dev",
		false,
		"Enable developer mode")
}
