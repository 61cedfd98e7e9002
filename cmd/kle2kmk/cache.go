package kle2kmk

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dasdy/kle2kmk/db"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage cached normalizations",
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Drop every cached normalization",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		path := cachePath()
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(cmd.OutOrStdout(), "no cache at %s\n", path)

			return nil
		}

		storage, err := db.NewStorageFromPath(path)
		if err != nil {
			return err
		}
		defer storage.Close()

		removed, err := storage.Clear()
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "removed %d cached layouts from %s\n", removed, path)

		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}
