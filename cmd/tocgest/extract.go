package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dgallion1/tocgest/internal/toc"
)

var extractOutput string

var extractCmd = &cobra.Command{
	Use:   "extract <input.pdf>",
	Short: "Extract a PDF's table of contents to a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := slog.New(slog.NewJSONHandler(os.Stderr, nil))
		return toc.ExtractFile(args[0], extractOutput, log)
	},
}

func init() {
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "toc.json", "output JSON path")
}
