package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tocgest",
	Short: "Table-of-contents extraction for PDFs and other documents",
	Long: `Tocgest extracts a hierarchical table of contents from documents.

For PDFs it walks the outline (bookmark) tree, resolves each entry's
destination to a physical page number, and infers per-section page
ranges. Markdown, HTML and DOCX inputs derive the hierarchy from
heading structure instead.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}
