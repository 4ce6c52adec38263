package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func init() {
	var (
		docsPath string
		manPages bool
	)

	var docgenCmd = &cobra.Command{
		Use:    "docgen",
		Short:  "Generate documentation for the command line",
		Hidden: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := os.MkdirAll(docsPath, 0o755); err != nil {
				return fmt.Errorf("unable to create %s: %w", docsPath, err)
			}

			if manPages {
				return doc.GenManTree(rootCmd, &doc.GenManHeader{Title: "RT", Section: "8"}, docsPath)
			}

			return doc.GenMarkdownTree(rootCmd, docsPath)
		},
	}

	docgenCmd.Flags().StringVar(&docsPath, "out", "./docs/", "directory to write generated CLI documentation to")
	docgenCmd.Flags().BoolVar(&manPages, "man", false, "write man pages instead of markdown")

	rootCmd.AddCommand(docgenCmd)
}
