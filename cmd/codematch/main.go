// Command codematch walks a directory of student submissions and an
// instructor-supplied template directory, and reports likely-plagiarized
// pairs per source file. It is a thin wiring layer over package
// pipeline: file discovery and glob filtering here, the detection
// algorithms there.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "codematch",
		Short: "Detect likely plagiarism among source-code submissions",
		Long: `codematch compares a directory of student submissions against an
instructor-supplied template directory, discounting template content and
overly common fragments, and ranks suspicious pairs per source file.`,
	}

	root.AddCommand(scoreCmd())
	root.AddCommand(diffCmd())
	return root
}
