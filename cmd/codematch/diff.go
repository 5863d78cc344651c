package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rivo/uniseg"
	"github.com/spf13/cobra"

	"github.com/codematch/codematch/internal/config"
	"github.com/codematch/codematch/lang/python"
	"github.com/codematch/codematch/match"
	"github.com/codematch/codematch/pipeline"
	"github.com/codematch/codematch/token"
)

const previewWidth = 100

func diffCmd() *cobra.Command {
	var (
		templatePath string
		configPath   string
	)

	cmd := &cobra.Command{
		Use:   "diff <left-file> <right-file>",
		Short: "Tile two submissions and print matched line ranges",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd, args[0], args[1], templatePath, configPath)
		},
	}

	cmd.Flags().StringVar(&templatePath, "template", "", "template file to discount from both sides before tiling")
	cmd.Flags().StringVar(&configPath, "config", "", "YAML config overlay; reference defaults used if omitted")

	return cmd
}

func runDiff(cmd *cobra.Command, leftPath, rightPath, templatePath, configPath string) error {
	ctx := cmd.Context()

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	tok := python.New()

	left, err := tokenizeFile(ctx, tok, leftPath)
	if err != nil {
		return fmt.Errorf("diff: %w", err)
	}
	right, err := tokenizeFile(ctx, tok, rightPath)
	if err != nil {
		return fmt.Errorf("diff: %w", err)
	}

	var template token.Stream
	if templatePath != "" {
		template, err = tokenizeFile(ctx, tok, templatePath)
		if err != nil {
			return fmt.Errorf("diff: %w", err)
		}
	}

	lines, reported := pipeline.DiffPair(left, right, template, cfg)
	if !reported {
		fmt.Fprintf(cmd.OutOrStdout(), "%s <-> %s: below threshold (%.2f), not reported\n", leftPath, rightPath, cfg.Threshold)
		return nil
	}
	printLineMatches(cmd, leftPath, rightPath, lines)
	return nil
}

func tokenizeFile(ctx context.Context, tok python.Tokenizer, path string) (token.Stream, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return tok.TokenizeString(ctx, path, string(content))
}

func printLineMatches(cmd *cobra.Command, leftPath, rightPath string, lines []match.LineMatch) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s <-> %s\n", leftPath, rightPath)
	for _, m := range lines {
		left := fmt.Sprintf("lines %d-%d", m.LeftFrom, m.LeftTo)
		right := fmt.Sprintf("lines %d-%d", m.RightFrom, m.RightTo)
		fmt.Fprintf(out, "  %s  <->  %s\n", truncate(left, previewWidth), truncate(right, previewWidth))
	}
}

// truncate shortens s to at most width terminal columns, counted in
// grapheme clusters rather than bytes or runes, so a multi-byte
// character is never split mid-cluster.
func truncate(s string, width int) string {
	if uniseg.StringWidth(s) <= width {
		return s
	}

	var b []byte
	col := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		cluster := gr.Str()
		w := uniseg.StringWidth(cluster)
		if col+w > width-1 {
			break
		}
		b = append(b, cluster...)
		col += w
	}
	return string(b) + "…"
}
