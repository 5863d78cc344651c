package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/codematch/codematch/index"
	"github.com/codematch/codematch/internal/config"
	"github.com/codematch/codematch/lang/python"
	"github.com/codematch/codematch/pipeline"
	"github.com/codematch/codematch/reporter"
)

func scoreCmd() *cobra.Command {
	var (
		templateDir string
		configPath  string
		include     string
	)

	cmd := &cobra.Command{
		Use:   "score <submissions-dir>",
		Short: "Rank suspicious submission pairs per file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScore(cmd, args[0], templateDir, configPath, include)
		},
	}

	cmd.Flags().StringVar(&templateDir, "template-dir", "", "directory of instructor-supplied starter code (required)")
	cmd.Flags().StringVar(&configPath, "config", "", "YAML config overlay; reference defaults used if omitted")
	cmd.Flags().StringVar(&include, "include", "**/*.py", "doublestar glob, relative to template-dir, selecting files to compare")
	_ = cmd.MarkFlagRequired("template-dir")

	return cmd
}

func runScore(cmd *cobra.Command, submissionsDir, templateDir, configPath, include string) error {
	ctx := cmd.Context()

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	relFiles, err := matchingFiles(templateDir, include)
	if err != nil {
		return fmt.Errorf("score: discovering template files: %w", err)
	}

	tok := python.New()
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("score: building logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck
	h := reporter.NewHandler(reporter.NewZapReporter(logger))

	byFile := make(map[string]map[index.SubmissionID]string) // relPath -> submissionID -> absPath
	submissionDirs, err := listSubmissionDirs(submissionsDir)
	if err != nil {
		return fmt.Errorf("score: discovering submission directories: %w", err)
	}

	for id, dir := range submissionDirs {
		for _, rel := range relFiles {
			abs := filepath.Join(dir, rel)
			if _, err := os.Stat(abs); err != nil {
				continue
			}
			if byFile[rel] == nil {
				byFile[rel] = make(map[index.SubmissionID]string)
			}
			byFile[rel][index.SubmissionID(id)] = abs
		}
	}

	for _, rel := range relFiles {
		templatePath := filepath.Join(templateDir, rel)
		templateContent, err := os.ReadFile(templatePath)
		if err != nil {
			h.HandleWarning(reporter.Position{Path: templatePath}, fmt.Errorf("read template: %w", err))
			continue
		}
		templateTokens, err := tok.TokenizeString(ctx, templatePath, string(templateContent))
		if err != nil {
			h.HandleWarning(reporter.Position{Path: templatePath}, fmt.Errorf("tokenize template: %w", err))
			continue
		}

		subs := make([]pipeline.Submission, 0, len(byFile[rel]))
		for id, abs := range byFile[rel] {
			subs = append(subs, pipeline.Submission{ID: id, Path: abs})
		}

		streams, err := pipeline.TokenizeAll(ctx, tok, subs, readFile, h)
		if err != nil {
			return fmt.Errorf("score: tokenizing %s: %w", rel, err)
		}

		ranked := pipeline.ScorePairs(templateTokens, streams, cfg, nil)
		printRanked(cmd, rel, ranked)
	}

	if err := h.Error(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
	}
	return nil
}

func printRanked(cmd *cobra.Command, file string, ranked []index.PairScore) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n", file)
	for _, pair := range ranked {
		fmt.Fprintf(out, "  submission %d <-> submission %d: score %d\n", pair.A, pair.B, pair.Score)
	}
}

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// matchingFiles returns every path under root matching pattern,
// relative to root, in sorted order.
func matchingFiles(root, pattern string) ([]string, error) {
	fsys := os.DirFS(root)
	matches, err := doublestar.Glob(fsys, pattern)
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)
	return matches, nil
}

// listSubmissionDirs enumerates the immediate subdirectories of root, one
// per submission, assigning stable IDs in sorted-name order.
func listSubmissionDirs(root string) (map[int]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	dirs := make(map[int]string, len(names))
	for i, name := range names {
		dirs[i] = filepath.Join(root, name)
	}
	return dirs, nil
}
