package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/spf13/cobra"

	"github.com/l3aro/go-jsx-lint/internal/config"
	"github.com/l3aro/go-jsx-lint/internal/log"
	"github.com/l3aro/go-jsx-lint/internal/scanner"
	"github.com/l3aro/go-jsx-lint/pkg/cache"
	"github.com/l3aro/go-jsx-lint/pkg/lint"
	"github.com/l3aro/go-jsx-lint/pkg/parser"
)

// lintCmd represents the lint command
var lintCmd = &cobra.Command{
	Use:   "lint [path]",
	Short: "Lint JSX files under a path",
	Long: `Lints the given file or directory tree (default ".") with the
built-in rules and prints one line per finding:

  path:line:column rule message

Exits with code 1 when any finding is reported.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "."
		if len(args) > 0 {
			path = args[0]
		}

		configPath, _ := cmd.Flags().GetString("config")
		noCache, _ := cmd.Flags().GetBool("no-cache")
		verbose, _ := cmd.Flags().GetBool("verbose")

		return runLint(cmd.Context(), path, configPath, noCache, verbose)
	},
}

func init() {
	lintCmd.Flags().String("config", "", "Config file path (default: .jsxlint.yaml)")
	lintCmd.Flags().Bool("no-cache", false, "Ignore and do not update the result cache")
	lintCmd.Flags().BoolP("verbose", "v", false, "Verbose logging")
}

// fileResult pairs one linted file with its findings.
type fileResult struct {
	path     string
	findings []lint.Finding
}

func runLint(ctx context.Context, path, configPath string, noCache, verbose bool) error {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFromFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := log.Default()
	if verbose || cfg.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	files, err := collectFiles(path)
	if err != nil {
		return err
	}
	logger.Debug("collected files", "count", len(files))

	results := cache.New()
	if !noCache {
		if err := results.LoadFile(cfg.CachePath); err != nil {
			logger.Warn("discarding unreadable cache", "path", cfg.CachePath, "error", err)
		}
	}

	findings := lintFiles(ctx, cfg, logger, files, results, noCache)

	if !noCache {
		if err := results.SaveFile(cfg.CachePath); err != nil {
			logger.Warn("could not persist cache", "path", cfg.CachePath, "error", err)
		}
	}

	total := 0
	for _, res := range findings {
		for _, f := range res.findings {
			fmt.Printf("%s:%d:%d %s %s\n", res.path, f.Span.Line, f.Span.Column, ruleName(f.Kind), renderMessage(f))
			total++
		}
	}

	if total > 0 {
		fmt.Fprintf(os.Stderr, "\n%d problem(s) found in %d file(s)\n", total, len(files))
		exitCode = 1
	}
	return nil
}

// collectFiles resolves path to the list of lintable files: the file itself
// when path is a regular file, otherwise a recursive scan.
func collectFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat path: %w", err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("getting absolute path: %w", err)
	}

	sc := scanner.New(scanner.DefaultOptions())
	found, err := sc.Scan(absPath)
	if err != nil {
		return nil, fmt.Errorf("scanning directory: %w", err)
	}

	files := make([]string, 0, len(found))
	for _, f := range found {
		files = append(files, filepath.Join(path, f.Path))
	}
	return files, nil
}

// lintFiles runs the rules over every file with up to cfg.Workers files in
// flight, returning per-file results sorted by path.
func lintFiles(ctx context.Context, cfg *config.Config, logger log.Logger, files []string, results *cache.ResultCache, noCache bool) []fileResult {
	jobs := make(chan string)
	out := make(chan fileResult)

	var wg sync.WaitGroup
	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p := parser.New()
			runner := lint.NewRunner(cfg.Options())
			for file := range jobs {
				out <- lintOne(ctx, p, runner, logger, file, results, noCache)
			}
		}()
	}

	go func() {
		for _, file := range files {
			jobs <- file
		}
		close(jobs)
		wg.Wait()
		close(out)
	}()

	collected := make([]fileResult, 0, len(files))
	for res := range out {
		collected = append(collected, res)
	}
	sort.Slice(collected, func(i, j int) bool { return collected[i].path < collected[j].path })
	return collected
}

func lintOne(ctx context.Context, p *parser.Parser, runner *lint.Runner, logger log.Logger, file string, results *cache.ResultCache, noCache bool) fileResult {
	source, err := os.ReadFile(file)
	if err != nil {
		logger.Warn("skipping unreadable file", "path", file, "error", err)
		return fileResult{path: file}
	}

	hash := cache.HashContent(source)
	if !noCache {
		if cached, err := results.Get(file, hash); err == nil {
			logger.Debug("cache hit", "path", file)
			return fileResult{path: file, findings: cached}
		}
	}

	tree, err := p.Parse(ctx, file, source)
	if err != nil {
		logger.Warn("skipping unparseable file", "path", file, "error", err)
		return fileResult{path: file}
	}

	findings := runner.Run(tree)
	if !noCache {
		results.Put(file, hash, findings)
	}
	return fileResult{path: file, findings: findings}
}

// ruleName maps a finding kind to the rule it belongs to for reporting.
func ruleName(kind lint.FindingKind) string {
	switch kind {
	case lint.KindNotInScope:
		return "react-in-jsx-scope"
	case lint.KindBodyLiteral, lint.KindAttributeLiteral:
		return "no-literals"
	case lint.KindMultiComponent:
		return "no-multi-comp"
	default:
		return "internal"
	}
}

// renderMessage interpolates a finding's parameters into human-readable text.
func renderMessage(f lint.Finding) string {
	switch f.Kind {
	case lint.KindNotInScope:
		return fmt.Sprintf("'%s' must be in scope when using JSX", f.Params["name"])
	case lint.KindBodyLiteral:
		return fmt.Sprintf("Strings not allowed in JSX files: %q", f.Params["text"])
	case lint.KindAttributeLiteral:
		return fmt.Sprintf("Invalid attribute value: %q", f.Params["text"])
	case lint.KindMultiComponent:
		return fmt.Sprintf("Declare only one React component per file: %s", f.Params["component"])
	case lint.KindInternalError:
		return fmt.Sprintf("skipped malformed syntax node (%s)", f.Params["node"])
	default:
		return string(f.Kind)
	}
}
