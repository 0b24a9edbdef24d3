package main

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"

	"github.com/dshills/findgroup/internal/config"
	"github.com/dshills/findgroup/internal/finder"
	"github.com/dshills/findgroup/internal/pane"
	"github.com/dshills/findgroup/internal/report"
	"github.com/dshills/findgroup/internal/searcher"
)

// options holds the raw flag values. Only flags the user actually set
// override the config file.
type options struct {
	configPath    string
	verbose       bool
	matchCase     bool
	wholeWord     bool
	regex         bool
	noWrap        bool
	format        string
	paneName      string
	includeTests  bool
	includeVendor bool
	workers       int
	maxWidth      int
	pretty        bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "findgroup [flags] PATTERN PATH...",
		Short: "List matching lines grouped by enclosing function",
		Long: `Find every line that matches PATTERN and print the lines grouped by the
function that encloses them. Lines outside any function are listed first under
"no function".`,
		Version:       version,
		Args:          cobra.MinimumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			log.SetOutput(cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			return runFind(cmd, cfg, opts, args[0], args[1:])
		},
	}
	cmd.SetVersionTemplate(versionText())

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "config file (default: .findgroup.yaml found walking up, or $"+config.EnvConfigPath+")")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "log every file that could not be searched")

	f := cmd.Flags()
	f.BoolVarP(&opts.matchCase, "match-case", "c", false, "case-sensitive search")
	f.BoolVarP(&opts.wholeWord, "whole-word", "w", true, "match whole words only")
	f.BoolVarP(&opts.regex, "regex", "r", false, "treat PATTERN as a regular expression")
	f.BoolVar(&opts.noWrap, "no-wrap", false, "stop at the end of each file instead of wrapping to the top")
	f.StringVarP(&opts.format, "format", "f", "region", "output format: region, markdown or json")
	f.StringVar(&opts.paneName, "pane", pane.DefaultPaneName, "name of the output pane")
	f.BoolVar(&opts.includeTests, "include-tests", true, "search test files found in directories")
	f.BoolVar(&opts.includeVendor, "include-vendor", false, "search vendor directories")
	f.IntVarP(&opts.workers, "workers", "j", 0, "files searched concurrently (0: one per CPU)")
	f.IntVar(&opts.maxWidth, "max-width", 0, "truncate markdown lines to this many cells (0: terminal width or unlimited)")
	f.BoolVar(&opts.pretty, "pretty", false, "render markdown output for the terminal")

	cmd.AddCommand(newFunctionsCmd(), newServeCmd(opts), newVersionCmd())
	return cmd
}

// resolve layers defaults, the config file and explicitly set flags
func (o *options) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Resolve(".", o.configPath)
	if err != nil {
		return cfg, err
	}
	if cfg.Source != "" && o.verbose {
		log.Printf("using config %s", cfg.Source)
	}

	flags := cmd.Flags()
	if flags.Lookup("match-case") == nil {
		// subcommands only see the persistent flags
		return cfg, nil
	}
	if flags.Changed("match-case") {
		cfg.MatchCase = o.matchCase
	}
	if flags.Changed("whole-word") {
		cfg.WholeWord = o.wholeWord
	}
	if flags.Changed("regex") {
		cfg.Regex = o.regex
	}
	if flags.Changed("no-wrap") {
		cfg.Wrap = !o.noWrap
	}
	if flags.Changed("format") {
		cfg.Format = o.format
	}
	if flags.Changed("pane") {
		cfg.Pane = o.paneName
	}
	if flags.Changed("include-tests") {
		cfg.IncludeTests = o.includeTests
	}
	if flags.Changed("include-vendor") {
		cfg.IncludeVendor = o.includeVendor
	}
	if flags.Changed("workers") {
		cfg.Workers = o.workers
	}
	if flags.Changed("max-width") {
		cfg.MaxWidth = o.maxWidth
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// runFind searches paths and prints the grouped lines into the output pane
func runFind(cmd *cobra.Command, cfg config.Config, opts *options, pattern string, paths []string) error {
	format, err := report.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	s := searcher.New()
	resp, err := s.Search(cmd.Context(), searcher.Request{
		Paths: paths,
		Find: finder.Options{
			Pattern:   pattern,
			MatchCase: cfg.MatchCase,
			WholeWord: cfg.WholeWord,
			Regex:     cfg.Regex,
			Wrap:      cfg.Wrap,
		},
		IncludeTests:  cfg.IncludeTests,
		IncludeVendor: cfg.IncludeVendor,
		Extensions:    cfg.Extensions,
		Workers:       cfg.Workers,
	})
	if err != nil {
		return err
	}

	reportFailures(resp.Statistics, opts.verbose)
	if opts.verbose {
		log.Printf("searched %d files, %d matched, %d lines in %v",
			resp.Statistics.FilesSearched, resp.Statistics.FilesMatched,
			resp.Statistics.TotalMatches, resp.Statistics.Duration)
	}

	out := cmd.OutOrStdout()
	panes := pane.NewRegistry(func(name string) pane.Pane {
		return pane.NewConsole(name, out)
	})
	p := panes.Get(cfg.Pane)
	if err := p.Clear(); err != nil {
		return err
	}

	ropts := report.Options{
		Format:   format,
		MaxWidth: cfg.MaxWidth,
		Pretty:   opts.pretty,
	}
	if console, ok := p.(*pane.Console); ok && ropts.MaxWidth == 0 {
		ropts.MaxWidth = console.Width()
	}

	return report.Write(p, resp.Files, ropts)
}

// reportFailures logs files that could not be searched
func reportFailures(stats searcher.Statistics, verbose bool) {
	if stats.FilesFailed == 0 {
		return
	}
	if !verbose {
		log.Printf("warning: %d files could not be searched (use --verbose for details)", stats.FilesFailed)
		return
	}
	for _, msg := range stats.ErrorMessages {
		log.Printf("warning: %s", msg)
	}
}

func versionText() string {
	return fmt.Sprintf("findgroup %s (built %s)\n", version, buildTime)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = io.WriteString(cmd.OutOrStdout(), versionText())
		},
	}
}
