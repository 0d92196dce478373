// cmd/archlink/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"archlink/internal/core/domain"
	"archlink/internal/core/ports"
	"archlink/internal/core/usecases"
	"archlink/internal/installer"
	"archlink/internal/platform/config"
	"archlink/internal/platform/logx"
	"archlink/internal/platform/registry"
	"archlink/internal/platform/ui"

	// Import sources for auto-registration via init()
	_ "archlink/internal/sources/archweb"
	_ "archlink/internal/sources/aur"
)

var (
	// Filled via -ldflags at build time
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	logger := logx.New()

	// 1. Load centralized config
	cfg, args, err := config.Load(os.Args[1:], logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Try: archlink -h for help")
		return exitUsage
	}

	if cfg.PrintHelp {
		config.PrintHelp()
		return exitOK
	}
	if cfg.PrintVersion {
		config.PrintVersion(version, commit, date)
		return exitOK
	}

	if cfg.Quiet {
		logger.SetLevel(logx.LevelWarn)
	}

	// 2. Context and signals for clean shutdown
	ctx, cancel := rootContextWithSignals()
	defer cancel()

	presenter := ui.NewPresenter()

	// 3. Dispatch subcommand ("search" is the default)
	command := "search"
	if len(args) > 0 {
		switch args[0] {
		case "search", "install":
			command = args[0]
			args = args[1:]
		}
	}

	switch command {
	case "install":
		return runInstall(ctx, args, presenter, logger)
	default:
		return runSearch(ctx, cfg, args, presenter, logger)
	}
}

// runSearch executes the full flow: query both catalogs, rank, let the
// operator pick a package, install it.
func runSearch(ctx context.Context, cfg config.Config, args []string, presenter *ui.Presenter, logger logx.Logger) int {
	query := strings.TrimSpace(strings.Join(args, " "))
	if query == "" {
		presenter.ShowError("search query cannot be empty")
		return exitError
	}

	logger.Info("archlink starting", "version", version, "command", "search", "query", query)

	sources, err := buildSources(cfg, logger)
	if err != nil {
		presenter.ShowError(fmt.Sprintf("no package sources available: %v", err))
		return exitError
	}
	defer closeSources(sources, logger)

	presenter.ShowSearching(query)

	aggregator := usecases.NewAggregator(sources, logger)
	candidates, warnings := aggregator.Aggregate(ctx, query)
	for _, w := range warnings {
		presenter.ShowWarning(fmt.Sprintf("%s search failed: %v", w.Source, w.Err))
	}

	ranked := usecases.Rank(candidates, query, cfg.MaxResults)
	if len(ranked) == 0 {
		presenter.ShowNoResults(query)
		return exitOK
	}

	presenter.ShowResults(ranked)

	idx, ok := presenter.PromptSelection(len(ranked))
	if !ok {
		return exitOK
	}

	chosen := ranked[idx]
	if !presenter.PromptConfirm(fmt.Sprintf("Install %s %s?", chosen.Name, chosen.Version)) {
		return exitOK
	}

	return install(ctx, chosen.Name, chosen.Source, presenter, logger)
}

// runInstall installs a package by exact name, skipping the search. The
// catalog is unknown, so the chain starts at the system package manager.
func runInstall(ctx context.Context, args []string, presenter *ui.Presenter, logger logx.Logger) int {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		presenter.ShowError("package name cannot be empty")
		return exitError
	}

	logger.Info("archlink starting", "version", version, "command", "install", "package", args[0])

	return install(ctx, args[0], domain.SourceUnknown, presenter, logger)
}

// install runs the installer chain and maps its outcome to an exit code.
func install(ctx context.Context, pkg string, source domain.Source, presenter *ui.Presenter, logger logx.Logger) int {
	orch := installer.NewOrchestrator(installer.Options{
		Reporter: presenter,
		Logger:   logger,
	})

	if err := orch.Install(ctx, pkg, source); err != nil {
		presenter.ShowError(err.Error())
		return exitError
	}
	return exitOK
}

// buildSources builds the enabled sources from the registry.
func buildSources(cfg config.Config, logger logx.Logger) ([]ports.Source, error) {
	sources, err := registry.Global().Build(cfg.Sources, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build sources: %w", err)
	}
	return sources, nil
}

func closeSources(sources []ports.Source, logger logx.Logger) {
	for _, src := range sources {
		if err := src.Close(); err != nil {
			logger.Warn("failed to close source",
				"source", src.Name(),
				"error", err.Error(),
			)
		}
	}
}

// rootContextWithSignals creates a root context cancelled by SIGINT/SIGTERM.
func rootContextWithSignals() (context.Context, context.CancelFunc) {
	base, baseCancel := context.WithCancel(context.Background())

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-ch:
			baseCancel()
		case <-base.Done():
		}
	}()

	return base, func() {
		signal.Stop(ch)
		baseCancel()
	}
}
