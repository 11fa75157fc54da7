// Package cli provides the wethelder command-line interface.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wethelder/wethelder/internal/adapters/driven/ai"
	caselawapi "github.com/wethelder/wethelder/internal/adapters/driven/caselaw/rechtspraak"
	catalogfile "github.com/wethelder/wethelder/internal/adapters/driven/catalog/file"
	configfile "github.com/wethelder/wethelder/internal/adapters/driven/config/file"
	ratelimitmem "github.com/wethelder/wethelder/internal/adapters/driven/ratelimit/memory"
	storagemem "github.com/wethelder/wethelder/internal/adapters/driven/storage/memory"
	storagesqlite "github.com/wethelder/wethelder/internal/adapters/driven/storage/sqlite"
	websearchgoogle "github.com/wethelder/wethelder/internal/adapters/driven/websearch/google"
	"github.com/wethelder/wethelder/internal/core/domain"
	"github.com/wethelder/wethelder/internal/core/ports/driven"
	"github.com/wethelder/wethelder/internal/core/ports/driving"
	"github.com/wethelder/wethelder/internal/core/services"
	"github.com/wethelder/wethelder/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// app holds the wired services for the running command. Populated by
// initApp; tests may substitute individual fields.
var (
	appSettings   domain.AppSettings
	searchService driving.SearchService
	askService    driving.AskService
	catalogSvc    driven.ReferenceCatalog

	closers []func() error
)

var (
	verboseFlag bool
	configDir   string
)

var rootCmd = &cobra.Command{
	Use:   "wethelder",
	Short: "Dutch legal reference search",
	Long: `WetHelder finds the Dutch statutes, fine codes and court rulings
that answer a legal question, and can generate a grounded answer
through a configured LLM provider.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.wethelder)")
}

// Execute runs the CLI.
func Execute(ctx context.Context) error {
	defer closeAll()
	return rootCmd.ExecuteContext(ctx)
}

// initApp wires the driven adapters and core services from the
// configuration. Optional backends degrade to nil or in-memory
// fallbacks instead of failing startup.
func initApp(ctx context.Context) error {
	if searchService != nil {
		return nil
	}

	store, err := configfile.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}
	appSettings = configfile.LoadSettings(store)

	catalog, err := catalogfile.NewCatalog(appSettings.CatalogDir)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}
	closers = append(closers, catalog.Close)
	catalogSvc = catalog

	webSearch, err := websearchgoogle.NewSearchService(ctx, websearchgoogle.Config{
		APIKey:         appSettings.WebSearch.APIKey,
		SearchEngineID: appSettings.WebSearch.SearchEngineID,
	})
	if err != nil {
		return fmt.Errorf("creating web search: %w", err)
	}
	if !webSearch.IsConfigured() {
		logger.Warn("Web search credentials missing, running catalog-only")
	}

	caseLaw := caselawapi.NewClient(caselawapi.Config{
		BaseURL: appSettings.CaseLaw.BaseURL,
	})

	searchService = services.NewSearchService(catalog, webSearch, caseLaw)

	// Startup pings the provider so a bad key or endpoint surfaces
	// immediately instead of on the first question.
	llm, err := ai.CreateAndValidateLLMService(appSettings.LLM)
	if err != nil {
		logger.Warn("LLM provider unreachable, ask is disabled: %v", err)
		return nil
	}
	if llm == nil {
		logger.Warn("LLM provider not configured, ask is disabled")
		return nil
	}
	closers = append(closers, llm.Close)

	queryLog := openQueryLog(appSettings.DataDir)
	limiter := ratelimitmem.NewLimiter(appSettings.Server.AnonymousDailyQuota)

	askService = services.NewAskService(searchService, llm, queryLog, limiter)
	return nil
}

// openQueryLog opens the sqlite query log, degrading to the in-memory
// store when the database cannot be opened.
func openQueryLog(dataDir string) driven.QueryLogStore {
	store, err := storagesqlite.NewStore(dataDir)
	if err != nil {
		logger.Warn("Query log unavailable, keeping records in memory: %v", err)
		mem := storagemem.NewQueryLogStore()
		closers = append(closers, mem.Close)
		return mem
	}
	closers = append(closers, store.Close)
	return store
}

func closeAll() {
	for i := len(closers) - 1; i >= 0; i-- {
		if err := closers[i](); err != nil {
			logger.Warn("Close failed: %v", err)
		}
	}
	closers = nil
}
