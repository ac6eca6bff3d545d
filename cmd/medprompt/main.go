package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/medprompt/internal/app"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	_ = app.LoadEnvFiles(".env", ".medprompt.env")

	var (
		configPath   string
		query        string
		tab          string
		scopeCSV     string
		audiencesCSV string
		keywordsCSV  string
		excludeCSV   string
		proofMode    bool
		date         string
		provider     string
		model        string
		storeDir     string
		outDir       string
		enablePDF    bool
		pdfFont      string
		shareBase    string
		exportPath   string
		importPath   string
		resetStore   bool
		copyPrompt   bool
		copyLink     bool
		showDiff     bool
		verbose      bool
	)

	flag.StringVar(&configPath, "config", os.Getenv("MEDPROMPT_CONFIG"), "Path to YAML/JSON config file")
	flag.StringVar(&query, "query", "", "Exploration theme, e.g. '遠隔医療'")
	flag.StringVar(&tab, "tab", "", "Purpose preset id (medical_ai, generative_ai, samd, security, data_use, research_ethics)")
	flag.StringVar(&scopeCSV, "scope", "", "Comma-separated scope tags")
	flag.StringVar(&audiencesCSV, "audiences", "", "Comma-separated audience tags")
	flag.StringVar(&keywordsCSV, "keywords", "", "Comma-separated additional keywords")
	flag.StringVar(&excludeCSV, "exclude", "", "Comma-separated exclude keywords")
	flag.BoolVar(&proofMode, "proof", false, "Include the self-verification sections in the prompt")
	flag.StringVar(&date, "date", "", "Override today's date (YYYY-MM-DD)")
	flag.StringVar(&provider, "llm.provider", envOr("MEDPROMPT_PROVIDER", app.DefaultProvider), "Target AI service (gemini, chatgpt, claude, perplexity, copilot)")
	flag.StringVar(&model, "llm.model", os.Getenv("MEDPROMPT_MODEL"), "Model id within the provider; empty selects the free model")
	flag.StringVar(&storeDir, "store.dir", envOr("MEDPROMPT_STORE", app.DefaultStoreDir), "Settings store directory")
	flag.StringVar(&outDir, "out.dir", app.DefaultOutDir, "Directory for prompt/config artifacts")
	flag.BoolVar(&enablePDF, "out.pdf", false, "Also render the prompt as PDF")
	flag.StringVar(&pdfFont, "out.pdfFont", os.Getenv("MEDPROMPT_PDF_FONT"), "Path to a UTF-8 TTF font for PDF rendering")
	flag.StringVar(&shareBase, "share.base", envOr("MEDPROMPT_SHARE_BASE", app.DefaultShareBaseURL), "Base URL for generated share links")
	flag.StringVar(&exportPath, "export", "", "Export the settings bundle to this file or directory and exit")
	flag.StringVar(&importPath, "import", "", "Import a settings bundle from this file and exit")
	flag.BoolVar(&resetStore, "reset", false, "Reset all persisted settings to defaults and exit")
	flag.BoolVar(&copyPrompt, "copy.prompt", false, "Copy the adjusted prompt to the clipboard")
	flag.BoolVar(&copyLink, "copy.link", false, "Copy the share link to the clipboard")
	flag.BoolVar(&showDiff, "diff", false, "Show the free/paid capability diff for the selected provider")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	cfg := app.Config{
		Query:           query,
		Tab:             tab,
		Scope:           splitCSV(scopeCSV),
		Audiences:       splitCSV(audiencesCSV),
		CustomKeywords:  splitCSV(keywordsCSV),
		ExcludeKeywords: splitCSV(excludeCSV),
		ProofMode:       proofMode,
		Date:            date,
		Provider:        provider,
		Model:           model,
		StoreDir:        storeDir,
		OutDir:          outDir,
		EnablePDF:       enablePDF,
		PDFFontPath:     pdfFont,
		ShareBaseURL:    shareBase,
		ExportPath:      exportPath,
		ImportPath:      importPath,
		ResetStore:      resetStore,
		CopyPrompt:      copyPrompt,
		CopyLink:        copyLink,
		ShowDiff:        showDiff,
		Verbose:         verbose,
	}

	if strings.TrimSpace(configPath) != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("path", configPath).Msg("config file")
			os.Exit(1)
		}
		app.ApplyFileConfig(&cfg, fc)
	}

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(2)
	}
}

func run(cfg app.Config) error {
	a, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	return a.Run()
}

func splitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
