// Package app wires the pure core (config, settings, template, llm, share)
// to the boundary adapters: the settings store, artifact files, the
// clipboard and the terminal. Boundary failures surface as warnings; only a
// prompt that cannot be written at all fails the run.
package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/medprompt/internal/config"
	"github.com/hyperifyio/medprompt/internal/llm"
	"github.com/hyperifyio/medprompt/internal/share"
	"github.com/hyperifyio/medprompt/internal/store"
	"github.com/hyperifyio/medprompt/internal/template"
	"github.com/hyperifyio/medprompt/internal/validate"
)

// App holds the resolved run configuration and the settings repository.
type App struct {
	cfg  Config
	repo store.Repository
	now  func() time.Time
}

// New builds an App over a file-backed settings store.
func New(cfg Config) (*App, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return &App{
		cfg:  cfg,
		repo: &store.FileStore{Dir: cfg.StoreDir},
		now:  time.Now,
	}, nil
}

// Run executes one render: load state, build the configuration, assemble,
// adjust once for the selected model, and write the artifacts.
func (a *App) Run() error {
	now := a.now()

	if a.cfg.ResetStore {
		if err := store.Reset(a.repo); err != nil {
			return fmt.Errorf("reset store: %w", err)
		}
		log.Info().Msg("settings store reset to defaults")
		return nil
	}

	state := store.LoadState(a.repo, now)

	if a.cfg.ImportPath != "" {
		data, err := os.ReadFile(a.cfg.ImportPath)
		if err != nil {
			return fmt.Errorf("read bundle: %w", err)
		}
		if err := store.Import(&state, data, now); err != nil {
			return fmt.Errorf("import bundle: %w", err)
		}
		store.SaveState(a.repo, state)
		log.Info().Str("path", a.cfg.ImportPath).Msg("settings bundle imported")
		return nil
	}

	if a.cfg.ExportPath != "" {
		return a.exportBundle(state, now)
	}

	cfg := a.buildConfig(state, now)

	for _, issue := range validate.Config(cfg) {
		log.Warn().Str("field", issue.Field).Msg(issue.Message)
	}
	for _, issue := range validate.Settings(state.Settings) {
		log.Warn().Str("field", issue.Field).Msg(issue.Message)
	}

	model := llm.ModelFor(llm.ProviderID(a.cfg.Provider), a.cfg.Model)
	if model == nil {
		return fmt.Errorf("unknown provider %q", a.cfg.Provider)
	}
	log.Debug().Str("provider", a.cfg.Provider).Str("model", model.ID).Msg("target model resolved")

	prompt := template.Assemble(cfg, state.Settings)
	// Applied exactly once per render; the transform is not idempotent.
	prompt = llm.AdjustPrompt(prompt, model)

	queries := template.SearchQueries(cfg, state.Settings)

	if err := a.writeArtifacts(cfg, prompt, queries); err != nil {
		return err
	}

	link := share.EncodeShareLink(cfg, a.cfg.ShareBaseURL)
	if link == "" {
		log.Warn().Msg("share link could not be encoded")
	} else {
		if share.TooLong(cfg, a.cfg.ShareBaseURL) {
			log.Warn().Int("length", len(link)).Msg("share link exceeds 2000 characters; some browsers may truncate it")
		}
		fmt.Println(link)
	}

	a.copyOutputs(prompt, link)

	if a.cfg.ShowDiff {
		printDiff(llm.ProviderID(a.cfg.Provider))
	}

	state.Settings.LastUpdated = now.UTC().Format(time.RFC3339)
	store.SaveState(a.repo, state)
	return nil
}

// buildConfig materializes the Configuration from defaults, the active
// preset, persisted custom lists and CLI inputs.
func (a *App) buildConfig(state store.State, now time.Time) config.Config {
	date := a.cfg.Date
	if date == "" {
		date = now.Format("2006-01-02")
	}
	cfg := config.Default(date)
	if a.cfg.Tab != "" {
		config.ApplyPreset(&cfg, config.PresetByID(a.cfg.Tab))
	}
	cfg.Query = a.cfg.Query
	if len(a.cfg.Scope) > 0 {
		cfg.Scope = append([]string{}, a.cfg.Scope...)
	}
	if len(a.cfg.Audiences) > 0 {
		cfg.Audiences = append([]string{}, a.cfg.Audiences...)
	}
	cfg.CustomKeywords = append([]string{}, a.cfg.CustomKeywords...)
	cfg.ExcludeKeywords = append([]string{}, a.cfg.ExcludeKeywords...)
	cfg.ProofMode = a.cfg.ProofMode
	cfg.PriorityDomains = append(cfg.PriorityDomains, state.CustomDomains...)
	return cfg
}

func (a *App) exportBundle(state store.State, now time.Time) error {
	b := store.Export(state, now)
	path := a.cfg.ExportPath
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, fmt.Sprintf("medai-settings-%s.json", now.Format("2006-01-02")))
	}
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return fmt.Errorf("encode bundle: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write bundle: %w", err)
	}
	log.Info().Str("path", path).Msg("settings bundle exported")
	return nil
}

// writeArtifacts writes the prompt text file, the optional PDF, the config
// JSON snapshot and the query list. Only the prompt file is load-bearing.
func (a *App) writeArtifacts(cfg config.Config, prompt string, queries []string) error {
	promptPath := filepath.Join(a.cfg.OutDir, fmt.Sprintf("prompt_%s_%s.txt", cfg.DateToday, a.cfg.Provider))
	if err := os.WriteFile(promptPath, []byte(prompt+"\n"), 0o644); err != nil {
		return fmt.Errorf("write prompt: %w", err)
	}
	log.Info().Str("path", promptPath).Int("bytes", len(prompt)).Msg("prompt written")

	if a.cfg.EnablePDF {
		pdfPath := strings.TrimSuffix(promptPath, ".txt") + ".pdf"
		if err := writePromptPDF(prompt, pdfPath, a.cfg.PDFFontPath); err != nil {
			log.Warn().Err(err).Msg("pdf export skipped")
		} else {
			log.Info().Str("path", pdfPath).Msg("pdf written")
		}
	}

	configPath := filepath.Join(a.cfg.OutDir, fmt.Sprintf("config_%s.json", cfg.DateToday))
	if err := os.WriteFile(configPath, []byte(share.ToJSON(cfg)+"\n"), 0o644); err != nil {
		log.Warn().Err(err).Msg("config snapshot skipped")
	}

	for i, q := range queries {
		fmt.Printf("%2d. %s\n", i+1, q)
	}
	return nil
}

// copyOutputs writes to the system clipboard when asked. Denial is a
// transient warning, never fatal, and there is no retry.
func (a *App) copyOutputs(prompt, link string) {
	switch {
	case a.cfg.CopyPrompt:
		if err := clipboard.WriteAll(prompt); err != nil {
			log.Warn().Err(err).Msg("clipboard copy failed")
		} else {
			log.Info().Msg("prompt copied to clipboard")
		}
	case a.cfg.CopyLink && link != "":
		if err := clipboard.WriteAll(link); err != nil {
			log.Warn().Err(err).Msg("clipboard copy failed")
		} else {
			log.Info().Msg("share link copied to clipboard")
		}
	}
}

func printDiff(provider llm.ProviderID) {
	diff := llm.FreePaidDiff(provider)
	fmt.Println("無料版でできること:")
	for _, f := range diff.FreeFeatures {
		fmt.Println("  ・" + f)
	}
	fmt.Println("有料版のみ:")
	for _, f := range diff.PaidOnlyFeatures {
		fmt.Println("  ・" + f)
	}
	fmt.Println("無料版の制限:")
	for _, l := range diff.FreeLimitations {
		fmt.Println("  ・" + l)
	}
}
