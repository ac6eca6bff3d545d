package app

import (
	"errors"
	"strings"
)

// Config carries everything the CLI run needs. Flags, env and the optional
// config file all funnel into this one struct.
type Config struct {
	// Prompt inputs
	Query           string
	Tab             string
	Scope           []string
	Audiences       []string
	CustomKeywords  []string
	ExcludeKeywords []string
	ProofMode       bool
	Date            string

	// Target model
	Provider string
	Model    string

	// Persistence and artifacts
	StoreDir     string
	OutDir       string
	PDFFontPath  string
	EnablePDF    bool
	ShareBaseURL string

	// One-shot store operations
	ExportPath string
	ImportPath string
	ResetStore bool

	// Output behavior
	CopyPrompt bool
	CopyLink   bool
	ShowDiff   bool
	Verbose    bool
}

// Defaults used by flag parsing and the file-config overlay.
const (
	DefaultStoreDir     = ".medprompt"
	DefaultOutDir       = "."
	DefaultShareBaseURL = "https://medprompt.hyperify.io/"
	DefaultProvider     = "gemini"
)

// ValidateConfig performs minimal schema validation for required settings.
func ValidateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.StoreDir) == "" {
		return errors.New("config: store dir is required")
	}
	if strings.TrimSpace(cfg.OutDir) == "" {
		return errors.New("config: output dir is required")
	}
	if strings.TrimSpace(cfg.Provider) == "" {
		return errors.New("config: provider is required")
	}
	if cfg.CopyPrompt && cfg.CopyLink {
		return errors.New("config: copy.prompt and copy.link are mutually exclusive")
	}
	return nil
}
