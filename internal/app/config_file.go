package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig is the single-file configuration schema. Nested sections map
// naturally to the flag namespace.
type FileConfig struct {
	Query     string   `yaml:"query" json:"query"`
	Tab       string   `yaml:"tab" json:"tab"`
	Scope     []string `yaml:"scope" json:"scope"`
	Audiences []string `yaml:"audiences" json:"audiences"`
	Keywords  struct {
		Custom  []string `yaml:"custom" json:"custom"`
		Exclude []string `yaml:"exclude" json:"exclude"`
	} `yaml:"keywords" json:"keywords"`
	ProofMode bool   `yaml:"proofMode" json:"proofMode"`
	Date      string `yaml:"date" json:"date"`

	LLM struct {
		Provider string `yaml:"provider" json:"provider"`
		Model    string `yaml:"model" json:"model"`
	} `yaml:"llm" json:"llm"`

	Store struct {
		Dir string `yaml:"dir" json:"dir"`
	} `yaml:"store" json:"store"`

	Out struct {
		Dir       string `yaml:"dir" json:"dir"`
		EnablePDF bool   `yaml:"enablePDF" json:"enablePDF"`
		PDFFont   string `yaml:"pdfFont" json:"pdfFont"`
	} `yaml:"out" json:"out"`

	Share struct {
		BaseURL string `yaml:"baseURL" json:"baseURL"`
	} `yaml:"share" json:"share"`

	Verbose bool `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays file values into cfg for fields still at their
// flag defaults, so explicit flags always win over the file.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if cfg.Query == "" && fc.Query != "" {
		cfg.Query = fc.Query
	}
	if cfg.Tab == "" && fc.Tab != "" {
		cfg.Tab = fc.Tab
	}
	if len(cfg.Scope) == 0 && len(fc.Scope) > 0 {
		cfg.Scope = append([]string{}, fc.Scope...)
	}
	if len(cfg.Audiences) == 0 && len(fc.Audiences) > 0 {
		cfg.Audiences = append([]string{}, fc.Audiences...)
	}
	if len(cfg.CustomKeywords) == 0 && len(fc.Keywords.Custom) > 0 {
		cfg.CustomKeywords = append([]string{}, fc.Keywords.Custom...)
	}
	if len(cfg.ExcludeKeywords) == 0 && len(fc.Keywords.Exclude) > 0 {
		cfg.ExcludeKeywords = append([]string{}, fc.Keywords.Exclude...)
	}
	if !cfg.ProofMode && fc.ProofMode {
		cfg.ProofMode = true
	}
	if cfg.Date == "" && fc.Date != "" {
		cfg.Date = fc.Date
	}

	if (cfg.Provider == "" || cfg.Provider == DefaultProvider) && fc.LLM.Provider != "" {
		cfg.Provider = fc.LLM.Provider
	}
	if cfg.Model == "" && fc.LLM.Model != "" {
		cfg.Model = fc.LLM.Model
	}

	if (cfg.StoreDir == "" || cfg.StoreDir == DefaultStoreDir) && fc.Store.Dir != "" {
		cfg.StoreDir = fc.Store.Dir
	}
	if (cfg.OutDir == "" || cfg.OutDir == DefaultOutDir) && fc.Out.Dir != "" {
		cfg.OutDir = fc.Out.Dir
	}
	if !cfg.EnablePDF && fc.Out.EnablePDF {
		cfg.EnablePDF = true
	}
	if cfg.PDFFontPath == "" && fc.Out.PDFFont != "" {
		cfg.PDFFontPath = fc.Out.PDFFont
	}
	if (cfg.ShareBaseURL == "" || cfg.ShareBaseURL == DefaultShareBaseURL) && fc.Share.BaseURL != "" {
		cfg.ShareBaseURL = fc.Share.BaseURL
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}
