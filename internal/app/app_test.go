package app

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hyperifyio/medprompt/internal/store"
)

func testApp(t *testing.T, mutate func(*Config)) *App {
	t.Helper()
	cfg := Config{
		StoreDir:     filepath.Join(t.TempDir(), "store"),
		OutDir:       t.TempDir(),
		Provider:     DefaultProvider,
		ShareBaseURL: DefaultShareBaseURL,
		Date:         "2025-06-01",
	}
	if mutate != nil {
		mutate(&cfg)
	}
	a, err := New(cfg)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	a.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return a
}

func TestRunWritesArtifacts(t *testing.T) {
	a := testApp(t, func(c *Config) { c.Query = "遠隔医療" })

	if err := a.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}

	promptPath := filepath.Join(a.cfg.OutDir, "prompt_2025-06-01_gemini.txt")
	b, err := os.ReadFile(promptPath)
	if err != nil {
		t.Fatalf("prompt artifact missing: %v", err)
	}
	prompt := string(b)
	if !strings.Contains(prompt, "Query: 遠隔医療") {
		t.Errorf("prompt artifact missing the query")
	}
	if strings.Contains(prompt, "[[") {
		t.Errorf("prompt artifact contains a raw placeholder")
	}

	snapPath := filepath.Join(a.cfg.OutDir, "config_2025-06-01.json")
	sb, err := os.ReadFile(snapPath)
	if err != nil {
		t.Fatalf("config snapshot missing: %v", err)
	}
	var snap map[string]any
	if err := json.Unmarshal(sb, &snap); err != nil {
		t.Fatalf("config snapshot not valid json: %v", err)
	}
	if snap["query"] != "遠隔医療" {
		t.Errorf("config snapshot query = %v", snap["query"])
	}
}

func TestRunPersistsSettings(t *testing.T) {
	a := testApp(t, nil)

	if err := a.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}

	repo := &store.FileStore{Dir: a.cfg.StoreDir}
	raw, found, err := repo.Load(store.KeyExtendedSettings)
	if err != nil || !found {
		t.Fatalf("settings blob missing after run: found=%v err=%v", found, err)
	}
	var blob struct {
		LastUpdated string `json:"lastUpdated"`
	}
	if err := json.Unmarshal(raw, &blob); err != nil {
		t.Fatalf("settings blob not valid json: %v", err)
	}
	if blob.LastUpdated != "2025-06-01T12:00:00Z" {
		t.Errorf("lastUpdated = %q", blob.LastUpdated)
	}
}

func TestRunUnknownProvider(t *testing.T) {
	a := testApp(t, func(c *Config) { c.Provider = "bard" })
	if err := a.Run(); err == nil || !strings.Contains(err.Error(), "unknown provider") {
		t.Errorf("err = %v, want unknown provider", err)
	}
}

func TestRunExportAndImport(t *testing.T) {
	exportDir := t.TempDir()
	exportPath := filepath.Join(exportDir, "bundle.json")

	a := testApp(t, func(c *Config) { c.ExportPath = exportPath })
	if err := a.Run(); err != nil {
		t.Fatalf("export run: %v", err)
	}

	data, err := os.ReadFile(exportPath)
	if err != nil {
		t.Fatalf("bundle missing: %v", err)
	}
	var b store.Bundle
	if err := json.Unmarshal(data, &b); err != nil {
		t.Fatalf("bundle not valid json: %v", err)
	}
	if b.Version != store.BundleVersion || b.ExtendedSettings == nil {
		t.Errorf("bundle malformed: version=%d", b.Version)
	}

	// A fresh app imports the bundle into its own store.
	imp := testApp(t, func(c *Config) { c.ImportPath = exportPath })
	if err := imp.Run(); err != nil {
		t.Fatalf("import run: %v", err)
	}
	repo := &store.FileStore{Dir: imp.cfg.StoreDir}
	if _, found, _ := repo.Load(store.KeyExtendedSettings); !found {
		t.Errorf("import did not persist settings")
	}
}

func TestRunExportToDirectory(t *testing.T) {
	dir := t.TempDir()
	a := testApp(t, func(c *Config) { c.ExportPath = dir })
	if err := a.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "medai-settings-2025-06-01.json")); err != nil {
		t.Errorf("dated bundle missing in directory target: %v", err)
	}
}

func TestRunReset(t *testing.T) {
	a := testApp(t, nil)
	if err := a.Run(); err != nil {
		t.Fatalf("seed run: %v", err)
	}

	r := testApp(t, func(c *Config) {
		c.StoreDir = a.cfg.StoreDir
		c.ResetStore = true
	})
	if err := r.Run(); err != nil {
		t.Fatalf("reset run: %v", err)
	}

	repo := &store.FileStore{Dir: a.cfg.StoreDir}
	for _, key := range store.Keys {
		if _, found, _ := repo.Load(key); found {
			t.Errorf("key %s survived reset", key)
		}
	}
}

func TestBuildConfigAppliesInputs(t *testing.T) {
	a := testApp(t, func(c *Config) {
		c.Query = "遠隔医療"
		c.Tab = "security"
		c.Scope = []string{"医療情報セキュリティ"}
		c.ProofMode = true
	})

	state := store.LoadState(&store.FileStore{Dir: a.cfg.StoreDir}, a.now())
	state.CustomDomains = []string{"example.go.jp"}

	cfg := a.buildConfig(state, a.now())
	if cfg.DateToday != "2025-06-01" {
		t.Errorf("dateToday = %q", cfg.DateToday)
	}
	if cfg.ActiveTab != "security" {
		t.Errorf("activeTab = %q", cfg.ActiveTab)
	}
	if cfg.Query != "遠隔医療" || !cfg.ProofMode {
		t.Errorf("cli inputs not applied: %+v", cfg)
	}
	last := cfg.PriorityDomains[len(cfg.PriorityDomains)-1]
	if last != "example.go.jp" {
		t.Errorf("custom domain not appended: %q", cfg.PriorityDomains)
	}
}

func TestBuildConfigDefaultsDateToNow(t *testing.T) {
	a := testApp(t, func(c *Config) { c.Date = "" })
	state := store.LoadState(&store.FileStore{Dir: a.cfg.StoreDir}, a.now())
	cfg := a.buildConfig(state, a.now())
	if cfg.DateToday != "2025-06-01" {
		t.Errorf("dateToday = %q, want the clock date", cfg.DateToday)
	}
}
