package store

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/hyperifyio/medprompt/internal/config"
	"github.com/hyperifyio/medprompt/internal/settings"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestLoadStateEmptyStore(t *testing.T) {
	st := LoadState(&FileStore{Dir: t.TempDir()}, testNow)

	if st.Settings.Version != settings.SchemaVersion {
		t.Errorf("settings not defaulted: version=%d", st.Settings.Version)
	}
	if st.CustomPresets == nil || st.CustomDomains == nil || st.CustomScopes == nil || st.CustomAudiences == nil {
		t.Errorf("custom lists must default to empty, not nil")
	}
}

func TestSaveLoadStateRoundTrip(t *testing.T) {
	repo := &FileStore{Dir: t.TempDir()}

	st := LoadState(repo, testNow)
	st.Settings.Search.MaxResults = 7
	st.CustomDomains = []string{"example.go.jp"}
	st.CustomScopes = []string{"遠隔医療"}
	st.CustomPresets = []config.TabPreset{{ID: "p1", Name: "カスタム", Categories: []string{"c"}, KeywordChips: []string{"k"}}}

	SaveState(repo, st)
	got := LoadState(repo, testNow)

	if got.Settings.Search.MaxResults != 7 {
		t.Errorf("settings not persisted: %d", got.Settings.Search.MaxResults)
	}
	if len(got.CustomDomains) != 1 || got.CustomDomains[0] != "example.go.jp" {
		t.Errorf("domains not persisted: %q", got.CustomDomains)
	}
	if len(got.CustomScopes) != 1 || got.CustomScopes[0] != "遠隔医療" {
		t.Errorf("scopes not persisted: %q", got.CustomScopes)
	}
	if len(got.CustomPresets) != 1 || got.CustomPresets[0].ID != "p1" {
		t.Errorf("presets not persisted: %+v", got.CustomPresets)
	}
}

// One malformed blob falls back to its default while the other keys load.
func TestLoadStateBlobIsolation(t *testing.T) {
	repo := &FileStore{Dir: t.TempDir()}

	if err := repo.Save(KeyExtendedSettings, []byte("{broken")); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Save(KeyCustomDomains, []byte(`["mhlw.go.jp"]`)); err != nil {
		t.Fatalf("save: %v", err)
	}

	st := LoadState(repo, testNow)
	if st.Settings.Search.MaxResults != 20 {
		t.Errorf("broken settings blob did not fall back to defaults")
	}
	if len(st.CustomDomains) != 1 || st.CustomDomains[0] != "mhlw.go.jp" {
		t.Errorf("intact blob lost to a broken sibling: %q", st.CustomDomains)
	}
}

func TestLoadStateNormalizesInput(t *testing.T) {
	repo := &FileStore{Dir: t.TempDir()}

	if err := repo.Save(KeyCustomDomains, []byte(`["ｍｈｌｗ．ｇｏ．ｊｐ", "  "]`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	st := settings.Defaults(testNow)
	st.Search.Filetypes = []string{".PDF", "ｄｏｃ"}
	b, _ := json.Marshal(st)
	if err := repo.Save(KeyExtendedSettings, b); err != nil {
		t.Fatalf("save: %v", err)
	}

	got := LoadState(repo, testNow)
	if len(got.CustomDomains) != 1 || got.CustomDomains[0] != "mhlw.go.jp" {
		t.Errorf("domains not normalized: %q", got.CustomDomains)
	}
	if len(got.Settings.Search.Filetypes) != 2 || got.Settings.Search.Filetypes[0] != "pdf" || got.Settings.Search.Filetypes[1] != "doc" {
		t.Errorf("filetypes not normalized: %q", got.Settings.Search.Filetypes)
	}
}

func TestResetClearsEverything(t *testing.T) {
	repo := &FileStore{Dir: t.TempDir()}

	st := LoadState(repo, testNow)
	st.CustomScopes = []string{"x"}
	SaveState(repo, st)

	if err := Reset(repo); err != nil {
		t.Fatalf("reset: %v", err)
	}
	for _, key := range Keys {
		if _, found, _ := repo.Load(key); found {
			t.Errorf("key %s survived reset", key)
		}
	}
}
