package store

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hyperifyio/medprompt/internal/config"
	"github.com/hyperifyio/medprompt/internal/settings"
)

// BundleVersion is the export/import file format version. Import rejects
// anything else.
const BundleVersion = 2

// Bundle is the file-based export format: the settings blob plus the four
// custom lists. Each list field is independently optional on import.
type Bundle struct {
	Version          int                `json:"version"`
	ExportDate       string             `json:"exportDate"`
	ExtendedSettings *settings.Settings `json:"extendedSettings"`
	CustomPresets    []config.TabPreset `json:"customPresets,omitempty"`
	CustomDomains    []string           `json:"customDomains,omitempty"`
	CustomScopes     []string           `json:"customScopes,omitempty"`
	CustomAudiences  []string           `json:"customAudiences,omitempty"`
}

// ErrBadBundle marks an import payload that is not a version-2 bundle with
// settings present.
var ErrBadBundle = errors.New("not a version 2 settings bundle")

// Export snapshots the current state into a bundle stamped with now.
func Export(st State, now time.Time) Bundle {
	s := st.Settings
	return Bundle{
		Version:          BundleVersion,
		ExportDate:       now.UTC().Format(time.RFC3339),
		ExtendedSettings: &s,
		CustomPresets:    st.CustomPresets,
		CustomDomains:    st.CustomDomains,
		CustomScopes:     st.CustomScopes,
		CustomAudiences:  st.CustomAudiences,
	}
}

// Import applies a bundle file onto st. The bundle is accepted only when
// Version == 2 and extendedSettings is present; each custom list is applied
// only when present, so partial bundles are valid input. Presets arriving
// without an id are assigned one.
func Import(st *State, data []byte, now time.Time) error {
	var b Bundle
	if err := json.Unmarshal(data, &b); err != nil {
		return err
	}
	if b.Version != BundleVersion || b.ExtendedSettings == nil {
		return ErrBadBundle
	}

	raw, err := json.Marshal(b.ExtendedSettings)
	if err != nil {
		return err
	}
	merged, _ := settings.Merge(raw, now)
	st.Settings = merged

	if b.CustomPresets != nil {
		for i := range b.CustomPresets {
			if strings.TrimSpace(b.CustomPresets[i].ID) == "" {
				b.CustomPresets[i].ID = uuid.NewString()
			}
		}
		st.CustomPresets = b.CustomPresets
	}
	if b.CustomDomains != nil {
		st.CustomDomains = b.CustomDomains
	}
	if b.CustomScopes != nil {
		st.CustomScopes = b.CustomScopes
	}
	if b.CustomAudiences != nil {
		st.CustomAudiences = b.CustomAudiences
	}
	return nil
}
