package store

import (
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/medprompt/internal/config"
	"github.com/hyperifyio/medprompt/internal/settings"
	"github.com/hyperifyio/medprompt/internal/validate"
)

// State is everything the store persists, loaded into memory.
type State struct {
	Settings        settings.Settings
	CustomPresets   []config.TabPreset
	CustomDomains   []string
	CustomScopes    []string
	CustomAudiences []string
}

// LoadState reads all blobs, falling back to defaults for any key that is
// missing or malformed. A broken blob is logged and skipped; one bad list
// never takes down the rest.
func LoadState(repo Repository, now time.Time) State {
	st := State{
		Settings:        settings.Defaults(now),
		CustomPresets:   []config.TabPreset{},
		CustomDomains:   []string{},
		CustomScopes:    []string{},
		CustomAudiences: []string{},
	}

	if raw, found, err := repo.Load(KeyExtendedSettings); err != nil {
		log.Warn().Err(err).Str("key", KeyExtendedSettings).Msg("load settings")
	} else if found {
		merged, ok := settings.Merge(raw, now)
		if !ok {
			log.Warn().Str("key", KeyExtendedSettings).Msg("malformed settings blob, using defaults")
		}
		st.Settings = merged
	}

	loadList(repo, KeyCustomPresets, &st.CustomPresets)
	loadList(repo, KeyCustomDomains, &st.CustomDomains)
	loadList(repo, KeyCustomScopes, &st.CustomScopes)
	loadList(repo, KeyCustomAudiences, &st.CustomAudiences)

	st.CustomDomains = validate.NormalizeDomains(st.CustomDomains)
	st.Settings.Search.ExcludedDomains = validate.NormalizeDomains(st.Settings.Search.ExcludedDomains)
	st.Settings.Search.Filetypes = validate.NormalizeFiletypes(st.Settings.Search.Filetypes)
	return st
}

func loadList[T any](repo Repository, key string, dst *[]T) {
	raw, found, err := repo.Load(key)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("load list")
		return
	}
	if !found {
		return
	}
	var parsed []T
	if err := json.Unmarshal(raw, &parsed); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("malformed list blob, keeping defaults")
		return
	}
	*dst = parsed
}

// SaveState persists every blob. Individual failures are logged and the
// remaining keys still get written.
func SaveState(repo Repository, st State) {
	saveJSON(repo, KeyExtendedSettings, st.Settings)
	saveJSON(repo, KeyCustomPresets, st.CustomPresets)
	saveJSON(repo, KeyCustomDomains, st.CustomDomains)
	saveJSON(repo, KeyCustomScopes, st.CustomScopes)
	saveJSON(repo, KeyCustomAudiences, st.CustomAudiences)
}

func saveJSON(repo Repository, key string, v any) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("encode blob")
		return
	}
	if err := repo.Save(key, b); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("save blob")
	}
}

// Reset deletes every persisted blob, returning the session to defaults on
// next load.
func Reset(repo Repository) error {
	var firstErr error
	for _, key := range Keys {
		if err := repo.Delete(key); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
