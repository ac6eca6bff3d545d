package settings

import (
	"encoding/json"
	"time"
)

// Merge overlays a persisted settings blob onto the current defaults.
// Unmarshalling over a fully populated default value means partial or older
// blobs keep their saved fields while anything they lack stays at its
// default. Malformed input yields plain defaults and ok=false; it is never an
// error for the running session.
func Merge(data []byte, now time.Time) (Settings, bool) {
	st := Defaults(now)
	if len(data) == 0 {
		return st, false
	}
	if err := json.Unmarshal(data, &st); err != nil {
		return Defaults(now), false
	}
	migrate(&st, now)
	Clamp(&st)
	return st, true
}

// migrate upgrades a blob written by an older schema. Output sections added
// after the blob was saved are appended after the highest saved order so the
// user's ordering survives.
func migrate(st *Settings, now time.Time) {
	if st.Version >= SchemaVersion && len(st.Template.OutputSections) > 0 {
		return
	}
	known := map[string]bool{}
	maxOrder := 0
	for _, s := range st.Template.OutputSections {
		known[s.ID] = true
		if s.Order > maxOrder {
			maxOrder = s.Order
		}
	}
	for _, def := range DefaultOutputSections() {
		if !known[def.ID] {
			maxOrder++
			def.Order = maxOrder
			st.Template.OutputSections = append(st.Template.OutputSections, def)
		}
	}
	if st.Version < SchemaVersion {
		st.Version = SchemaVersion
		st.LastUpdated = now.UTC().Format(time.RFC3339)
	}
}

// Clamp forces the bounded numeric settings into their documented ranges.
// Out-of-range values are a semantic oddity, not a fatal condition.
func Clamp(st *Settings) {
	st.Search.MaxResults = clampInt(st.Search.MaxResults, 1, 100)
	st.Search.RecursiveDepth = clampInt(st.Search.RecursiveDepth, 0, 10)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
