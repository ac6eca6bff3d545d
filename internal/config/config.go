package config

// Config is the user-editable record that drives prompt generation. It is
// always fully defined: Default applies every field, and mutation replaces
// sub-records wholesale, so the assembly engine never sees partial input.
type Config struct {
	DateToday string   `json:"dateToday"`
	Query     string   `json:"query"`
	Scope     []string `json:"scope"`
	Audiences []string `json:"audiences"`

	ThreeMinistryGuidelines bool `json:"threeMinistryGuidelines"`
	OfficialDomainPriority  bool `json:"officialDomainPriority"`
	SiteOperator            bool `json:"siteOperator"`
	LatestVersionPriority   bool `json:"latestVersionPriority"`
	PDFDirectLink           bool `json:"pdfDirectLink"`
	IncludeSearchLog        bool `json:"includeSearchLog"`
	EGovCrossReference      bool `json:"eGovCrossReference"`
	ProofMode               bool `json:"proofMode"`

	Categories   []Item `json:"categories"`
	KeywordChips []Item `json:"keywordChips"`

	CustomKeywords  []string `json:"customKeywords"`
	ExcludeKeywords []string `json:"excludeKeywords"`

	PriorityDomains []string `json:"priorityDomains"`

	ActiveTab string `json:"activeTab"`
}

// Item is a named toggle. Order within its containing slice is the
// definition order and is preserved across edits.
type Item struct {
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

// Default returns a fully populated Config for the given calendar date,
// seeded from the first tab preset.
func Default(dateToday string) Config {
	cfg := Config{
		DateToday:               dateToday,
		Query:                   "",
		Scope:                   []string{},
		Audiences:               []string{},
		ThreeMinistryGuidelines: true,
		OfficialDomainPriority:  true,
		SiteOperator:            true,
		LatestVersionPriority:   true,
		PDFDirectLink:           true,
		IncludeSearchLog:        true,
		EGovCrossReference:      true,
		ProofMode:               false,
		CustomKeywords:          []string{},
		ExcludeKeywords:         []string{},
		PriorityDomains:         append([]string{}, DefaultPriorityDomains...),
	}
	ApplyPreset(&cfg, TabPresets[0])
	return cfg
}

// ApplyPreset switches the active purpose tab, replacing the category and
// keyword-chip lists with the preset's definitions. All entries start
// enabled; users toggle them off individually.
func ApplyPreset(cfg *Config, p TabPreset) {
	cfg.ActiveTab = p.ID
	cfg.Categories = itemsFrom(p.Categories)
	cfg.KeywordChips = itemsFrom(p.KeywordChips)
}

// PresetByID returns the tab preset with the given id, falling back to the
// first preset when the id is unknown.
func PresetByID(id string) TabPreset {
	for _, p := range TabPresets {
		if p.ID == id {
			return p
		}
	}
	return TabPresets[0]
}

func itemsFrom(names []string) []Item {
	out := make([]Item, 0, len(names))
	for _, n := range names {
		out = append(out, Item{Name: n, Enabled: true})
	}
	return out
}
