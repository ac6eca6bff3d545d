package settings

import "time"

// Settings is the separately persisted record controlling template wording,
// search rules, output formatting and UI preferences. Version and LastUpdated
// drive merge decisions at load time and must survive the codec unchanged.
type Settings struct {
	Template Template `json:"template"`
	Search   Search   `json:"search"`
	Output   Output   `json:"output"`
	UI       UI       `json:"ui"`

	Version     int    `json:"version"`
	LastUpdated string `json:"lastUpdated"`
}

// Template holds the editable wording of the assembled prompt.
type Template struct {
	RoleTitle          string          `json:"roleTitle"`
	RoleDescription    string          `json:"roleDescription"`
	Disclaimers        []string        `json:"disclaimers"`
	OutputSections     []OutputSection `json:"outputSections"`
	CustomInstructions string          `json:"customInstructions"`
}

// OutputSection is a named, orderable, toggle-able unit of the output-format
// block. A disabled section contributes nothing to the prompt body but keeps
// its identity and order across edits.
type OutputSection struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
	Order   int    `json:"order"`
}

// PriorityRule selects which version of a document wins when several exist.
type PriorityRule string

const (
	PriorityRevisedDate   PriorityRule = "revised_date"
	PriorityPublishedDate PriorityRule = "published_date"
	PriorityRelevance     PriorityRule = "relevance"
)

// Search holds the search-operator rules.
type Search struct {
	UseSiteOperator     bool         `json:"useSiteOperator"`
	UseFiletypeOperator bool         `json:"useFiletypeOperator"`
	Filetypes           []string     `json:"filetypes"`
	PriorityRule        PriorityRule `json:"priorityRule"`
	ExcludedDomains     []string     `json:"excludedDomains"`
	MaxResults          int          `json:"maxResults"`
	RecursiveDepth      int          `json:"recursiveDepth"`
}

// LanguageMode selects the language of generated search terms.
type LanguageMode string

const (
	LanguageJapaneseOnly    LanguageMode = "japanese_only"
	LanguageMixed           LanguageMode = "mixed"
	LanguageEnglishPriority LanguageMode = "english_priority"
)

// DetailLevel selects how much detail the guideline list asks for. Each
// level is a strict superset of the previous one.
type DetailLevel string

const (
	DetailConcise  DetailLevel = "concise"
	DetailStandard DetailLevel = "standard"
	DetailDetailed DetailLevel = "detailed"
)

// OutputFormat selects the rendering of the final prompt artifact.
type OutputFormat string

const (
	FormatMarkdown  OutputFormat = "markdown"
	FormatPlainText OutputFormat = "plain_text"
)

// Output holds output-formatting rules.
type Output struct {
	LanguageMode        LanguageMode `json:"languageMode"`
	IncludeEnglishTerms bool         `json:"includeEnglishTerms"`
	DetailLevel         DetailLevel  `json:"detailLevel"`
	EGovCrossReference  bool         `json:"eGovCrossReference"`
	IncludeLawExcerpts  bool         `json:"includeLawExcerpts"`
	OutputFormat        OutputFormat `json:"outputFormat"`
	IncludeSearchLog    bool         `json:"includeSearchLog"`
}

// UI holds presentation-only preferences. They never influence the assembled
// prompt but live in the same persisted blob.
type UI struct {
	Theme             string `json:"theme"`
	FontSize          string `json:"fontSize"`
	DefaultOutputTab  string `json:"defaultOutputTab"`
	DefaultPurposeTab string `json:"defaultPurposeTab"`
	CompactMode       bool   `json:"compactMode"`
	ShowTooltips      bool   `json:"showTooltips"`
	AnimationsEnabled bool   `json:"animationsEnabled"`
}

// SchemaVersion is the current persisted-settings schema version.
const SchemaVersion = 2

// Built-in template wording. Users can edit every piece and restore these.
const (
	DefaultRoleTitle = "医療分野ガイドライン調査アシスタント"

	DefaultRoleDescription = "公式一次資料のみを根拠として、医療AIに関する国内の法令・ガイドライン・通知を探索し、最新版を特定して整理する。内部知識による補完や推測は行わない。"
)

// DefaultDisclaimers are the built-in caution lines.
var DefaultDisclaimers = []string{
	"本プロンプトは情報整理の支援を目的とし、法的助言を提供するものではない",
	"出力内容は必ず公式一次資料で確認すること",
	"個別の判断が必要な場合は有資格者など専門家に相談すること",
}

// Known output-section ids, in their default order.
const (
	SectionDisclaimer       = "disclaimer"
	SectionSearchConditions = "search_conditions"
	SectionDataSources      = "data_sources"
	SectionGuidelineList    = "guideline_list"
	SectionThreeMinistry    = "three_ministry"
	SectionSearchLog        = "search_log"
	SectionGuardrail        = "guardrail"
)

// DefaultOutputSections returns the built-in output-format sections, all
// enabled, in ascending order.
func DefaultOutputSections() []OutputSection {
	return []OutputSection{
		{ID: SectionDisclaimer, Name: "免責", Enabled: true, Order: 1},
		{ID: SectionSearchConditions, Name: "検索条件", Enabled: true, Order: 2},
		{ID: SectionDataSources, Name: "参照データソース", Enabled: true, Order: 3},
		{ID: SectionGuidelineList, Name: "ガイドライン一覧", Enabled: true, Order: 4},
		{ID: SectionThreeMinistry, Name: "3省2ガイドラインの確定結果", Enabled: true, Order: 5},
		{ID: SectionSearchLog, Name: "検索ログ", Enabled: true, Order: 6},
		{ID: SectionGuardrail, Name: "ガードレール", Enabled: true, Order: 7},
	}
}

// Defaults returns a fully populated Settings stamped with the given time.
func Defaults(now time.Time) Settings {
	return Settings{
		Template: Template{
			RoleTitle:          DefaultRoleTitle,
			RoleDescription:    DefaultRoleDescription,
			Disclaimers:        append([]string{}, DefaultDisclaimers...),
			OutputSections:     DefaultOutputSections(),
			CustomInstructions: "",
		},
		Search: Search{
			UseSiteOperator:     true,
			UseFiletypeOperator: true,
			Filetypes:           []string{"pdf"},
			PriorityRule:        PriorityRevisedDate,
			ExcludedDomains:     []string{},
			MaxResults:          20,
			RecursiveDepth:      2,
		},
		Output: Output{
			LanguageMode:        LanguageMixed,
			IncludeEnglishTerms: true,
			DetailLevel:         DetailStandard,
			EGovCrossReference:  true,
			IncludeLawExcerpts:  false,
			OutputFormat:        FormatMarkdown,
			IncludeSearchLog:    true,
		},
		UI: UI{
			Theme:             "system",
			FontSize:          "medium",
			DefaultOutputTab:  "prompt",
			DefaultPurposeTab: "medical_ai",
			CompactMode:       false,
			ShowTooltips:      true,
			AnimationsEnabled: true,
		},
		Version:     SchemaVersion,
		LastUpdated: now.UTC().Format(time.RFC3339),
	}
}
