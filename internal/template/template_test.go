package template

import (
	"strings"
	"testing"
	"time"

	"github.com/hyperifyio/medprompt/internal/config"
	"github.com/hyperifyio/medprompt/internal/settings"
)

func testPair() (config.Config, settings.Settings) {
	return config.Default("2025-06-01"), settings.Defaults(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
}

func TestAssembleLeavesNoPlaceholdersOrMarkers(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config, *settings.Settings)
	}{
		{"defaults", func(*config.Config, *settings.Settings) {}},
		{"empty lists", func(c *config.Config, _ *settings.Settings) {
			c.Query = ""
			c.Scope = nil
			c.Audiences = nil
			c.Categories = nil
			c.KeywordChips = nil
			c.PriorityDomains = nil
		}},
		{"proof mode on", func(c *config.Config, _ *settings.Settings) { c.ProofMode = true }},
		{"egov off", func(_ *config.Config, s *settings.Settings) { s.Output.EGovCrossReference = false }},
		{"egov off proof on", func(c *config.Config, s *settings.Settings) {
			c.ProofMode = true
			s.Output.EGovCrossReference = false
		}},
		{"all sections disabled", func(_ *config.Config, s *settings.Settings) {
			for i := range s.Template.OutputSections {
				s.Template.OutputSections[i].Enabled = false
			}
		}},
		{"custom instructions", func(_ *config.Config, s *settings.Settings) {
			s.Template.CustomInstructions = "必ず日本語で出力すること"
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, st := testPair()
			tc.mutate(&cfg, &st)
			got := Assemble(cfg, st)

			if strings.Contains(got, "[[") || strings.Contains(got, "]]") {
				t.Errorf("assembled prompt still contains a placeholder token")
			}
			for _, marker := range []string{EgovSectionBegin, EgovSectionEnd, ProofSectionBegin, ProofSectionEnd} {
				if strings.Contains(got, marker) {
					t.Errorf("assembled prompt still contains marker %s", marker)
				}
			}
			if strings.Contains(got, "\n\n\n") {
				t.Errorf("assembled prompt contains a run of blank lines")
			}
			if got != strings.TrimSpace(got) {
				t.Errorf("assembled prompt not trimmed")
			}
		})
	}
}

func TestAssembleSubstitutions(t *testing.T) {
	cfg, st := testPair()
	cfg.Query = "遠隔医療"
	cfg.Scope = []string{"医療AI", "SaMD"}
	cfg.Audiences = []string{"医療機関"}
	cfg.CustomKeywords = []string{"オンライン診療", "  ", ""}
	cfg.ExcludeKeywords = []string{"海外", ""}

	got := Assemble(cfg, st)

	if !strings.Contains(got, "Date_today: 2025-06-01") {
		t.Errorf("date not substituted")
	}
	if !strings.Contains(got, "Query: 遠隔医療") {
		t.Errorf("query not substituted")
	}
	if !strings.Contains(got, "Scope: 医療AI、SaMD") {
		t.Errorf("scope not joined with full-width comma")
	}
	if !strings.Contains(got, "・医療機関") {
		t.Errorf("audiences not bullet-formatted")
	}
	if !strings.Contains(got, "・"+MustKeyword) {
		t.Errorf("must keyword missing")
	}
	if !strings.Contains(got, "・オンライン診療") {
		t.Errorf("custom keyword missing")
	}
	if !strings.Contains(got, "・海外") {
		t.Errorf("exclude keyword missing")
	}
}

func TestAssembleEmptyFallbacks(t *testing.T) {
	cfg, st := testPair()
	cfg.Query = ""
	cfg.Scope = nil
	cfg.Audiences = nil

	got := Assemble(cfg, st)

	if !strings.Contains(got, "Query: (未入力)") {
		t.Errorf("empty query fallback missing")
	}
	if !strings.Contains(got, "Scope: (未指定)") {
		t.Errorf("empty scope fallback missing")
	}
	if !strings.Contains(got, "・(なし)") {
		t.Errorf("empty list fallback missing")
	}
}

func TestAssembleEgovGating(t *testing.T) {
	cfg, st := testPair()

	st.Output.EGovCrossReference = false
	got := Assemble(cfg, st)
	if strings.Contains(got, "https://laws.e-gov.go.jp/") {
		t.Errorf("e-Gov URL present with cross reference disabled")
	}
	if strings.Contains(got, "6. e-Gov法令取得") {
		t.Errorf("e-Gov rule present with cross reference disabled")
	}

	st.Output.EGovCrossReference = true
	got = Assemble(cfg, st)
	if !strings.Contains(got, "https://laws.e-gov.go.jp/api/2/law_data/") {
		t.Errorf("e-Gov API URL missing with cross reference enabled")
	}
	if strings.Contains(got, "該当条文の短い抜粋を含める") {
		t.Errorf("excerpt sentence present without includeLawExcerpts")
	}

	st.Output.IncludeLawExcerpts = true
	got = Assemble(cfg, st)
	if !strings.Contains(got, "該当条文の短い抜粋を含める") {
		t.Errorf("excerpt sentence missing with includeLawExcerpts")
	}
}

func TestAssembleProofGating(t *testing.T) {
	cfg, st := testPair()

	got := Assemble(cfg, st)
	if strings.Contains(got, "# 実証") {
		t.Errorf("proof sections present with proof mode off")
	}

	cfg.ProofMode = true
	got = Assemble(cfg, st)
	if !strings.Contains(got, "# 実証\n") {
		t.Errorf("proof section missing with proof mode on")
	}
	if !strings.Contains(got, "# 実証結果") {
		t.Errorf("proof result section missing with proof mode on")
	}
}

// The e-Gov region answers to settings and the proof region to the
// configuration. Flipping one must not affect the other.
func TestAssembleGatingIndependence(t *testing.T) {
	cfg, st := testPair()
	cfg.ProofMode = true
	st.Output.EGovCrossReference = false

	got := Assemble(cfg, st)
	if strings.Contains(got, "e-Gov法令取得") {
		t.Errorf("e-Gov rule leaked through proof gating")
	}
	if !strings.Contains(got, "# 実証結果") {
		t.Errorf("proof region dropped by settings gate")
	}
}

func TestAssembleExcludedDomains(t *testing.T) {
	cfg, st := testPair()
	st.Search.ExcludedDomains = []string{"example.com"}

	got := Assemble(cfg, st)
	if !strings.Contains(got, "example.com") {
		t.Errorf("excluded domain missing from rules section")
	}
	if !strings.Contains(got, "・除外ドメイン:") {
		t.Errorf("excluded domains sub-block missing")
	}

	st.Search.ExcludedDomains = nil
	got = Assemble(cfg, st)
	if strings.Contains(got, "・除外ドメイン:") {
		t.Errorf("excluded domains sub-block present for empty list")
	}
}

func TestAssemblePriorityRuleWording(t *testing.T) {
	tests := []struct {
		rule settings.PriorityRule
		want string
	}{
		{settings.PriorityRevisedDate, "改定日が最も新しい最新版"},
		{settings.PriorityPublishedDate, "公開日が最も新しい版"},
		{settings.PriorityRelevance, "関連度が最も高い版"},
		{settings.PriorityRule("bogus"), "関連度が最も高い版"},
	}
	for _, tt := range tests {
		t.Run(string(tt.rule), func(t *testing.T) {
			cfg, st := testPair()
			st.Search.PriorityRule = tt.rule
			got := Assemble(cfg, st)
			if !strings.Contains(got, tt.want) {
				t.Errorf("rule %q wording %q missing", tt.rule, tt.want)
			}
		})
	}
}

func TestAssembleRecursiveDepth(t *testing.T) {
	cfg, st := testPair()
	st.Search.RecursiveDepth = 3
	got := Assemble(cfg, st)
	if !strings.Contains(got, "（最大3階層まで）") {
		t.Errorf("depth annotation missing")
	}

	st.Search.RecursiveDepth = 0
	got = Assemble(cfg, st)
	if strings.Contains(got, "階層まで") {
		t.Errorf("depth annotation present at depth 0")
	}
}

func TestOutputSectionsOrderAndToggle(t *testing.T) {
	cfg, st := testPair()

	// Move the guardrail before the disclaimer and disable the guideline list.
	for i := range st.Template.OutputSections {
		switch st.Template.OutputSections[i].ID {
		case settings.SectionGuardrail:
			st.Template.OutputSections[i].Order = 0
		case settings.SectionGuidelineList:
			st.Template.OutputSections[i].Enabled = false
		}
	}

	got := Assemble(cfg, st)
	guardrail := strings.Index(got, "# Guardrail")
	disclaimer := strings.Index(got, "■ 免責")
	if guardrail < 0 || disclaimer < 0 {
		t.Fatalf("expected sections missing")
	}
	if guardrail > disclaimer {
		t.Errorf("sections not rendered by ascending order")
	}
	if strings.Contains(got, "■ ガイドライン一覧") {
		t.Errorf("disabled section still rendered")
	}
}

func TestSearchLogDoubleGating(t *testing.T) {
	tests := []struct {
		name           string
		sectionEnabled bool
		includeLog     bool
		want           bool
	}{
		{"both on", true, true, true},
		{"section off", false, true, false},
		{"flag off", true, false, false},
		{"both off", false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, st := testPair()
			for i := range st.Template.OutputSections {
				if st.Template.OutputSections[i].ID == settings.SectionSearchLog {
					st.Template.OutputSections[i].Enabled = tt.sectionEnabled
				}
			}
			st.Output.IncludeSearchLog = tt.includeLog
			got := strings.Contains(Assemble(cfg, st), "■ 検索ログ")
			if got != tt.want {
				t.Errorf("search log rendered=%v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetailLevelVariants(t *testing.T) {
	cfg, st := testPair()

	st.Output.DetailLevel = settings.DetailConcise
	concise := Assemble(cfg, st)
	st.Output.DetailLevel = settings.DetailStandard
	standard := Assemble(cfg, st)
	st.Output.DetailLevel = settings.DetailDetailed
	detailed := Assemble(cfg, st)

	if strings.Contains(concise, "文書種別") && !strings.Contains(standard, "文書種別") {
		t.Errorf("concise shows more fields than standard")
	}
	if !strings.Contains(standard, "関連法令(e-Govリンク、可能なら該当条文の短い抜粋)") {
		t.Errorf("standard variant fields missing")
	}
	if !strings.Contains(detailed, "実務上の重要ポイント") {
		t.Errorf("detailed variant fields missing")
	}
	if !(len(concise) < len(standard) && len(standard) < len(detailed)) {
		t.Errorf("detail levels are not strict supersets by size: %d, %d, %d", len(concise), len(standard), len(detailed))
	}
}

func TestCustomInstructionsGate(t *testing.T) {
	cfg, st := testPair()

	st.Template.CustomInstructions = "   \n "
	if strings.Contains(Assemble(cfg, st), "# カスタム指示") {
		t.Errorf("blank custom instructions rendered")
	}

	st.Template.CustomInstructions = "表形式で出力すること"
	got := Assemble(cfg, st)
	if !strings.Contains(got, "# カスタム指示\n表形式で出力すること") {
		t.Errorf("custom instructions block missing")
	}
}

func TestAssembleIsDeterministic(t *testing.T) {
	cfg, st := testPair()
	cfg.Query = "遠隔医療"
	a := Assemble(cfg, st)
	b := Assemble(cfg, st)
	if a != b {
		t.Errorf("same input produced different prompts")
	}
}
