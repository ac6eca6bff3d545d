package llm

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/hyperifyio/medprompt/internal/template"
)

var (
	egovRegionRe = regexp.MustCompile(`(?s)` + template.EgovSectionBegin + `.*?` + template.EgovSectionEnd)
	depthRe      = regexp.MustCompile(`（最大\d+階層まで）`)
)

const (
	egovRuleHeading   = "6. e-Gov法令取得"
	lawPhaseHeading   = "## Phase 4: 法令クロスリファレンス"
	simplifiedPhase   = "## Phase 4: 法令参照（オプション）\n可能であれば、関連法令名を記載する。\n\n"
	searchTipsHeading = `
# 事前準備（Web検索機能がない場合）
このLLMにはWeb検索機能がないため、以下の手順で使用してください：
1. 別途ブラウザで検索を行い、関連するガイドラインのPDFをダウンロード
2. PDFをこのチャットにアップロード
3. 本プロンプトの指示に従って分析を依頼

`
)

// AdjustPrompt rewrites an assembled prompt for a model's declared
// capability gaps. A model without adjustments gets the prompt back
// unchanged. The transform is NOT idempotent: a second application can
// prepend the search-tips header again, so callers apply it exactly once per
// render.
func AdjustPrompt(prompt string, m *Model) string {
	if m == nil || m.Adjustments == nil {
		return prompt
	}
	adj := m.Adjustments
	out := prompt

	if adj.RemoveEgovAPI {
		out = egovRegionRe.ReplaceAllString(out, "")
		out = cutBlock(out, egovRuleHeading, "")
	}

	if adj.RecursiveDepth > 0 {
		out = depthRe.ReplaceAllString(out, "（最大"+strconv.Itoa(adj.RecursiveDepth)+"階層まで）")
	}

	// Both conditions: the rule must ask for tips AND the model must
	// actually lack browsing.
	if adj.AddSearchTips && !m.HasWebBrowsing {
		out = searchTipsHeading + out
	}

	if adj.SimplifyInstructions {
		out = cutBlock(out, lawPhaseHeading, simplifiedPhase)
	}

	return strings.TrimSpace(out)
}

// cutBlock removes the first block starting at heading and running to the
// next "\n\n#" section boundary (or end of text), substituting replacement.
// RE2 has no lookahead, so the boundary is found by an index scan.
func cutBlock(s, heading, replacement string) string {
	start := strings.Index(s, heading)
	if start < 0 {
		return s
	}
	end := strings.Index(s[start:], "\n\n#")
	if end < 0 {
		return s[:start] + replacement
	}
	return s[:start] + replacement + s[start+end:]
}
