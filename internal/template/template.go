// Package template assembles the final prompt text and the search-query list
// from a Config and Settings pair. Every function here is pure and total:
// no I/O, no errors, deterministic output for any well-typed input.
package template

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/hyperifyio/medprompt/internal/config"
	"github.com/hyperifyio/medprompt/internal/settings"
)

// Structural sentinels bounding conditionally included regions. They are
// stripped before the prompt reaches the user, in both the removed and the
// kept case.
const (
	EgovSectionBegin  = "EGOV_SECTION_BEGIN"
	EgovSectionEnd    = "EGOV_SECTION_END"
	ProofSectionBegin = "PROOF_SECTION_BEGIN"
	ProofSectionEnd   = "PROOF_SECTION_END"
)

// MustKeyword is the one fixed required search term. It is always present in
// the assembled prompt and in the first derived query, regardless of
// configuration.
const MustKeyword = "3省2ガイドライン"

var (
	egovRegionRe  = regexp.MustCompile(`(?s)` + EgovSectionBegin + `.*?` + EgovSectionEnd)
	proofRegionRe = regexp.MustCompile(`(?s)` + ProofSectionBegin + `.*?` + ProofSectionEnd)
	egovMarkerRe  = regexp.MustCompile(EgovSectionBegin + `\n?|` + EgovSectionEnd + `\n?`)
	proofMarkerRe = regexp.MustCompile(ProofSectionBegin + `\n?|` + ProofSectionEnd + `\n?`)
	blankRunsRe   = regexp.MustCompile(`\n{3,}`)
)

// formatList renders items as a ・bullet list, one per line. An empty list
// renders as the single placeholder bullet.
func formatList(items []string) string {
	if len(items) == 0 {
		return "・(なし)"
	}
	var sb strings.Builder
	for i, item := range items {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString("・")
		sb.WriteString(item)
	}
	return sb.String()
}

// Assemble produces the full prompt for the given configuration. The result
// contains no [[...]] placeholder and no structural sentinel.
func Assemble(cfg config.Config, st settings.Settings) string {
	settings.Clamp(&st)

	prompt := buildBase(st)

	prompt = strings.ReplaceAll(prompt, "[[DATE_TODAY]]", cfg.DateToday)
	prompt = strings.ReplaceAll(prompt, "[[QUERY]]", orDefault(cfg.Query, "(未入力)"))
	prompt = strings.ReplaceAll(prompt, "[[SCOPE]]", orDefault(strings.Join(cfg.Scope, "、"), "(未指定)"))
	prompt = strings.ReplaceAll(prompt, "[[AUDIENCES_LIST]]", formatList(cfg.Audiences))
	prompt = strings.ReplaceAll(prompt, "[[PRIORITY_DOMAINS_LIST]]", formatList(cfg.PriorityDomains))
	prompt = strings.ReplaceAll(prompt, "[[MUST_KEYWORDS_LIST]]", formatList([]string{MustKeyword}))
	prompt = strings.ReplaceAll(prompt, "[[OPTIONAL_KEYWORDS_LIST]]", formatList(optionalKeywords(cfg)))
	prompt = strings.ReplaceAll(prompt, "[[EXCLUDE_KEYWORDS_LIST]]", formatList(nonBlank(cfg.ExcludeKeywords)))
	prompt = strings.ReplaceAll(prompt, "[[CATEGORIES_LIST]]", formatList(enabledNames(cfg.Categories)))

	// The e-Gov region answers to settings, the proof region to the
	// configuration. The two gates are independent on purpose.
	if !st.Output.EGovCrossReference {
		prompt = egovRegionRe.ReplaceAllString(prompt, "")
	} else {
		prompt = egovMarkerRe.ReplaceAllString(prompt, "")
	}
	if !cfg.ProofMode {
		prompt = proofRegionRe.ReplaceAllString(prompt, "")
	} else {
		prompt = proofMarkerRe.ReplaceAllString(prompt, "")
	}

	prompt = blankRunsRe.ReplaceAllString(prompt, "\n\n")
	return strings.TrimSpace(prompt)
}

// optionalKeywords concatenates enabled keyword-chip names with non-blank
// custom keywords, chip order first.
func optionalKeywords(cfg config.Config) []string {
	out := enabledNames(cfg.KeywordChips)
	return append(out, nonBlank(cfg.CustomKeywords)...)
}

func enabledNames(items []config.Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if it.Enabled {
			out = append(out, it.Name)
		}
	}
	return out
}

func nonBlank(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// buildBase renders the full template with placeholder tokens and sentinel
// markers still in place. Section order is fixed.
func buildBase(st settings.Settings) string {
	sections := []string{
		roleSection(st.Template),
		disclaimerSection(st.Template),
		proofBeginSection(),
		modelDefinition(),
		rulesSection(st.Search),
		egovSection(st.Output),
		taskSection(st),
		outputFormatSection(st),
		inputSection(),
		customInstructionsSection(st.Template),
		proofResultSection(),
	}
	return strings.Join(sections, "\n\n")
}

func roleSection(t settings.Template) string {
	return fmt.Sprintf("# Role\nあなたは、内部知識を一切持たない「%s」です。\n%s",
		t.RoleTitle, strings.TrimSpace(t.RoleDescription))
}

func disclaimerSection(t settings.Template) string {
	var sb strings.Builder
	sb.WriteString("# 注意")
	for _, d := range t.Disclaimers {
		sb.WriteString("\n- ")
		sb.WriteString(d)
	}
	return sb.String()
}

func proofBeginSection() string {
	return ProofSectionBegin + `
# 実証
以下、実用に耐えうるか実証せよ。プロンプトの指示に従い一次資料を取得し、最後に実証結果として達成事項と制約事項を述べよ。
` + ProofSectionEnd
}

func proofResultSection() string {
	return ProofSectionBegin + `
# 実証結果
最後に、本プロンプトが実用に耐えうるかを自己点検し、達成事項と制約事項を簡潔に述べよ。
` + ProofSectionEnd
}

func modelDefinition() string {
	return `# Model Definition

## Variables
$Date_today$: システムの現在日付(YYYY-MM-DD)
$Query$: ユーザーの探索テーマ
$Scope$: 対象範囲(例: 医療AI、生成AI、SaMD、医療情報セキュリティ、医療データ利活用、研究倫理)
$Must_keywords$: 必須検索語
$Optional_keywords$: 追加検索語
$Candidate_docs$: 候補文書リスト
$Doc_title$: 文書タイトル
$Issuer$: 発行主体(省庁、機関、学会、業界団体など)
$Published_date$: 公開日
$Revised_date$: 改定日
$Version$: 版数
$Doc_url$: 公式URL(HTMLまたはPDFの直リンク)
$Doc_type$: 文書種別(ガイドライン、通知、事務連絡、Q&A、手引き、報告書、告示、法令など)
$Fetched_text$: $Doc_url$ から取得した本文テキスト

$Law_name$: 法令名
$Law_ID$: e-Gov法令ID
$U_xml$: e-Gov API URL
$U_web$: e-Gov Web URL
$Law_xml$: $U_xml$ から取得したXML`
}

func rulesSection(s settings.Search) string {
	var sb strings.Builder
	sb.WriteString(`## Rules (Strict Logic)
1. ゼロ知識
   ・一次資料を取得する前に、内容を断定しない
   ・一次資料に書かれていないことは「不明」とする
   ・推測で補完しない

2. 公式優先
   ・候補発見のために一般サイトを使ってよいが、内容の根拠は必ず公式一次資料に限る
   ・公式一次資料に到達できない場合は「公式資料未確認」と明記し、要約はしない
   ・優先ドメイン:
[[PRIORITY_DOMAINS_LIST]]`)

	if len(s.ExcludedDomains) > 0 {
		sb.WriteString("\n   ・除外ドメイン:")
		for _, d := range s.ExcludedDomains {
			sb.WriteString("\n     - ")
			sb.WriteString(d)
		}
	}

	sb.WriteString("\n\n3. 版管理\n   ・同名文書が複数版ある場合、")
	sb.WriteString(priorityPhrase(s.PriorityRule))
	sb.WriteString(`を特定して採用する
   ・旧版も見つかった場合は「旧版」として別枠で併記する

4. 出力リンク形式
   ・出力するURLは必ず Markdown の [表示ラベル](URL) 形式で提示する
   ・生のURL文字列をそのまま表示しない

5. 再帰的参照
   ・一次資料内に別の指針、通知、Q&A、別添、関連ガイドライン、用語集、チェックリストが参照されている場合、リンクを辿って同様に取得し、一覧に追加する`)
	if s.RecursiveDepth > 0 {
		sb.WriteString(fmt.Sprintf("（最大%d階層まで）", s.RecursiveDepth))
	}
	sb.WriteString("\n   ・重複は統合し、最新版を優先する")
	return sb.String()
}

// priorityPhrase picks the version-selection wording. The two dated rules are
// matched exactly; anything else falls through to the relevance wording.
func priorityPhrase(r settings.PriorityRule) string {
	switch r {
	case settings.PriorityRevisedDate:
		return "改定日が最も新しい最新版"
	case settings.PriorityPublishedDate:
		return "公開日が最も新しい版"
	default:
		return "関連度が最も高い版"
	}
}

func egovSection(o settings.Output) string {
	excerpt := ""
	if o.IncludeLawExcerpts {
		excerpt = "\n   ・該当条文の短い抜粋を含める"
	}
	return EgovSectionBegin + `
6. e-Gov法令取得
   ・文書内に法令(法律、政令、省令、告示など)が参照されている場合、可能ならe-Govで法令IDを特定し、下記の正規フォーマットでAPIに直接アクセスしてXMLから条文を取得する
   ・検索エンジンURL、短縮URL、リダイレクトURLを生成しない` + excerpt + `

   API用(固定フォーマット):
   https://laws.e-gov.go.jp/api/2/law_data/{$Law_ID}?applicable_date={$Date_today}

   Web用(固定フォーマット):
   https://laws.e-gov.go.jp/law/{$Law_ID}
` + EgovSectionEnd
}

func taskSection(st settings.Settings) string {
	var sb strings.Builder
	sb.WriteString(`# Task

## Phase 1: 探索計画の確定
1. ユーザー入力から $Query と $Scope を整理する(目的、対象者、用途、期間)
2. $Must_keywords を確定する。必ず次を含める
   ・` + MustKeyword + `
3. $Optional_keywords を生成する。検索語は`)
	sb.WriteString(languagePhrase(st.Output.LanguageMode))
	sb.WriteString(`
   追加検索語候補:
[[OPTIONAL_KEYWORDS_LIST]]
4. `)
	if st.Search.UseSiteOperator {
		sb.WriteString("優先ドメインに対して site: 指定も併用する(例: site:mhlw.go.jp 医療AI ガイドライン)")
	} else {
		sb.WriteString("優先ドメインを参考に検索する")
	}
	sb.WriteString("\n5. ")
	if st.Search.UseFiletypeOperator && len(st.Search.Filetypes) > 0 {
		sb.WriteString(fmt.Sprintf("filetype:%s 指定を併用する", strings.Join(st.Search.Filetypes, "/")))
	} else {
		sb.WriteString("検索結果は必ず公開日・改定日を確認し、最新版らしいものを優先して開く")
	}
	sb.WriteString(fmt.Sprintf(`

## Phase 2: 候補文書の収集と一次資料取得
1. 検索で見つかった候補を $Candidate_docs に記録する（最大%d件）
   ・タイトル、発行主体、版数、公開日、改定日、対象者、URL、文書種別、形式(PDF/HTML)
2. 各候補について $Doc_url を開き、本文 $Fetched_text を取得する
3. PDFの場合は本文を読み取り、医療AIに関係する箇所(AI、機械学習、生成AI、SaMD、医療機器、医療情報、匿名加工、仮名加工、委託、クラウド、越境移転、セキュリティ等)を特定する

## Phase 3: 必須テーマの確定
1. 「3省2ガイドライン」を構成する文書を、公式一次資料に基づいて確定する
   ・正式名称
   ・最新版の版数と改定日
   ・対象(医療機関向け、提供事業者向け等)
   ・公式URL(ページとPDF)
2. 医療AIに関する他の国内ガイドラインも、同様に最新版と根拠URLを確定する

## Phase 4: 法令クロスリファレンス(必要時)
1. 各文書で参照されている主要な法令名を抽出する
2. e-Govで法令IDを特定できる場合、固定フォーマットのAPI URLを生成してXMLを取得する
3. 医療AIに関係する条文参照がある場合のみ、該当条文を短く引用し、どの要求事項と紐付くか整理する
4. 法令IDを特定できない場合は「法令ID特定不能」と明記する`, st.Search.MaxResults))
	return sb.String()
}

func languagePhrase(m settings.LanguageMode) string {
	switch m {
	case settings.LanguageJapaneseOnly:
		return "日本語を基本とする"
	case settings.LanguageEnglishPriority:
		return "英語を優先し、必要に応じて日本語も併用する"
	default:
		return "日本語を基本とし、必要に応じて英語(SaMD等)も併用する"
	}
}

func inputSection() string {
	return `# Input
Date_today: [[DATE_TODAY]]
Query: [[QUERY]]
Scope: [[SCOPE]]

Audiences:
[[AUDIENCES_LIST]]

PriorityDomains:
[[PRIORITY_DOMAINS_LIST]]

Must_keywords:
[[MUST_KEYWORDS_LIST]]

Optional_keywords:
[[OPTIONAL_KEYWORDS_LIST]]

Exclude_keywords:
[[EXCLUDE_KEYWORDS_LIST]]

Instruction:
次の条件で検索と整理を実行せよ。
- 必須検索語: Must_keywords
- 追加検索語: Optional_keywords
- 除外キーワード: Exclude_keywords
- 対象者: Audiences
- 優先ドメイン: PriorityDomains
- 可能な限り公式一次資料(PDF含む)へ到達し、最新版を確定すること`
}

func customInstructionsSection(t settings.Template) string {
	if strings.TrimSpace(t.CustomInstructions) == "" {
		return ""
	}
	return "\n# カスタム指示\n" + t.CustomInstructions + "\n"
}
