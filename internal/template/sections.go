package template

import (
	"sort"
	"strings"

	"github.com/hyperifyio/medprompt/internal/settings"
)

// outputFormatSection emits the enabled output sections in ascending order.
// Disabled entries contribute nothing but keep their identity and order in
// the settings. Unknown section ids are skipped.
func outputFormatSection(st settings.Settings) string {
	enabled := make([]settings.OutputSection, 0, len(st.Template.OutputSections))
	for _, s := range st.Template.OutputSections {
		if s.Enabled {
			enabled = append(enabled, s)
		}
	}
	sort.SliceStable(enabled, func(i, j int) bool { return enabled[i].Order < enabled[j].Order })

	var sb strings.Builder
	sb.WriteString("# Output Format\n")
	for _, s := range enabled {
		switch s.ID {
		case settings.SectionDisclaimer:
			sb.WriteString(`
■ 免責
・本出力は情報整理支援です。個別ケースについては有資格者など専門家にご相談下さい。
・本出力は[[DATE_TODAY]]時点の取得結果であり、更新があり得るため一次資料で確認すること。
`)
		case settings.SectionSearchConditions:
			sb.WriteString(`
■ 検索条件
・日付: [[DATE_TODAY]]
・テーマ: [[QUERY]]
・範囲: [[SCOPE]]
・優先: 公式一次資料、最新版
`)
		case settings.SectionDataSources:
			sb.WriteString(`
■ 参照データソース
・各文書について [公式ページ](URL) と [PDF](URL) を列挙(存在する方のみ)
・法令は [XMLデータ(API)](U_xml) と [公式閲覧(e-Gov)](U_web)
`)
		case settings.SectionGuidelineList:
			sb.WriteString("\n■ ガイドライン一覧\nカテゴリ別に、各文書を次の項目で整理する\n")
			sb.WriteString(guidelineFields(st.Output.DetailLevel))
			sb.WriteString("\n\nカテゴリ例\n[[CATEGORIES_LIST]]\n")
		case settings.SectionThreeMinistry:
			sb.WriteString(`
■ 3省2ガイドラインの確定結果
・構成文書の対応関係
・対象者の違い
・実務上の重要ポイント
`)
		case settings.SectionSearchLog:
			// Double gated: the section toggle and the output flag must
			// both be on.
			if st.Output.IncludeSearchLog {
				sb.WriteString(`
■ 検索ログ
・実際に使った検索語
・参照した公式ドメイン一覧
・除外した候補と理由(例: 公式一次資料に到達できない)
`)
			}
		case settings.SectionGuardrail:
			sb.WriteString(`
# Guardrail
・一次資料を開けない、本文を取得できない場合は、その旨を明記して推測しない
・最新版か不明な場合は、候補の改定日を比較し「最新版候補」として扱う
・出力リンクは必ず [表示ラベル](URL) 形式に統一する
・e-Govは上記の固定フォーマットのみを使い、検索エンジン経由のURL生成をしない
`)
		}
	}
	return sb.String()
}

// guidelineFields returns the per-document field list. Each detail level is a
// strict superset of the one below it.
func guidelineFields(level settings.DetailLevel) string {
	switch level {
	case settings.DetailConcise:
		return `・タイトル
・発行主体
・最新版の版数と改定日
・公式URL`
	case settings.DetailDetailed:
		return `・タイトル
・発行主体
・文書種別
・最新版の版数と改定日
・対象者と適用範囲
・医療AIとの関係(本文の根拠となる詳細な抜粋と要約)
・関連法令(e-Govリンク、該当条文の抜粋)
・関連する他のガイドライン
・実務上の重要ポイント`
	default:
		return `・タイトル
・発行主体
・文書種別
・最新版の版数と改定日
・対象者と適用範囲
・医療AIとの関係(本文の根拠となる短い抜粋と要約)
・関連法令(e-Govリンク、可能なら該当条文の短い抜粋)`
	}
}
