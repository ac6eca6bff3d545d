package config

// TabPreset defines a purpose tab: a named bundle of category and
// keyword-chip defaults the user can start from.
type TabPreset struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Categories   []string `json:"categories"`
	KeywordChips []string `json:"keywordChips"`
}

// TemplateBaseDate records the revision date of the built-in template text.
const TemplateBaseDate = "2025-01-15"

// DefaultPriorityDomains lists the official publisher domains searched first.
var DefaultPriorityDomains = []string{
	"mhlw.go.jp",
	"pmda.go.jp",
	"meti.go.jp",
	"soumu.go.jp",
	"digital.go.jp",
	"kantei.go.jp",
}

// DefaultScopeOptions are the selectable exploration scopes.
var DefaultScopeOptions = []string{
	"医療AI",
	"生成AI",
	"SaMD",
	"医療情報セキュリティ",
	"医療データ利活用",
	"研究倫理",
}

// DefaultAudienceOptions are the selectable audience tags.
var DefaultAudienceOptions = []string{
	"医療機関",
	"医療情報システム提供事業者",
	"医療機器製造販売業者",
	"研究者",
	"行政担当者",
}

// TabPresets are the built-in purpose tabs. Order is presentation order and
// the first entry is the default tab.
var TabPresets = []TabPreset{
	{
		ID:   "medical_ai",
		Name: "医療AI全般",
		Categories: []string{
			"3省2ガイドライン",
			"医療AI開発・利活用",
			"医療機器プログラム(SaMD)",
			"医療情報システム安全管理",
			"個人情報・データ保護",
		},
		KeywordChips: []string{
			"医療AI ガイドライン",
			"AI医療機器 承認",
			"医療情報システム 安全管理ガイドライン",
			"診療支援AI",
			"医療 機械学習 規制",
		},
	},
	{
		ID:   "generative_ai",
		Name: "生成AI",
		Categories: []string{
			"生成AI利活用指針",
			"医療機関向け生成AIガイダンス",
			"プロンプト・出力管理",
			"個人情報・データ保護",
		},
		KeywordChips: []string{
			"生成AI ガイドライン 医療",
			"大規模言語モデル 医療 利用",
			"生成AI 個人情報",
			"AI事業者ガイドライン",
		},
	},
	{
		ID:   "samd",
		Name: "SaMD",
		Categories: []string{
			"医療機器プログラム(SaMD)",
			"薬機法・承認審査",
			"変更計画確認(IDATEN)",
			"市販後安全管理",
		},
		KeywordChips: []string{
			"SaMD ガイダンス",
			"プログラム医療機器 該当性",
			"AI医療機器 審査",
			"IDATEN 変更計画",
		},
	},
	{
		ID:   "security",
		Name: "医療情報セキュリティ",
		Categories: []string{
			"医療情報システム安全管理",
			"クラウドサービス利用",
			"サイバーセキュリティ対策",
			"委託・外部保存",
		},
		KeywordChips: []string{
			"医療情報システム 安全管理ガイドライン 最新",
			"医療機関 サイバーセキュリティ",
			"医療情報 クラウド ガイドライン",
			"3省2ガイドライン 対応",
		},
	},
	{
		ID:   "data_use",
		Name: "医療データ利活用",
		Categories: []string{
			"次世代医療基盤法",
			"匿名加工・仮名加工",
			"個人情報・データ保護",
			"越境移転",
		},
		KeywordChips: []string{
			"医療データ 利活用 ガイドライン",
			"次世代医療基盤法 認定事業者",
			"仮名加工医療情報",
			"医療情報 第三者提供",
		},
	},
	{
		ID:   "research_ethics",
		Name: "研究倫理",
		Categories: []string{
			"生命・医学系研究倫理指針",
			"臨床研究法",
			"倫理審査",
			"インフォームドコンセント",
		},
		KeywordChips: []string{
			"医学系研究 倫理指針 最新",
			"臨床研究法 AI",
			"研究倫理審査 医療AI",
			"オプトアウト 医学研究",
		},
	},
}
