package llm

// Providers is the full catalogue, in presentation order.
var Providers = []ProviderInfo{
	{
		ID:          Gemini,
		Name:        "Google Gemini",
		Icon:        "✦",
		Color:       "#4285F4",
		Description: "Googleの最新AI。ブラウジング機能が強力",
		FreeModel: Model{
			ID:             "gemini-flash-free",
			Name:           "Gemini 1.5 Flash (無料)",
			Provider:       Gemini,
			Tier:           TierFree,
			HasWebBrowsing: true,
			MaxTokens:      8192,
			ContextWindow:  128000,
			Features: []string{
				"Web検索・ブラウジング対応",
				"長文コンテキスト（128K）",
				"PDF読み取り可能",
				"日本語対応良好",
			},
			Limitations: []string{
				"1日あたりのリクエスト数制限",
				"複雑な推論は精度低下の可能性",
				"Deep Research機能なし",
			},
			Tips: []string{
				"シンプルな検索クエリから始める",
				"1回の検索で3-5件程度に絞る",
			},
			Adjustments: &Adjustments{SimplifyInstructions: true, RecursiveDepth: 1},
		},
		PaidModels: []Model{
			{
				ID:             "gemini-pro",
				Name:           "Gemini 1.5 Pro",
				Provider:       Gemini,
				Tier:           TierPaid,
				HasWebBrowsing: true,
				MaxTokens:      32768,
				ContextWindow:  1000000,
				Features: []string{
					"Web検索・ブラウジング対応",
					"超長文コンテキスト（1M）",
					"PDF読み取り可能",
					"高精度な推論",
					"コード実行可能",
				},
				Limitations: []string{"API利用は従量課金"},
				Tips: []string{
					"Deep Research機能を活用",
					"複数文書の同時分析が可能",
				},
				Adjustments: &Adjustments{RecursiveDepth: 3},
			},
			{
				ID:             "gemini-2-flash",
				Name:           "Gemini 2.0 Flash",
				Provider:       Gemini,
				Tier:           TierPaid,
				HasWebBrowsing: true,
				MaxTokens:      32768,
				ContextWindow:  1000000,
				Features: []string{
					"Web検索・ブラウジング対応",
					"超長文コンテキスト（1M）",
					"マルチモーダル対応強化",
					"高速レスポンス",
					"Deep Research対応",
				},
				Limitations: []string{},
				Tips: []string{
					"Deep Researchで網羅的な検索が可能",
					"e-Gov API直接アクセス推奨",
				},
				Adjustments: &Adjustments{RecursiveDepth: 3},
			},
		},
	},
	{
		ID:          ChatGPT,
		Name:        "ChatGPT",
		Icon:        "◉",
		Color:       "#10A37F",
		Description: "OpenAIの対話AI。Browse with Bing対応",
		FreeModel: Model{
			ID:             "gpt-4o-mini-free",
			Name:           "GPT-4o mini (無料)",
			Provider:       ChatGPT,
			Tier:           TierFree,
			HasWebBrowsing: false,
			MaxTokens:      4096,
			ContextWindow:  128000,
			Features: []string{
				"高速レスポンス",
				"日本語対応良好",
				"コンテキスト128K",
			},
			Limitations: []string{
				"Web検索機能なし（無料版）",
				"最新情報の取得不可",
				"PDF直接読み取り不可",
			},
			Tips: []string{
				"事前に検索結果をコピペして使用",
				"ガイドライン名を正確に指定",
			},
			Adjustments: &Adjustments{RemoveEgovAPI: true, SimplifyInstructions: true, AddSearchTips: true},
		},
		PaidModels: []Model{
			{
				ID:             "gpt-4o",
				Name:           "GPT-4o (Plus/Team)",
				Provider:       ChatGPT,
				Tier:           TierPaid,
				HasWebBrowsing: true,
				MaxTokens:      16384,
				ContextWindow:  128000,
				Features: []string{
					"Browse with Bing対応",
					"高精度な推論",
					"コード実行可能",
					"ファイルアップロード対応",
					"DALL-E画像生成",
				},
				Limitations: []string{
					"Bing検索経由のため一部サイト非対応",
					"e-Gov API直接アクセス不安定",
				},
				Tips: []string{
					"site:指定を活用",
					"PDF URLを直接指定して読み取り",
				},
				Adjustments: &Adjustments{RemoveEgovAPI: true, RecursiveDepth: 2},
			},
			{
				ID:             "gpt-4-turbo",
				Name:           "GPT-4 Turbo",
				Provider:       ChatGPT,
				Tier:           TierPaid,
				HasWebBrowsing: true,
				MaxTokens:      32768,
				ContextWindow:  128000,
				Features: []string{
					"Browse with Bing対応",
					"最高精度の推論",
					"長文出力対応",
				},
				Limitations: []string{"レスポンスがやや遅い"},
				Tips:        []string{"複雑な分析タスクに最適"},
				Adjustments: &Adjustments{RemoveEgovAPI: true, RecursiveDepth: 2},
			},
		},
	},
	{
		ID:          Claude,
		Name:        "Claude",
		Icon:        "◈",
		Color:       "#D97706",
		Description: "Anthropicの対話AI。長文処理に強い",
		FreeModel: Model{
			ID:             "claude-3-sonnet-free",
			Name:           "Claude 3.5 Sonnet (無料)",
			Provider:       Claude,
			Tier:           TierFree,
			HasWebBrowsing: false,
			MaxTokens:      4096,
			ContextWindow:  200000,
			Features: []string{
				"超長文コンテキスト（200K）",
				"高精度な日本語処理",
				"PDF/ドキュメント分析",
				"Artifacts機能",
			},
			Limitations: []string{
				"Web検索機能なし",
				"最新情報の取得不可",
				"1日あたりのメッセージ数制限",
			},
			Tips: []string{
				"PDFをアップロードして分析",
				"事前に検索結果をコピペ",
			},
			Adjustments: &Adjustments{RemoveEgovAPI: true, SimplifyInstructions: true, AddSearchTips: true},
		},
		PaidModels: []Model{
			{
				ID:             "claude-3-opus",
				Name:           "Claude 3 Opus (Pro)",
				Provider:       Claude,
				Tier:           TierPaid,
				HasWebBrowsing: false,
				MaxTokens:      8192,
				ContextWindow:  200000,
				Features: []string{
					"最高精度の推論",
					"超長文コンテキスト（200K）",
					"複雑なタスク処理",
					"Artifacts機能",
				},
				Limitations: []string{
					"Web検索機能なし",
					"PDFアップロードで対応",
				},
				Tips: []string{
					"複数PDFを同時アップロード",
					"詳細な分析・比較に最適",
				},
				Adjustments: &Adjustments{RemoveEgovAPI: true, AddSearchTips: true, RecursiveDepth: 2},
			},
			{
				ID:             "claude-3-5-sonnet",
				Name:           "Claude 3.5 Sonnet (Pro)",
				Provider:       Claude,
				Tier:           TierPaid,
				HasWebBrowsing: false,
				MaxTokens:      8192,
				ContextWindow:  200000,
				Features: []string{
					"高速かつ高精度",
					"超長文コンテキスト（200K）",
					"Artifacts機能",
					"コード実行可能",
				},
				Limitations: []string{"Web検索機能なし"},
				Tips: []string{
					"バランスの取れた選択肢",
					"PDFアップロードで対応",
				},
				Adjustments: &Adjustments{RemoveEgovAPI: true, AddSearchTips: true, RecursiveDepth: 2},
			},
		},
	},
	{
		ID:          Perplexity,
		Name:        "Perplexity",
		Icon:        "◎",
		Color:       "#6366F1",
		Description: "検索特化AI。リアルタイム情報に強い",
		FreeModel: Model{
			ID:             "perplexity-free",
			Name:           "Perplexity (無料)",
			Provider:       Perplexity,
			Tier:           TierFree,
			HasWebBrowsing: true,
			MaxTokens:      4096,
			ContextWindow:  32000,
			Features: []string{
				"リアルタイムWeb検索",
				"出典URL自動表示",
				"日本語対応",
			},
			Limitations: []string{
				"1日あたりの検索数制限",
				"Pro Search機能なし",
				"ファイルアップロード制限",
			},
			Tips: []string{
				"シンプルな検索クエリで使用",
				"出典リンクを確認",
			},
			Adjustments: &Adjustments{SimplifyInstructions: true, RecursiveDepth: 1},
		},
		PaidModels: []Model{
			{
				ID:             "perplexity-pro",
				Name:           "Perplexity Pro",
				Provider:       Perplexity,
				Tier:           TierPaid,
				HasWebBrowsing: true,
				MaxTokens:      8192,
				ContextWindow:  128000,
				Features: []string{
					"Pro Search（深掘り検索）",
					"無制限検索",
					"ファイルアップロード対応",
					"GPT-4/Claude選択可能",
				},
				Limitations: []string{},
				Tips: []string{
					"Pro Searchで網羅的な検索",
					"複数ソースの自動統合",
				},
				Adjustments: &Adjustments{RecursiveDepth: 2},
			},
		},
	},
	{
		ID:          Copilot,
		Name:        "Microsoft Copilot",
		Icon:        "◇",
		Color:       "#0078D4",
		Description: "MicrosoftのAI。Bing検索連携",
		FreeModel: Model{
			ID:             "copilot-free",
			Name:           "Copilot (無料)",
			Provider:       Copilot,
			Tier:           TierFree,
			HasWebBrowsing: true,
			MaxTokens:      4096,
			ContextWindow:  32000,
			Features: []string{
				"Bing検索連携",
				"出典URL表示",
				"Edge統合",
			},
			Limitations: []string{
				"1日あたりの会話数制限",
				"長文出力制限",
				"複雑なタスクは精度低下",
			},
			Tips: []string{
				"Edgeブラウザで使用推奨",
				"シンプルな検索から開始",
			},
			Adjustments: &Adjustments{SimplifyInstructions: true, RecursiveDepth: 1},
		},
		PaidModels: []Model{
			{
				ID:             "copilot-pro",
				Name:           "Copilot Pro",
				Provider:       Copilot,
				Tier:           TierPaid,
				HasWebBrowsing: true,
				MaxTokens:      8192,
				ContextWindow:  128000,
				Features: []string{
					"GPT-4 Turbo使用",
					"優先アクセス",
					"Office統合",
					"DALL-E画像生成",
				},
				Limitations: []string{},
				Tips: []string{
					"Office文書との連携が便利",
					"Word/Excelでの整理に活用",
				},
				Adjustments: &Adjustments{RecursiveDepth: 2},
			},
		},
	},
}
