package template

import (
	"fmt"
	"strings"

	"github.com/hyperifyio/medprompt/internal/config"
	"github.com/hyperifyio/medprompt/internal/settings"
)

// genericTheme substitutes for an empty user theme in derived queries.
const genericTheme = "医療AI"

// SearchQueries derives ready-to-paste search strings from the
// configuration. Construction order is fixed and the list is truncated,
// never reordered, to min(10, maxResults). The first entry always exists.
func SearchQueries(cfg config.Config, st settings.Settings) []string {
	settings.Clamp(&st)
	theme := orDefault(cfg.Query, genericTheme)

	queries := []string{
		fmt.Sprintf("%s %s ガイドライン 最新版", MustKeyword, theme),
	}

	if cfg.Query != "" {
		queries = append(queries, cfg.Query+" ガイドライン 国内")
	}

	chips := enabledNames(cfg.KeywordChips)
	if len(chips) > 5 {
		chips = chips[:5]
	}
	queries = append(queries, chips...)

	if cfg.OfficialDomainPriority && st.Search.UseSiteOperator {
		domains := cfg.PriorityDomains
		if len(domains) > 3 {
			domains = domains[:3]
		}
		for _, d := range domains {
			queries = append(queries, fmt.Sprintf("site:%s %s ガイドライン", d, theme))
		}
	}

	if st.Search.UseFiletypeOperator && len(st.Search.Filetypes) > 0 {
		parts := make([]string, 0, len(st.Search.Filetypes))
		for _, ft := range st.Search.Filetypes {
			parts = append(parts, "filetype:"+ft)
		}
		queries = append(queries, fmt.Sprintf("%s ガイドライン (%s)", theme, strings.Join(parts, " OR ")))
	}

	limit := st.Search.MaxResults
	if limit > 10 {
		limit = 10
	}
	if len(queries) > limit {
		queries = queries[:limit]
	}
	return queries
}
