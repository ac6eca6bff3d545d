// Package validate performs structural validation of configuration and
// settings values at the application boundary. The core engine never depends
// on it: validation reports issues, it does not gate assembly.
package validate

import (
	"fmt"
	"strings"

	"github.com/hyperifyio/medprompt/internal/config"
	"github.com/hyperifyio/medprompt/internal/settings"
)

// Issue is one field-level problem found in a structure.
type Issue struct {
	Field   string
	Message string
}

func (i Issue) String() string {
	return i.Field + ": " + i.Message
}

// Config checks a configuration for structural problems. A non-empty result
// is advisory: the template engine stays total over odd-but-complete input.
func Config(cfg config.Config) []Issue {
	var issues []Issue
	if strings.TrimSpace(cfg.DateToday) == "" {
		issues = append(issues, Issue{Field: "dateToday", Message: "must not be empty"})
	}
	if strings.TrimSpace(cfg.ActiveTab) == "" {
		issues = append(issues, Issue{Field: "activeTab", Message: "must not be empty"})
	}
	for idx, c := range cfg.Categories {
		if strings.TrimSpace(c.Name) == "" {
			issues = append(issues, Issue{Field: fmt.Sprintf("categories[%d].name", idx), Message: "must not be empty"})
		}
	}
	for idx, k := range cfg.KeywordChips {
		if strings.TrimSpace(k.Name) == "" {
			issues = append(issues, Issue{Field: fmt.Sprintf("keywordChips[%d].name", idx), Message: "must not be empty"})
		}
	}
	for idx, d := range cfg.PriorityDomains {
		if strings.ContainsAny(d, " \t") {
			issues = append(issues, Issue{Field: fmt.Sprintf("priorityDomains[%d]", idx), Message: "must not contain whitespace"})
		}
	}
	return issues
}

// Settings checks extended settings for structural problems. Out-of-range
// bounded values are reported here and clamped by settings.Clamp, never
// fatal.
func Settings(st settings.Settings) []Issue {
	var issues []Issue
	if st.Search.MaxResults < 1 || st.Search.MaxResults > 100 {
		issues = append(issues, Issue{Field: "search.maxResults", Message: "must be between 1 and 100"})
	}
	if st.Search.RecursiveDepth < 0 || st.Search.RecursiveDepth > 10 {
		issues = append(issues, Issue{Field: "search.recursiveDepth", Message: "must be between 0 and 10"})
	}
	switch st.Search.PriorityRule {
	case settings.PriorityRevisedDate, settings.PriorityPublishedDate, settings.PriorityRelevance:
	default:
		issues = append(issues, Issue{Field: "search.priorityRule", Message: "unknown value " + string(st.Search.PriorityRule)})
	}
	switch st.Output.LanguageMode {
	case settings.LanguageJapaneseOnly, settings.LanguageMixed, settings.LanguageEnglishPriority:
	default:
		issues = append(issues, Issue{Field: "output.languageMode", Message: "unknown value " + string(st.Output.LanguageMode)})
	}
	switch st.Output.DetailLevel {
	case settings.DetailConcise, settings.DetailStandard, settings.DetailDetailed:
	default:
		issues = append(issues, Issue{Field: "output.detailLevel", Message: "unknown value " + string(st.Output.DetailLevel)})
	}
	switch st.Output.OutputFormat {
	case settings.FormatMarkdown, settings.FormatPlainText:
	default:
		issues = append(issues, Issue{Field: "output.outputFormat", Message: "unknown value " + string(st.Output.OutputFormat)})
	}
	seen := map[string]int{}
	for idx, s := range st.Template.OutputSections {
		if strings.TrimSpace(s.ID) == "" {
			issues = append(issues, Issue{Field: fmt.Sprintf("template.outputSections[%d].id", idx), Message: "must not be empty"})
			continue
		}
		if prev, ok := seen[s.ID]; ok {
			issues = append(issues, Issue{Field: fmt.Sprintf("template.outputSections[%d].id", idx), Message: fmt.Sprintf("duplicates entry %d", prev)})
		}
		seen[s.ID] = idx
	}
	return issues
}
