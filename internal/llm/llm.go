// Package llm holds the static catalogue of target AI chat services and the
// per-model prompt adjustments. The catalogue is process-wide data and is
// never mutated.
package llm

// ProviderID identifies a supported AI chat service.
type ProviderID string

const (
	Gemini     ProviderID = "gemini"
	ChatGPT    ProviderID = "chatgpt"
	Claude     ProviderID = "claude"
	Perplexity ProviderID = "perplexity"
	Copilot    ProviderID = "copilot"
)

// Tier distinguishes free from paid models.
type Tier string

const (
	TierFree Tier = "free"
	TierPaid Tier = "paid"
)

// Adjustments declares how the base prompt must be rewritten for a model's
// known capability gaps. A nil Adjustments means the prompt is used verbatim.
type Adjustments struct {
	RemoveEgovAPI        bool
	SimplifyInstructions bool
	// RecursiveDepth, when 1..3, overrides the recursion-depth annotation.
	// Zero means leave the depth as assembled.
	RecursiveDepth int
	AddSearchTips  bool
}

// Model is one immutable catalogue entry.
type Model struct {
	ID             string
	Name           string
	Provider       ProviderID
	Tier           Tier
	HasWebBrowsing bool
	MaxTokens      int
	ContextWindow  int
	Features       []string
	Limitations    []string
	Tips           []string
	Adjustments    *Adjustments
}

// ProviderInfo describes one service: exactly one free model plus an ordered
// list of paid models.
type ProviderInfo struct {
	ID          ProviderID
	Name        string
	Icon        string
	Color       string
	Description string
	FreeModel   Model
	PaidModels  []Model
}

// Defaults used when the caller does not pick a target.
const (
	DefaultProvider ProviderID = Gemini
	DefaultModel               = "gemini-2-flash"
)

// Provider returns the catalogue entry for id, or nil when unknown.
func Provider(id ProviderID) *ProviderInfo {
	for i := range Providers {
		if Providers[i].ID == id {
			return &Providers[i]
		}
	}
	return nil
}

// ModelFor resolves a model within a provider. An empty or unknown modelID
// falls back to the provider's free model so a stale persisted selection
// still renders something usable. Unknown providers yield nil.
func ModelFor(providerID ProviderID, modelID string) *Model {
	p := Provider(providerID)
	if p == nil {
		return nil
	}
	if modelID == p.FreeModel.ID {
		return &p.FreeModel
	}
	for i := range p.PaidModels {
		if p.PaidModels[i].ID == modelID {
			return &p.PaidModels[i]
		}
	}
	return &p.FreeModel
}

// Diff summarizes what paying unlocks for a provider.
type Diff struct {
	FreeFeatures     []string
	PaidOnlyFeatures []string
	FreeLimitations  []string
}

// FreePaidDiff computes the paid-only feature set: the union of all paid
// models' features minus the free model's, first appearance order, deduped by
// string equality.
func FreePaidDiff(providerID ProviderID) Diff {
	p := Provider(providerID)
	if p == nil {
		return Diff{FreeFeatures: []string{}, PaidOnlyFeatures: []string{}, FreeLimitations: []string{}}
	}
	paid := make([][]string, 0, len(p.PaidModels))
	for _, m := range p.PaidModels {
		paid = append(paid, m.Features)
	}
	return Diff{
		FreeFeatures:     append([]string{}, p.FreeModel.Features...),
		PaidOnlyFeatures: paidOnlyFeatures(p.FreeModel.Features, paid),
		FreeLimitations:  append([]string{}, p.FreeModel.Limitations...),
	}
}

// paidOnlyFeatures is the union of the paid feature lists minus the free
// ones, first appearance order, deduped by string equality.
func paidOnlyFeatures(freeFeatures []string, paidFeatures [][]string) []string {
	free := map[string]bool{}
	for _, f := range freeFeatures {
		free[f] = true
	}
	seen := map[string]bool{}
	out := []string{}
	for _, features := range paidFeatures {
		for _, f := range features {
			if free[f] || seen[f] {
				continue
			}
			seen[f] = true
			out = append(out, f)
		}
	}
	return out
}
