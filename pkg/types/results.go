package types

// ModuleInfo describes one module for display purposes
type ModuleInfo struct {
	Name          string
	Description   string
	Path          string
	AlwaysVisible bool
	HasDisclose   bool
	HasActivate   bool
}

// ListModulesResult is the result of the ListModules command
type ListModulesResult struct {
	Modules   []ModuleInfo
	FromIndex bool
}

// CompilePatternResult is the result of the CompilePattern command
type CompilePatternResult struct {
	Pattern      string
	Alternatives []string
	Regexes      []string
	AlwaysMatch  bool
}

// MatchOutcome names the visibility decision for one module
type MatchOutcome string

const (
	OutcomeHidden   MatchOutcome = "hidden"
	OutcomeVisible  MatchOutcome = "visible"
	OutcomeDisclose MatchOutcome = "disclose"
	OutcomeActivate MatchOutcome = "activate"
)

// ModuleMatchResult pairs one module with its decision
type ModuleMatchResult struct {
	Name        string
	Description string
	Outcome     MatchOutcome
}

// MatchResult is the result of the MatchConversation command
type MatchResult struct {
	Results []ModuleMatchResult
}

// DocsResult is the result of the GenDocs command
type DocsResult struct {
	Module   string
	Tree     string
	Rendered string
}

// IndexResult is the result of the RebuildIndex command
type IndexResult struct {
	Ref         string
	ModuleCount int
	Path        string
}
