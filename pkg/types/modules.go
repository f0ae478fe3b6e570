package types

// TriggerConfig is the normalized form of one trigger section from a
// module manifest. The three arrays are independent: AnyMsg patterns
// run against all conversation text, UserMsg only against text the
// human wrote, AgentMsg only against text the agent produced.
//
// Explicit records that the section was present in the manifest but
// deliberately left without patterns. That is distinct from "not
// configured": an explicit empty trigger still counts as a trigger
// that currently matches nothing.
type TriggerConfig struct {
	AnyMsg   []string `toml:"any-msg"`
	UserMsg  []string `toml:"user-msg"`
	AgentMsg []string `toml:"agent-msg"`
	Explicit bool     `toml:"explicit,omitempty"`
}

// Empty reports whether the configuration carries no patterns at all
func (c *TriggerConfig) Empty() bool {
	if c == nil {
		return true
	}
	return len(c.AnyMsg) == 0 && len(c.UserMsg) == 0 && len(c.AgentMsg) == 0
}

// ModuleDescriptor is the normalized in-memory shape of one knowledge
// module, produced by the manifest layer (or restored from the index)
// and consumed by the matcher builder.
type ModuleDescriptor struct {
	// Name is the stable tool identifier for the module
	Name string `toml:"name"`

	// Description is a one-line summary shown on disclosure
	Description string `toml:"description,omitempty"`

	// Path is the module directory, absolute
	Path string `toml:"path"`

	// Disclose configures when the module's name and description are
	// revealed to the agent. Nil means not configured.
	Disclose *TriggerConfig `toml:"disclose,omitempty"`

	// Activate configures when the module's full content is injected
	// without agent choice. Nil means not configured.
	Activate *TriggerConfig `toml:"activate,omitempty"`
}
