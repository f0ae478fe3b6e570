package openmodules

// Short messages (one-liners)
const (
	MsgRootShort = "Context-triggered knowledge modules for coding agents"
	MsgRootLong  = `openmodules manages a directory of knowledge modules for an AI coding
agent. Each module declares trigger patterns matched against recent
conversation text; matching patterns reveal the module to the agent or
activate it outright, so rarely-needed tooling stays out of the way
until the conversation calls for it.`

	MsgListShort = "List all modules and their trigger posture"
	MsgListLong  = "List displays every module found in the modules root, with its description and whether it is always visible, disclosed on trigger, or activated on trigger."

	MsgCompileShort = "Compile a trigger pattern to its regexes"
	MsgCompileLong  = "Compile expands and compiles a single trigger pattern, printing the brace-expansion alternatives and the regex each one produced. Useful when authoring module manifests."

	MsgMatchShort = "Evaluate conversation text against module triggers"
	MsgMatchLong  = "Match compiles every module's triggers and decides, for the given user and agent text, which modules would be activated, disclosed, or shown."

	MsgDocsShort = "Show a module's oneliner file tree"
	MsgDocsLong  = "Docs walks a module directory, extracts the oneliner comment from the top of each file, and prints the resulting documentation tree."

	MsgIndexShort = "Rebuild the git-ref module index"
	MsgIndexLong  = "Index rediscovers all modules and writes a fresh index keyed by the modules root's current git commit, so later loads can skip the manifest scan."

	MsgVersionShort = "Print version information"

	// Flags
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagRoot    = "Modules root directory (default: $OPENMODULES_ROOT)"
	MsgFlagNoIndex = "Bypass the git-ref index and scan manifests directly"
	MsgFlagUser    = "Conversation text attributed to the user"
	MsgFlagAgent   = "Conversation text attributed to the agent"
	MsgFlagHidden  = "Include modules whose outcome is hidden"
	MsgFlagRender  = "Also render the module README as terminal markdown"

	// Examples
	MsgCompileExample = `  openmodules compile "docstring{s,}"
  openmodules compile "*.af"`
	MsgMatchExample = `  openmodules match --user "can you extract the layers from design.af"
  openmodules match --agent "running extract_affinity now" --hidden`
	MsgDocsExample = `  openmodules docs affinity-extractor
  openmodules docs affinity-extractor --render`

	// Errors
	MsgErrListModules = "failed to list modules: %w"
	MsgErrMatch       = "failed to match conversation: %w"
	MsgErrDocs        = "failed to generate docs: %w"
	MsgErrIndex       = "failed to rebuild index: %w"
)
