// Package triggers implements the trigger-pattern compiler. It turns
// human-authored glob-like pattern strings into case-insensitive
// regular expressions: brace groups are expanded into alternatives,
// glob fragments are translated to regex syntax, and bare word
// patterns are wrapped in word-boundary guards.
//
// Compilation never fails hard. Malformed alternatives are dropped
// with a warning and brace expansion is capped, so adversarial or
// broken patterns degrade to "matches nothing" rather than taking the
// module set down.
package triggers
