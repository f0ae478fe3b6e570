// Package types holds the shared data shapes that flow between the
// manifest layer, the trigger matching core, and the commands. Keeping
// them here avoids import cycles between producers and consumers.
package types
