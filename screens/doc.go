// Package screens contains overlay flows drawn on top of the dropdown form.
//
// Allowed here:
// - the command prompt used to call dropdown commands by name
// - prompt-specific presentation and key wiring
//
// Not allowed here:
// - dropdown state, page policy or persistence
package screens
