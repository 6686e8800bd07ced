// Package widgets contains dumb terminal render primitives.
//
// Allowed here:
// - the lipgloss rendering collaborator for core dropdowns
// - painting a dropdown element tree into lines plus a click hit-map
// - the popup overlay compositor
//
// Not allowed here:
// - key or mouse handling, selection state, or page policy
package widgets
