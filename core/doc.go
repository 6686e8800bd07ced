// Package core contains the dropdown widget state and its page-level contracts.
//
// Allowed here:
// - the option store, selection state machine and binding controller
// - the page event registry (handler scopes, click bubbling, open-widget set)
// - tagged commands and the rendering/native-control interfaces
//
// Not allowed here:
// - concrete markup or terminal painting (see widgets and templates)
// - I/O, persistence, logging
package core
