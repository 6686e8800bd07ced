// Package native models the single-select form control a dropdown replaces.
//
// A Select is read once per build in scrape mode and receives the selected
// flag on every selection, so encoding the owning Form reports what a browser
// would submit.
package native
