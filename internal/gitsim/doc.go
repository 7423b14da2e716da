// Package gitsim resolves simulated git command lines to canned output.
//
// Allowed here:
// - the static response table and the ordered dynamic rule list
// - command normalization and template filling
//
// Not allowed here:
// - presentation concerns (echo lines, help/clear handling, typing effect)
// - any real repository state or process execution
package gitsim
