// Package template compiles reference templates into reusable rendering
// routines. A template is plain text with {{name}} reference tokens; each
// reference resolves to a zero-argument capability on a presenter instance
// at render time, and every substituted value is escaped before it reaches
// the output.
//
// Compilation never fails: unknown references surface only when a render
// actually evaluates them, so templates can be compiled and cached before
// the final presenter type exists. Valid performs the proactive check
// separately for authoring-time tooling.
package template
