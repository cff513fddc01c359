// Package widgets implements the interactive field editors.
//
// Each widget owns its own edit buffer and a small state machine:
// Normal until Activate is called, Editing while keys are routed to it,
// back to Normal once the edit is confirmed or cancelled. Widgets hold
// no references to the value map or the schema; the controller seeds
// them on construction and merges their results back. Toggle is the one
// degenerate case: Activate flips its value in place and the controller
// commits it immediately, so it never lingers in Editing.
package widgets
