// Package overlay loads declarative schedule edits from YAML and applies
// them through a loopedit.Editor.
//
// An overlay names stages to insert (each bound to a registered callback,
// placed before or after a target stage) and stages to remove. Overlays
// are data; the callbacks they reference come from a Registry populated
// in code. Parsing is strict: unknown keys are rejected so a typo cannot
// silently drop an edit.
package overlay
