// Package key provides key event types and parsing of key specifications.
//
// Key specifications can be written in several formats:
//
//   - Simple keys: "a", "W", "1", "Enter", "Escape", "Space"
//   - With modifiers: "Ctrl+C", "Alt+Left"
//   - Vim-style: "<C-c>", "<CR>", "<Esc>", "<Space>"
//
// Letters bound without Ctrl, Alt or Meta match in either case, so a binding
// for "w" also fires for "W".
package key
