// Package ui provides the Bubble Tea terminal interface for ptable.
//
// # Package Structure
//
//   - app.go: Model, Update routing, mouse hit-testing and the Run function
//   - table.go: grid geometry and cell rendering
//   - detail.go: element detail overlay and clipboard copy
//   - search.go: search field built on bubbles/textinput
//   - category.go: category picker overlay and legend data
//   - header.go: header and status lines
//   - help.go: footer short help and the full help overlay
//   - keys.go: key bindings
//   - theme.go: color themes
//
// # Input Focus
//
// All filter, focus and overlay state lives in a state.Controller owned by
// the Model. Key input goes to exactly one control, chosen in this order:
//
//  1. ctrl+c quits from anywhere
//  2. the help overlay swallows one key and closes
//  3. the detail overlay accepts only dismiss and copy keys
//  4. the search field or category picker, when it holds focus
//  5. otherwise the grid
//
// Arrow keys move the grid focus only in the last case.
//
// # Mouse
//
// A left click on a bound cell opens its details. Overlays consume clicks
// inside their box; a click on the backdrop dismisses them. The detail
// overlay also closes on every window resize.
//
// # Themes
//
// Themes (Nightfox, Kanagawa, Slate) define a base palette plus one color per
// element category. T cycles them for the session.
package ui
