// Package ui provides toolkit-agnostic widget bindings on top of the memo
// engine.
//
// Components are memo computations: the underlying control is allocated once
// through a cache cell and mutated on every rebuild, so text boxes, handlers
// and panels keep their identity across update passes. Each panel child runs
// inside its own named scope, keyed by child index, isolating its retained
// state from siblings.
//
// The engine is single-threaded; the hosting application must not start a new
// run from inside a callback fired by a run in progress.
package ui

// Control is the toolkit's opaque widget handle.
type Control any

// TextControl is a widget with mutable display text.
type TextControl interface {
	SetText(text string)
}

// ButtonControl is a clickable widget; the handler installed last wins.
type ButtonControl interface {
	TextControl
	OnClick(handler func())
}

// PanelControl holds an ordered list of child controls. SetChildren replaces
// the full list; the toolkit adapter reconciles it against the screen.
type PanelControl interface {
	SetChildren(children []Control)
}

// Toolkit constructs native controls. Implemented by the hosting application
// for its UI library of choice.
type Toolkit interface {
	NewLabel() TextControl
	NewButton() ButtonControl
	NewPanel() PanelControl
}
