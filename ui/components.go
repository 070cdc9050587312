package ui

import (
	"github.com/rememo-dev/rememo/memo"
)

// Label shows static text. The control is created on the first run and has
// its text reapplied on every rebuild.
func Label(tk Toolkit, text string) memo.Comp[Control] {
	return memo.Bind(
		memo.Cell(func() TextControl { return tk.NewLabel() }),
		func(label TextControl) memo.Comp[Control] {
			label.SetText(text)
			return memo.Return[Control](label)
		},
	)
}

// Button shows text and fires onClick. The control survives rebuilds; the
// handler is reinstalled each run so it closes over current state.
func Button(tk Toolkit, text string, onClick func()) memo.Comp[Control] {
	return memo.Bind(
		memo.Cell(func() ButtonControl { return tk.NewButton() }),
		func(button ButtonControl) memo.Comp[Control] {
			button.SetText(text)
			button.OnClick(onClick)
			return memo.Return[Control](button)
		},
	)
}

// Panel lays out children in order. Every child is evaluated inside its own
// scope keyed by index, so a child's retained state follows its position in
// the list: removing a middle child shifts the scopes of the children after
// it, which rebuilds them.
func Panel(tk Toolkit, children ...memo.Comp[Control]) memo.Comp[Control] {
	return memo.Bind(
		memo.Cell(func() PanelControl { return tk.NewPanel() }),
		func(panel PanelControl) memo.Comp[Control] {
			indices := make([]int, len(children))
			for i := range children {
				indices[i] = i
			}
			built := make([]Control, 0, len(children))
			return memo.Combine(
				memo.For(indices, func(i int) memo.Comp[memo.Unit] {
					return memo.Bind(
						memo.Scoped(i, children[i]),
						func(child Control) memo.Comp[memo.Unit] {
							built = append(built, child)
							return memo.Zero()
						},
					)
				}),
				memo.Delay(func() memo.Comp[Control] {
					panel.SetChildren(built)
					return memo.Return[Control](panel)
				}),
			)
		},
	)
}
