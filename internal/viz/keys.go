package viz

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/san-kum/sortviz/internal/algo"
)

type keyMap struct {
	Reset      key.Binding
	Start      key.Binding
	Ascending  key.Binding
	Descending key.Binding

	Bubble    key.Binding
	Insertion key.Binding
	Merge     key.Binding
	Quick     key.Binding
	Bucket    key.Binding

	Pause  key.Binding
	Faster key.Binding
	Slower key.Binding
	Theme  key.Binding
	View   key.Binding
	Record key.Binding
	Help   key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "new sequence"),
	),
	Start: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "start"),
	),
	Ascending: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "ascending"),
	),
	Descending: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "descending"),
	),
	Bubble: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "bubble"),
	),
	Insertion: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "insertion"),
	),
	Merge: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "merge"),
	),
	Quick: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quick"),
	),
	Bucket: key.NewBinding(
		key.WithKeys("k"),
		key.WithHelp("k", "bucket"),
	),
	Pause: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "pause"),
	),
	Faster: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "faster"),
	),
	Slower: key.NewBinding(
		key.WithKeys("-", "_"),
		key.WithHelp("-", "slower"),
	),
	Theme: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "theme"),
	),
	View: key.NewBinding(
		key.WithKeys("v"),
		key.WithHelp("v", "bars/dots"),
	),
	Record: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "record gif"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "quit"),
	),
}

// selection maps the algorithm keys to their identities.
func (k keyMap) selection() map[algo.ID]key.Binding {
	return map[algo.ID]key.Binding{
		algo.Bubble:    k.Bubble,
		algo.Insertion: k.Insertion,
		algo.Merge:     k.Merge,
		algo.Quick:     k.Quick,
		algo.Bucket:    k.Bucket,
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Reset, k.Start, k.Ascending, k.Descending, k.Pause, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Reset, k.Start, k.Ascending, k.Descending},
		{k.Bubble, k.Insertion, k.Merge, k.Quick, k.Bucket},
		{k.Pause, k.Faster, k.Slower},
		{k.Theme, k.View, k.Record, k.Help, k.Quit},
	}
}

// SelectionKey returns the key that selects id in the interactive view.
func SelectionKey(id algo.ID) string {
	if b, ok := keys.selection()[id]; ok {
		return b.Help().Key
	}
	return ""
}
