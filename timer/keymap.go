package timer

import (
	"github.com/charmbracelet/bubbles/key"
)

type keymap struct {
	up         key.Binding
	down       key.Binding
	enter      key.Binding
	favorite   key.Binding
	favorites  key.Binding
	sort       key.Binding
	del        key.Binding
	togglePlay key.Binding
	skip       key.Binding
	stop       key.Binding
	restart    key.Binding
	end        key.Binding
	minimize   key.Binding
	quit       key.Binding
}

var defaultKeymap = keymap{
	up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "cook"),
	),
	favorite: key.NewBinding(
		key.WithKeys("*"),
		key.WithHelp("*", "favourite"),
	),
	favorites: key.NewBinding(
		key.WithKeys("v"),
		key.WithHelp("v", "favourites only"),
	),
	sort: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "sort"),
	),
	del: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "delete"),
	),
	togglePlay: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "play/pause"),
	),
	skip: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "skip step"),
	),
	stop: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "stop step"),
	),
	restart: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "restart"),
	),
	end: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "end"),
	),
	minimize: key.NewBinding(
		key.WithKeys("esc", "m"),
		key.WithHelp("esc", "minimize"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
