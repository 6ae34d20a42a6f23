package ui

import "github.com/charmbracelet/bubbles/key"

// fieldKeyMap holds the bindings handled by a date field.
type fieldKeyMap struct {
	Commit    key.Binding
	Clear     key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	PrevYear  key.Binding
	NextYear  key.Binding
	PrevDay   key.Binding
	NextDay   key.Binding
	PrevWeek  key.Binding
	NextWeek  key.Binding
}

func defaultFieldKeys() fieldKeyMap {
	return fieldKeyMap{
		Commit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "pick")),
		Clear:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
		PrevMonth: key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup/pgdn", "month")),
		NextMonth: key.NewBinding(key.WithKeys("pgdown")),
		PrevYear:  key.NewBinding(key.WithKeys("ctrl+pgup"), key.WithHelp("ctrl+pgup/pgdn", "year")),
		NextYear:  key.NewBinding(key.WithKeys("ctrl+pgdown")),
		PrevDay:   key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←/→", "day")),
		NextDay:   key.NewBinding(key.WithKeys("shift+right")),
		PrevWeek:  key.NewBinding(key.WithKeys("up"), key.WithHelp("↑/↓", "week")),
		NextWeek:  key.NewBinding(key.WithKeys("down")),
	}
}

// formKeyMap holds the bindings handled by the form around the fields.
type formKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
	Quit   key.Binding
	Help   key.Binding
	field  fieldKeyMap
}

func defaultFormKeys() formKeyMap {
	return formKeyMap{
		Next:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Help:   key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "more")),
		field:  defaultFieldKeys(),
	}
}

// ShortHelp implements help.KeyMap.
func (k formKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.field.Commit, k.field.Clear, k.field.PrevMonth, k.field.PrevWeek, k.Next, k.Quit, k.Help}
}

// FullHelp implements help.KeyMap.
func (k formKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.field.Commit, k.field.Clear},
		{k.field.PrevMonth, k.field.PrevYear, k.field.PrevWeek, k.field.PrevDay},
		{k.Next, k.Prev, k.Submit, k.Quit, k.Help},
	}
}
