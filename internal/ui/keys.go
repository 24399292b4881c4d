package ui

import "github.com/charmbracelet/bubbles/key"

// KeyDefinition defines the metadata for a key binding
type KeyDefinition struct {
	Defaults []string
	Help     string
	Name     string
}

// AllKeyDefinitions is the single source of truth for key names, defaults
// and help text
var AllKeyDefinitions = []KeyDefinition{
	// Scanner keys
	{Name: "scan", Defaults: []string{"s"}, Help: "scan"},
	{Name: "manual", Defaults: []string{"m"}, Help: "manual entry"},
	{Name: "edit", Defaults: []string{"e"}, Help: "edit values"},
	{Name: "photo", Defaults: []string{"p"}, Help: "take photo"},
	{Name: "save", Defaults: []string{"enter"}, Help: "save"},
	{Name: "back", Defaults: []string{"esc"}, Help: "back"},

	// Position list keys
	{Name: "up", Defaults: []string{"up", "k"}, Help: "previous position"},
	{Name: "down", Defaults: []string{"down", "j"}, Help: "next position"},
	{Name: "open", Defaults: []string{"enter"}, Help: "scan position"},
	{Name: "quit", Defaults: []string{"q", "ctrl+c"}, Help: "quit"},
}

func binding(name string) key.Binding {
	for _, def := range AllKeyDefinitions {
		if def.Name == name {
			keys := def.Defaults
			return key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], def.Help))
		}
	}
	return key.NewBinding(key.WithDisabled())
}

// ScannerKeys are the bindings of the scanner screen
type ScannerKeys struct {
	Back   key.Binding
	Edit   key.Binding
	Manual key.Binding
	Photo  key.Binding
	Save   key.Binding
	Scan   key.Binding
}

// NewScannerKeys returns the default scanner bindings
func NewScannerKeys() ScannerKeys {
	return ScannerKeys{
		Back:   binding("back"),
		Edit:   binding("edit"),
		Manual: binding("manual"),
		Photo:  binding("photo"),
		Save:   binding("save"),
		Scan:   binding("scan"),
	}
}

// ShortHelp implements help.KeyMap
func (k ScannerKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Scan, k.Manual, k.Edit, k.Photo, k.Save, k.Back}
}

// FullHelp implements help.KeyMap
func (k ScannerKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// ListKeys are the bindings of the position list
type ListKeys struct {
	Down key.Binding
	Open key.Binding
	Quit key.Binding
	Up   key.Binding
}

// NewListKeys returns the default position list bindings
func NewListKeys() ListKeys {
	return ListKeys{
		Down: binding("down"),
		Open: binding("open"),
		Quit: binding("quit"),
		Up:   binding("up"),
	}
}

// ShortHelp implements help.KeyMap
func (k ListKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Quit}
}

// FullHelp implements help.KeyMap
func (k ListKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
