package ui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/renato0307/fieldscan/internal/domain"
)

// ManualEntry holds the values typed into the manual entry form
type ManualEntry struct {
	AssetTag     string
	ModelID      string
	Notes        string
	SerialNumber string
}

// ManualForm is a Bubble Tea component for typing equipment identifiers
type ManualForm struct {
	Completed bool
	cancelled bool
	entry     *ManualEntry
	form      *huh.Form
}

// fieldValidator adapts a message validator to huh
func fieldValidator(validate domain.Validator) func(string) error {
	return func(s string) error {
		if msg := validate(s); msg != "" {
			return errors.New(msg)
		}
		return nil
	}
}

// NewManualForm creates the form prefilled with initial. Invalid values
// cannot be submitted.
func NewManualForm(initial ManualEntry) *ManualForm {
	return newEntryForm(initial, true)
}

// NewEditForm creates the form for correcting captured values. Values are
// checked on save instead, so a bad read stays visible next to its field.
func NewEditForm(initial ManualEntry) *ManualForm {
	return newEntryForm(initial, false)
}

func newEntryForm(initial ManualEntry, strict bool) *ManualForm {
	entry := initial
	mf := &ManualForm{entry: &entry}

	input := func(title, placeholder, field string, value *string) *huh.Input {
		in := huh.NewInput().Title(title).Placeholder(placeholder).Value(value)
		if strict {
			in = in.Validate(fieldValidator(domain.EquipmentValidators[field]))
		}
		return in
	}

	mf.form = huh.NewForm(
		huh.NewGroup(
			input("Model ID", "43BDL4550D/00", domain.FieldModelID, &mf.entry.ModelID),
			input("Serial Number", "AU0A1234567890", domain.FieldSerialNumber, &mf.entry.SerialNumber),
			input("Asset Tag", "123456", domain.FieldAssetTag, &mf.entry.AssetTag),
			huh.NewText().
				Title("Notes").
				Description("Optional").
				Lines(3).
				Value(&mf.entry.Notes),
		),
	).WithShowHelp(true)

	return mf
}

func (mf *ManualForm) Init() tea.Cmd {
	return mf.form.Init()
}

func (mf *ManualForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		mf.cancelled = true
		mf.Completed = true
		return mf, nil
	}

	model, cmd := mf.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		mf.form = f
	}

	// The form's own submit command would end the whole program
	switch mf.form.State {
	case huh.StateCompleted:
		mf.Completed = true
		return mf, nil
	case huh.StateAborted:
		mf.cancelled = true
		mf.Completed = true
		return mf, nil
	}
	return mf, cmd
}

func (mf *ManualForm) View() string {
	return mf.form.View()
}

// Result returns the entered values; ok is false when the form was cancelled
func (mf *ManualForm) Result() (ManualEntry, bool) {
	return *mf.entry, !mf.cancelled
}
