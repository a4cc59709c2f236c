package model

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type formField int

const (
	fieldAddress formField = iota
	fieldType
	fieldBedrooms
	fieldBathrooms
	fieldSqft
	fieldDetails
	fieldDocuments
	fieldSubmit
	fieldCount
)

type formEvent int

const (
	eventNone formEvent = iota
	eventSubmitted
	eventOpenEditor
	eventDone
)

var propertyTypes = []string{"residential", "commercial", "industrial", "land"}

const (
	submitTitle = "Property Encrypted Successfully"
	submitBody  = "Your property data has been encrypted and is ready for appraisal."
)

// propertyDetails is what the intake form holds. Nothing reads it on submit;
// the form only flips its encrypted badge.
type propertyDetails struct {
	Address    string
	Type       string
	Bedrooms   string
	Bathrooms  string
	SquareFeet string
	Details    string
	Documents  string
}

type intakeForm struct {
	inputs       [fieldCount]textinput.Model // only text fields are populated
	details      textarea.Model
	propertyType int // -1 until chosen
	focus        formField
	editing      bool
	encrypted    bool
}

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.CharLimit = limit
	ti.Width = 40
	return ti
}

func newIntakeForm() intakeForm {
	ta := textarea.New()
	ta.Placeholder = "Any additional property details..."
	ta.ShowLineNumbers = false
	ta.SetWidth(60)
	ta.SetHeight(4)

	f := intakeForm{
		details:      ta,
		propertyType: -1,
		focus:        fieldAddress,
	}
	f.inputs[fieldAddress] = newInput("123 Main Street", 120)
	f.inputs[fieldBedrooms] = newInput("3", 4)
	f.inputs[fieldBathrooms] = newInput("2", 4)
	f.inputs[fieldSqft] = newInput("1500", 8)
	f.inputs[fieldDocuments] = newInput("photos, deeds, inspection reports (max 10MB)", 256)
	return f
}

func isTextField(field formField) bool {
	switch field {
	case fieldAddress, fieldBedrooms, fieldBathrooms, fieldSqft, fieldDocuments:
		return true
	}
	return false
}

func (f *intakeForm) Focus() tea.Cmd {
	f.editing = true
	return f.focusCurrent()
}

func (f *intakeForm) Blur() {
	f.editing = false
	f.blurCurrent()
}

func (f *intakeForm) focusCurrent() tea.Cmd {
	if f.focus == fieldDetails {
		return f.details.Focus()
	}
	if isTextField(f.focus) {
		return f.inputs[f.focus].Focus()
	}
	return nil
}

func (f *intakeForm) blurCurrent() {
	if f.focus == fieldDetails {
		f.details.Blur()
		return
	}
	if isTextField(f.focus) {
		f.inputs[f.focus].Blur()
	}
}

func (f *intakeForm) move(delta int) tea.Cmd {
	f.blurCurrent()
	f.focus = formField((int(f.focus) + delta + int(fieldCount)) % int(fieldCount))
	return f.focusCurrent()
}

func (f *intakeForm) cycleType(delta int) {
	n := len(propertyTypes)
	if f.propertyType < 0 {
		if delta > 0 {
			f.propertyType = 0
		} else {
			f.propertyType = n - 1
		}
		return
	}
	f.propertyType = (f.propertyType + delta + n) % n
}

// submit always succeeds, whatever the fields hold.
func (f *intakeForm) submit() {
	f.encrypted = true
}

func (f *intakeForm) setDetails(s string) {
	f.details.SetValue(strings.TrimRight(s, "\n"))
}

func (f intakeForm) values() propertyDetails {
	d := propertyDetails{
		Address:    f.inputs[fieldAddress].Value(),
		Bedrooms:   f.inputs[fieldBedrooms].Value(),
		Bathrooms:  f.inputs[fieldBathrooms].Value(),
		SquareFeet: f.inputs[fieldSqft].Value(),
		Details:    f.details.Value(),
		Documents:  f.inputs[fieldDocuments].Value(),
	}
	if f.propertyType >= 0 {
		d.Type = propertyTypes[f.propertyType]
	}
	return d
}

func (f intakeForm) Update(msg tea.Msg) (intakeForm, tea.Cmd, formEvent) {
	if !f.editing {
		return f, nil, eventNone
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			f.Blur()
			return f, nil, eventDone
		case "ctrl+s":
			f.submit()
			return f, nil, eventSubmitted
		case "ctrl+e":
			return f, nil, eventOpenEditor
		case "tab":
			return f, f.move(1), eventNone
		case "shift+tab":
			return f, f.move(-1), eventNone
		case "up":
			if f.focus != fieldDetails {
				return f, f.move(-1), eventNone
			}
		case "down":
			if f.focus != fieldDetails {
				return f, f.move(1), eventNone
			}
		case "enter":
			switch f.focus {
			case fieldSubmit:
				f.submit()
				return f, nil, eventSubmitted
			case fieldDetails:
				// newline in the text area
			default:
				return f, f.move(1), eventNone
			}
		case "left", "right", " ":
			if f.focus == fieldType {
				if msg.String() == "left" {
					f.cycleType(-1)
				} else {
					f.cycleType(1)
				}
				return f, nil, eventNone
			}
		}
	}

	var cmd tea.Cmd
	switch f.focus {
	case fieldDetails:
		f.details, cmd = f.details.Update(msg)
	default:
		if isTextField(f.focus) {
			f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
		}
	}
	return f, cmd, eventNone
}

func (f intakeForm) row(field formField, label, value string) string {
	style := labelStyle
	if f.editing && f.focus == field {
		style = focusStyle
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, style.Render(label), value)
}

func (f intakeForm) View(width int) string {
	var s strings.Builder

	badge := mutedStyle.Render("◇ Not Encrypted")
	if f.encrypted {
		badge = successStyle.Render("◆ Encrypted")
	}
	s.WriteString(titleStyle.Render("Property Information") + "   " + badge)
	s.WriteString("\n")
	s.WriteString(mutedStyle.Render("Enter property details for encrypted valuation"))
	s.WriteString("\n\n")

	typeValue := mutedStyle.Render("Select type")
	if f.propertyType >= 0 {
		name := propertyTypes[f.propertyType]
		typeValue = strings.ToUpper(name[:1]) + name[1:]
	}
	typeValue = "‹ " + typeValue + " ›"

	rows := []string{
		f.row(fieldAddress, "Property Address", f.inputs[fieldAddress].View()),
		f.row(fieldType, "Property Type", typeValue),
		f.row(fieldBedrooms, "Bedrooms", f.inputs[fieldBedrooms].View()),
		f.row(fieldBathrooms, "Bathrooms", f.inputs[fieldBathrooms].View()),
		f.row(fieldSqft, "Square Feet", f.inputs[fieldSqft].View()),
		f.row(fieldDetails, "Additional Details", ""),
		f.details.View(),
		f.row(fieldDocuments, "Property Documents", f.inputs[fieldDocuments].View()),
	}
	s.WriteString(strings.Join(rows, "\n"))
	s.WriteString("\n\n")

	button := "◆ Encrypt & Submit for Appraisal"
	if f.editing && f.focus == fieldSubmit {
		s.WriteString(buttonStyle.Render(button))
	} else {
		s.WriteString(buttonIdleStyle.Render(button))
	}

	card := cardStyle
	if width > 8 {
		card = card.Width(min(width-4, 80))
	}
	return card.Render(s.String())
}
