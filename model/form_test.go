package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func editingForm() intakeForm {
	f := newIntakeForm()
	f.Focus()
	return f
}

func TestFormAcceptsAnything(t *testing.T) {
	f := editingForm()
	f, _, _ = f.Update(keyMsg("down"))
	f, _, _ = f.Update(keyMsg("down"))
	require.Equal(t, fieldBedrooms, f.focus)

	for _, r := range "abc" {
		f, _, _ = f.Update(keyMsg(string(r)))
	}
	assert.Equal(t, "abc", f.values().Bedrooms)

	f.submit()
	assert.True(t, f.encrypted)
}

func TestFormSubmitEmpty(t *testing.T) {
	f := editingForm()
	assert.Equal(t, propertyDetails{}, f.values())

	f, _, ev := f.Update(keyMsg("ctrl+s"))
	assert.Equal(t, eventSubmitted, ev)
	assert.True(t, f.encrypted)
}

func TestFormPropertyType(t *testing.T) {
	f := editingForm()
	f, _, _ = f.Update(keyMsg("tab"))
	require.Equal(t, fieldType, f.focus)
	assert.Empty(t, f.values().Type)

	f, _, _ = f.Update(keyMsg("right"))
	assert.Equal(t, "residential", f.values().Type)
	f, _, _ = f.Update(keyMsg(" "))
	assert.Equal(t, "commercial", f.values().Type)
	f, _, _ = f.Update(keyMsg("left"))
	f, _, _ = f.Update(keyMsg("left"))
	assert.Equal(t, "land", f.values().Type)

	g := editingForm()
	g.focus = fieldType
	g, _, _ = g.Update(keyMsg("left"))
	assert.Equal(t, "land", g.values().Type)
}

func TestFormFocusWraps(t *testing.T) {
	f := editingForm()
	f, _, _ = f.Update(keyMsg("shift+tab"))
	assert.Equal(t, fieldSubmit, f.focus)
	f, _, _ = f.Update(keyMsg("tab"))
	assert.Equal(t, fieldAddress, f.focus)
}

func TestFormDetails(t *testing.T) {
	f := editingForm()
	f.focus = fieldDetails
	f.focusCurrent()

	f, _, ev := f.Update(keyMsg("ctrl+e"))
	assert.Equal(t, eventOpenEditor, ev)

	f.setDetails("corner lot\nnew roof\n")
	assert.Equal(t, "corner lot\nnew roof", f.values().Details)
}

func TestFormEscStopsEditing(t *testing.T) {
	f := editingForm()
	f, _, ev := f.Update(keyMsg("esc"))
	assert.Equal(t, eventDone, ev)
	assert.False(t, f.editing)

	// not editing: keys are ignored
	f, _, ev = f.Update(keyMsg("ctrl+s"))
	assert.Equal(t, eventNone, ev)
	assert.False(t, f.encrypted)
}
