package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
)

type renameModel struct {
	input      textinput.Model
	labelID    string
	submitting bool
}

func newRenameModel(labelID, name string) renameModel {
	input := textinput.New()
	input.Width = 50
	input.SetValue(name)
	input.Focus()
	return renameModel{input: input, labelID: labelID}
}

func (m renameModel) View() string {
	out := titleStyle.Render("Rename activity") + "\n\n"
	out += "Title: [" + m.input.View() + "]\n\n"
	out += helpStyle.Render("esc cancel  enter save")
	return out
}
