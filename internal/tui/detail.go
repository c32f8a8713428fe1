package tui

import (
	"fmt"

	"github.com/dlenski/corostc/models"
)

type detailModel struct {
	activity models.Activity
	status   string
}

func (m detailModel) View() string {
	a := m.activity
	out := fmt.Sprintf("%s  [%s]\n\n", titleStyle.Render(a.Name), a.SportType)

	out += fmt.Sprintf("Start:     %s\n", a.StartsAt().Format("2006-01-02 15:04:05 -07:00"))
	out += fmt.Sprintf("End:       %s\n", a.EndsAt().Format("2006-01-02 15:04:05 -07:00"))
	out += fmt.Sprintf("Duration:  %s\n", a.Duration())
	out += fmt.Sprintf("Distance:  %.2f km\n", a.Distance/1000)
	out += fmt.Sprintf("Label ID:  %s\n", a.LabelID)

	if m.status != "" {
		out += "\n" + statusStyle.Render(m.status) + "\n"
	}

	out += "\n" + helpStyle.Render("x export  r rename  d delete  c copy URL  esc back")
	return out
}
