package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/dlenski/corostc/models"
)

type listModel struct {
	activities []models.Activity
	idx        int
	loading    bool
	syncing    bool
	spinner    spinner.Model
	status     string

	// sport filter cycled with the f key. filterIdx == -1 shows all
	// sports; otherwise it indexes sportOptions.
	sportOptions []models.SportType
	filterIdx    int
}

func newListModel() listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return listModel{spinner: s, loading: true, filterIdx: -1}
}

func (m listModel) current() (models.Activity, bool) {
	if len(m.activities) == 0 || m.idx < 0 || m.idx >= len(m.activities) {
		return models.Activity{}, false
	}
	return m.activities[m.idx], true
}

func (m listModel) filter() *models.SportType {
	if m.filterIdx < 0 || m.filterIdx >= len(m.sportOptions) {
		return nil
	}
	sport := m.sportOptions[m.filterIdx]
	return &sport
}

// rebuildSportOptions recomputes the filter cycle from an unfiltered
// listing, preserving first-seen (newest first) order.
func (m *listModel) rebuildSportOptions(activities []models.Activity) {
	seen := make(map[models.SportType]bool)
	options := make([]models.SportType, 0, 4)
	for _, activity := range activities {
		if !seen[activity.SportType] {
			seen[activity.SportType] = true
			options = append(options, activity.SportType)
		}
	}
	m.sportOptions = options
}

func (m listModel) View() string {
	header := titleStyle.Render("Coros Training Center")
	if filter := m.filter(); filter != nil {
		header += "  [" + filter.String() + "]"
	}
	if m.syncing {
		header += "  " + m.spinner.View()
	}
	out := header + "\n\n"

	if m.loading {
		out += "Loading...\n"
	} else if len(m.activities) == 0 {
		out += "No activities\n"
	} else {
		for i, activity := range m.activities {
			row := fmt.Sprintf("%s  %-14s %s",
				activity.StartsAt().Format("2006-01-02 15:04"),
				activity.SportType.String(),
				activity.Name)
			if i == m.idx {
				out += selectedStyle.Render("> "+row) + "\n"
			} else {
				out += "  " + row + "\n"
			}
		}
	}

	if m.status != "" {
		out += "\n" + statusStyle.Render(m.status) + "\n"
	}

	out += "\n" + helpStyle.Render("enter open  s sync  f filter  x export  L logout  q quit")
	return out
}
