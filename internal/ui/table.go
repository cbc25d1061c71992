package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sterance/relic-info-extractor/internal/relic"
)

var (
	styleHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	styleDim    = lipgloss.NewStyle().Faint(true)
)

// tableColumns is the display order for RecordTable.
var tableColumns = []string{
	"id", "gameIds", "name", "category", "displayGroup",
	"levelGroupId", "levelGroup", "level", "nightfarer", "deep", "debuff", "stacks",
}

// RecordTable renders the records as a plain-text table in dataset order,
// one row per record, sized to the widest cell per column.
func RecordTable(records []*relic.Record) string {
	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, tableColumns)
	for _, r := range records {
		rows = append(rows, []string{
			fmt.Sprintf("%d", r.ID),
			joinIDs(r.GameIDs),
			r.Name,
			r.Category,
			r.DisplayGroup,
			fmt.Sprintf("%d", r.LevelGroupID),
			r.LevelGroup,
			string(r.Level),
			r.Nightfarer,
			yesNo(r.Deep),
			yesNo(r.Debuff),
			r.Stacks.String(),
		})
	}

	widths := make([]int, len(tableColumns))
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	for rowIdx, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			padded := cell + strings.Repeat(" ", widths[i]-lipgloss.Width(cell))
			if rowIdx == 0 {
				padded = styleHeader.Render(padded)
			}
			cells[i] = padded
		}
		b.WriteString(strings.Join(cells, styleDim.Render(" │ ")))
		b.WriteString("\n")
	}
	return b.String()
}

func joinIDs(ids relic.IDList) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return strings.Join(parts, ", ")
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
