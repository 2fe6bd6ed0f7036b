package ui

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// RenderSummary rend le bilan sous forme de tableau (couleurs si color).
func RenderSummary(rows []SummaryRow, color bool) string {
	if len(rows) == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	if color {
		tw.SetStyle(table.StyleColoredDark)
	}
	tw.AppendHeader(table.Row{"#", "Title", "Video", "Track", "Lines", "Status"})

	ok := 0
	for i, r := range rows {
		if r.Status == StatusOK {
			ok++
		}
		tw.AppendRow(table.Row{i + 1, r.Title, r.VideoID, r.Track, r.Lines, r.Status})
	}
	tw.AppendFooter(table.Row{"", "", "", "", "converted", strconv.Itoa(ok) + "/" + strconv.Itoa(len(rows))})

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 2, WidthMax: 60},
		{Number: 5, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
