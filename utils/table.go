package utils

import (
	"bytes"
	"github.com/olekukonko/tablewriter"
)

func RenderTable(header []string, rows [][]string) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)
	table.Render()

	return tableBuffer.String()
}
