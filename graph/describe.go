package graph

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
)

// Describe renders the attached nodes and their resolved configuration as a
// table, meant for startup logs.
func (g *Graph) Describe() string {
	b := new(bytes.Buffer)
	table := tablewriter.NewWriter(b)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{`Node`, `Kind`, `Connector`, `Config`})

	for _, node := range g.Nodes() {
		d := node.Descriptor()

		cfg := new(bytes.Buffer)
		cfgTable := tablewriter.NewWriter(cfg)
		for _, key := range d.Config().Keys() {
			cfgTable.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT})
			cfgTable.Append([]string{key})
		}
		cfgTable.Render()

		table.Append([]string{
			node.TypeString(),
			fmt.Sprint(d.Kind()),
			d.Connector(),
			cfg.String(),
		})
	}

	table.Render()
	return b.String()
}
