package graph

import (
	"fmt"
	"strings"

	"github.com/awalterschulze/gographviz"
	"github.com/tryfix/kconnect/kconnect"
)

// Viz renders the execution graph as a graphviz dot document. Sources fan
// into the runtime node, the runtime node fans out into sinks.
func (g *Graph) Viz() string {
	parent := `root`
	viz := gographviz.NewGraph()
	if err := viz.SetName(parent); err != nil {
		panic(err)
	}
	if err := viz.SetDir(true); err != nil {
		panic(err)
	}

	if err := viz.AddAttr(parent, `splines`, `ortho`); err != nil {
		panic(err)
	}

	if err := viz.AddNode(parent, `runtime`, map[string]string{
		`fontcolor`: `grey100`,
		`fillcolor`: `limegreen`,
		`style`:     `filled`,
		`label`:     `"Runtime"`,
	}); err != nil {
		panic(err)
	}

	for _, node := range g.Nodes() {
		nName := vizNodeName(node)
		attrs := map[string]string{
			`color`: `black`,
			`style`: `filled`,
			`shape`: `oval`,
			`label`: fmt.Sprintf(`"%s"`, node.TypeString()),
		}

		if node.Descriptor().Kind() == kconnect.KindSource {
			attrs[`fillcolor`] = `deepskyblue1`
			if err := viz.AddNode(parent, nName, attrs); err != nil {
				panic(err)
			}
			if err := viz.AddEdge(nName, `runtime`, true, nil); err != nil {
				panic(err)
			}
			continue
		}

		attrs[`fillcolor`] = `orange`
		if err := viz.AddNode(parent, nName, attrs); err != nil {
			panic(err)
		}
		if err := viz.AddEdge(`runtime`, nName, true, nil); err != nil {
			panic(err)
		}
	}

	return viz.String()
}

func vizNodeName(node *Node) string {
	name := fmt.Sprintf(`%s_%s_%s`, node.Descriptor().Kind(), node.Descriptor().Connector(), node.ID())
	name = strings.ReplaceAll(name, `-`, `_`)
	return strings.ReplaceAll(name, `.`, `_`)
}
