// Package graphviz renders a GNFA with Graphviz.
package graphviz

import (
	"fmt"
	"io"

	"github.com/geange/gnfa"
	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"
)

type Font string

const (
	Helvetica Font = "Helvetica"
	Arial     Font = "Arial"
	Times     Font = "Times"
)

type RankDir string

const (
	LeftToRight RankDir = "LR"
	TopToBottom RankDir = "TB"
)

type Format string

const (
	DOT Format = "dot"
	SVG Format = "svg"
	PNG Format = "png"
	JPG Format = "jpg"
)

type Config struct {
	Name string
	Font
	RankDir
	Format
}

type Writer struct {
	*Config
	g       *cgraph.Graph
	mapping map[string]*cgraph.Node
}

func New(config *Config) *Writer {
	if config.Name == "" {
		config.Name = "gnfa"
	}
	if config.Font == "" {
		config.Font = Helvetica
	}
	if config.RankDir == "" {
		config.RankDir = LeftToRight
	}
	if config.Format == "" {
		config.Format = DOT
	}
	return &Writer{
		Config: config,
	}
}

func (w *Writer) writeState(i int, state string, g *gnfa.GNFA) error {
	node, err := w.g.CreateNode(fmt.Sprintf("s%d", i))
	if err != nil {
		return err
	}
	if state == g.Accept() {
		node.SetShape(cgraph.DoubleCircleShape)
	} else {
		node.SetShape(cgraph.CircleShape)
	}
	node.SetLabel(state)
	node.Set("fontname", string(w.Font))
	w.mapping[state] = node
	return nil
}

// writeStart Adds the point node feeding the start state.
func (w *Writer) writeStart(g *gnfa.GNFA) error {
	node, err := w.g.CreateNode("start")
	if err != nil {
		return err
	}
	node.SetShape(cgraph.PointShape)
	_, err = w.g.CreateEdge("start", node, w.mapping[g.Start()])
	return err
}

func (w *Writer) writeTransition(i int, t gnfa.Transition) error {
	edge, err := w.g.CreateEdge(fmt.Sprintf("t%d", i), w.mapping[t.From], w.mapping[t.To])
	if err != nil {
		return err
	}
	edge.SetLabel(t.Label.String())
	return nil
}

// Flush Renders the present states and transitions of g to out.
func (w *Writer) Flush(out io.Writer, g *gnfa.GNFA) error {
	gv := graphviz.New()
	defer func() {
		_ = gv.Close()
	}()
	graph, err := gv.Graph()
	if err != nil {
		return err
	}
	graph.SetRankDir(cgraph.RankDir(w.RankDir))
	w.g = graph
	w.mapping = make(map[string]*cgraph.Node)

	for i, s := range g.States() {
		if err := w.writeState(i, s, g); err != nil {
			return err
		}
	}
	if err := w.writeStart(g); err != nil {
		return err
	}
	i := 0
	for t := range g.Transitions() {
		if err := w.writeTransition(i, t); err != nil {
			return err
		}
		i++
	}
	return gv.Render(graph, graphviz.Format(w.Format), out)
}
