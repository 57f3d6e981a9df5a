/**
 * Copyright 2021 TryFix Engineering.
 * All rights reserved.
 * Authors:
 *    Gayan Yapa (gmbyapa@gmail.com)
 */

// Package graph attaches built connector descriptors to an execution graph.
// The graph is the hand off point between configuration and the runtime, it
// never mutates the descriptors it carries.
package graph

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/tryfix/kconnect/kconnect"
	"github.com/tryfix/log"
	"github.com/tryfix/metrics"
)

// DuplicateNodeNameError signals a second node attached under an already used
// name while unique names are enforced.
type DuplicateNodeNameError struct {
	Name string
}

func (e DuplicateNodeNameError) Error() string {
	return fmt.Sprintf(`node name [%s] is already attached to the graph`, e.Name)
}

// Node is one attached connector in the execution graph.
type Node struct {
	id         uuid.UUID
	name       string
	typeString string
	descriptor *kconnect.Descriptor
}

func (n *Node) ID() uuid.UUID {
	return n.id
}

// Name is the user supplied operator name.
func (n *Node) Name() string {
	return n.name
}

// TypeString is the plan label of the node, eg `Source: pulsar source`.
func (n *Node) TypeString() string {
	return n.typeString
}

func (n *Node) Descriptor() *kconnect.Descriptor {
	return n.descriptor
}

type graphOptions struct {
	uniqueNames bool
	logger      log.Logger
	reporter    metrics.Reporter
}

type Options func(*graphOptions)

// WithUniqueNames rejects attaching two nodes under the same name.
func WithUniqueNames() Options {
	return func(o *graphOptions) {
		o.uniqueNames = true
	}
}

func WithLogger(logger log.Logger) Options {
	return func(o *graphOptions) {
		o.logger = logger
	}
}

func WithMetricsReporter(reporter metrics.Reporter) Options {
	return func(o *graphOptions) {
		o.reporter = reporter
	}
}

// Graph is an ordered collection of attached connector nodes. Safe for
// concurrent use.
type Graph struct {
	mu    sync.Mutex
	nodes []*Node
	names map[string]bool

	options       *graphOptions
	logger        log.Logger
	nodesAttached metrics.Counter
}

func NewGraph(options ...Options) *Graph {
	opts := &graphOptions{
		logger:   log.NewNoopLogger(),
		reporter: metrics.NoopReporter(),
	}
	for _, opt := range options {
		opt(opts)
	}

	return &Graph{
		names:   make(map[string]bool),
		options: opts,
		logger:  opts.logger.NewLog(log.Prefixed(`graph`)),
		nodesAttached: opts.reporter.Counter(metrics.MetricConf{
			Path:   `k_connect_graph_nodes_attached`,
			Labels: []string{`kind`, `connector`},
		}),
	}
}

// AttachSource appends a source node named `Source: <name>`.
func (g *Graph) AttachSource(name string, d *kconnect.Descriptor) (*Node, error) {
	return g.attach(name, fmt.Sprintf(`Source: %s`, name), d)
}

// AttachSink appends a sink node named `<name>: Writer`.
func (g *Graph) AttachSink(name string, d *kconnect.Descriptor) (*Node, error) {
	return g.attach(name, fmt.Sprintf(`%s: Writer`, name), d)
}

// AttachSinkFunction appends a legacy sink function node named `Sink: <name>`.
func (g *Graph) AttachSinkFunction(name string, d *kconnect.Descriptor) (*Node, error) {
	return g.attach(name, fmt.Sprintf(`Sink: %s`, name), d)
}

func (g *Graph) attach(name, typeString string, d *kconnect.Descriptor) (*Node, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.options.uniqueNames && g.names[name] {
		return nil, DuplicateNodeNameError{Name: name}
	}

	node := &Node{
		id:         uuid.New(),
		name:       name,
		typeString: typeString,
		descriptor: d,
	}

	g.nodes = append(g.nodes, node)
	g.names[name] = true

	g.nodesAttached.Count(1, map[string]string{
		`kind`:      string(d.Kind()),
		`connector`: d.Connector(),
	})
	g.logger.Debug(fmt.Sprintf(`node [%s] attached`, typeString))

	return node, nil
}

// Nodes returns the attached nodes in attachment order.
func (g *Graph) Nodes() []*Node {
	g.mu.Lock()
	defer g.mu.Unlock()

	nodes := make([]*Node, len(g.nodes))
	copy(nodes, g.nodes)
	return nodes
}

// Plan returns the node plan labels in attachment order.
func (g *Graph) Plan() []string {
	g.mu.Lock()
	defer g.mu.Unlock()

	plan := make([]string, 0, len(g.nodes))
	for _, n := range g.nodes {
		plan = append(plan, n.typeString)
	}
	return plan
}
