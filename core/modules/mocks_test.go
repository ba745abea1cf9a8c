package modules

import (
	"time"

	"feedkit/core/domain"
	"feedkit/core/interfaces"
)

// fakeElement is a minimal in-memory implementation of interfaces.Element
type fakeElement struct {
	name     string
	ns       domain.Namespace
	text     string
	parent   *fakeElement
	children []*fakeElement
	decls    []domain.Namespace
}

func newFakeElement(name string, ns domain.Namespace) *fakeElement {
	return &fakeElement{name: name, ns: ns}
}

func (e *fakeElement) Name() string            { return e.name }
func (e *fakeElement) NamespacePrefix() string { return e.ns.Prefix }

func (e *fakeElement) AdditionalNamespaces() []domain.Namespace {
	return append([]domain.Namespace(nil), e.decls...)
}

func (e *fakeElement) AddNamespaceDeclaration(ns domain.Namespace) {
	for _, d := range e.decls {
		if d == ns {
			return
		}
	}
	e.decls = append(e.decls, ns)
}

func (e *fakeElement) RemoveNamespaceDeclaration(ns domain.Namespace) {
	for i, d := range e.decls {
		if d == ns {
			e.decls = append(e.decls[:i], e.decls[i+1:]...)
			return
		}
	}
}

func (e *fakeElement) Children() []interfaces.Element {
	out := make([]interfaces.Element, len(e.children))
	for i, c := range e.children {
		out[i] = c
	}
	return out
}

func (e *fakeElement) AddContent(child interfaces.Element) {
	c := child.(*fakeElement)
	c.parent = e
	e.children = append(e.children, c)
}

func (e *fakeElement) RemoveContent(child interfaces.Element) bool {
	for i, c := range e.children {
		if interfaces.Element(c) == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			c.parent = nil
			return true
		}
	}
	return false
}

func (e *fakeElement) Parent() interfaces.Element {
	if e.parent == nil {
		return nil
	}
	return e.parent
}

func (e *fakeElement) AddElement(name string, ns domain.Namespace) interfaces.Element {
	child := newFakeElement(name, ns)
	e.AddContent(child)
	return child
}

func (e *fakeElement) SetText(text string) { e.text = text }

// recordingGenerator records the modules it was asked to generate
type recordingGenerator struct {
	uri        string
	namespaces []domain.Namespace
	generated  []domain.Module
}

func (g *recordingGenerator) NamespaceURI() string           { return g.uri }
func (g *recordingGenerator) Namespaces() []domain.Namespace { return g.namespaces }

func (g *recordingGenerator) Generate(m domain.Module, el interfaces.Element) {
	g.generated = append(g.generated, m)
	el.AddElement("generated", domain.NewNamespace("", g.uri))
}

type uriModule string

func (m uriModule) URI() string { return string(m) }

// dcModule is a Dublin Core style bean module
type dcModule struct {
	creator  string
	subjects []string
	date     time.Time
	rights   *string
}

const dcURI = "http://purl.org/dc/elements/1.1/"

func (m *dcModule) URI() string           { return dcURI }
func (m *dcModule) GetCreator() string    { return m.creator }
func (m *dcModule) SetCreator(v string)   { m.creator = v }
func (m *dcModule) GetSubjects() []string { return m.subjects }
func (m *dcModule) GetDate() time.Time    { return m.date }
func (m *dcModule) GetRights() *string    { return m.rights }
func (m *dcModule) SetLanguage(v string)  {}

type brokenModule struct{}

func (brokenModule) URI() string      { return dcURI }
func (brokenModule) GetLevel() string { return "" }
func (brokenModule) SetLevel(int)     {}

// recordingLogger captures debug and warn messages
type recordingLogger struct {
	debug []string
	warn  []string
}

func (l *recordingLogger) Debug(msg string, _ map[string]interface{}) { l.debug = append(l.debug, msg) }
func (l *recordingLogger) Info(string, map[string]interface{})        {}
func (l *recordingLogger) Warn(msg string, _ map[string]interface{})  { l.warn = append(l.warn, msg) }
func (l *recordingLogger) Error(string, map[string]interface{})       {}
