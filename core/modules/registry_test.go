package modules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feedkit/core/domain"
	"feedkit/core/interfaces"
)

func TestRegistry_GenerateDispatchesByURI(t *testing.T) {
	dc := &recordingGenerator{uri: "urn:dc", namespaces: []domain.Namespace{domain.NewNamespace("dc", "urn:dc")}}
	media := &recordingGenerator{uri: "urn:media"}
	registry := NewRegistry(domain.ScopeItem, interfaces.Dependencies{})
	registry.Register(dc)
	registry.Register(media)

	target := newFakeElement("item", domain.Namespace{})
	modules := []domain.Module{uriModule("urn:media"), uriModule("urn:dc"), uriModule("urn:media")}
	registry.Generate(modules, target)

	assert.Equal(t, []domain.Module{uriModule("urn:dc")}, dc.generated)
	assert.Equal(t, []domain.Module{uriModule("urn:media"), uriModule("urn:media")}, media.generated)
	require.Len(t, target.children, 3)
	assert.Equal(t, "urn:media", target.children[0].ns.URI)
	assert.Equal(t, "urn:dc", target.children[1].ns.URI)
}

func TestRegistry_GenerateSkipsUnregisteredModules(t *testing.T) {
	logger := &recordingLogger{}
	registry := NewRegistry(domain.ScopeFeed, interfaces.Dependencies{Logger: logger})
	target := newFakeElement("channel", domain.Namespace{})

	registry.Generate([]domain.Module{uriModule("urn:unknown"), nil}, target)

	assert.Empty(t, target.children)
	assert.Equal(t, []string{"No module generator registered"}, logger.debug)
}

func TestRegistry_GenerateEmpty(t *testing.T) {
	registry := NewRegistry(domain.ScopePerson, interfaces.Dependencies{})
	target := newFakeElement("author", domain.Namespace{})

	registry.Generate(nil, target)
	registry.Generate([]domain.Module{}, target)

	assert.Empty(t, target.children)
}

func TestRegistry_Namespaces(t *testing.T) {
	dc := domain.NewNamespace("dc", "urn:dc")
	media := domain.NewNamespace("media", "urn:media")
	registry := NewRegistry(domain.ScopeItem, interfaces.Dependencies{})

	registry.Register(&recordingGenerator{uri: "urn:dc", namespaces: []domain.Namespace{dc}})
	registry.Register(&recordingGenerator{uri: "urn:media", namespaces: []domain.Namespace{media, dc}})
	registry.Register(&recordingGenerator{uri: "urn:dc", namespaces: []domain.Namespace{dc}})

	assert.Equal(t, []domain.Namespace{dc, media}, registry.Namespaces())
	assert.Equal(t, []string{"urn:dc", "urn:media"}, registry.URIs())
	assert.Equal(t, domain.ScopeItem, registry.Scope())

	_, ok := registry.Generator("urn:media")
	assert.True(t, ok)
	_, ok = registry.Generator("urn:other")
	assert.False(t, ok)
}
