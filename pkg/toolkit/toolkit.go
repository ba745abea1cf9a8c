// ABOUTME: Composition root wiring configuration, logging and generators together
// ABOUTME: Builds feed generators from declarative module generator configuration

package toolkit

import (
	"io"

	"feedkit/core/bean"
	"feedkit/core/domain"
	coreerrors "feedkit/core/errors"
	"feedkit/core/generator"
	"feedkit/core/interfaces"
	"feedkit/core/modules"
	"feedkit/infrastructure/logger/structured"
	"feedkit/pkg/config"
)

// Toolkit holds the shared dependencies of every generator it builds
type Toolkit struct {
	Config   *config.Config
	Deps     interfaces.Dependencies
	Resolver *bean.Resolver
}

// FromEnv loads configuration from the environment and builds a toolkit
// logging to out
func FromEnv(out io.Writer) (*Toolkit, error) {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, coreerrors.WrapError(err, "failed to load configuration")
	}
	return New(cfg, out)
}

// New validates cfg and builds a toolkit logging to out
func New(cfg *config.Config, out io.Writer) (*Toolkit, error) {
	if err := cfg.Validate(); err != nil {
		return nil, coreerrors.WrapError(err, "invalid configuration")
	}

	logger, err := structured.NewLogger(structured.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: out,
	})
	if err != nil {
		return nil, coreerrors.WrapError(err, "failed to create logger")
	}

	deps := interfaces.Dependencies{Logger: logger}
	return &Toolkit{
		Config:   cfg,
		Deps:     deps,
		Resolver: bean.NewResolver(deps),
	}, nil
}

// BeanCatalog returns a catalog with one bean generator per namespace,
// identified by the namespace prefix
func (t *Toolkit) BeanCatalog(namespaces ...domain.Namespace) modules.Catalog {
	catalog := make(modules.Catalog, len(namespaces))
	for _, ns := range namespaces {
		ns := ns
		catalog[ns.Prefix] = func() interfaces.ModuleGenerator {
			return modules.NewBeanGenerator(ns, t.Resolver, t.Deps)
		}
	}
	return catalog
}

// NewGenerator builds the generator of feedType from the module generator
// configuration
func (t *Toolkit) NewGenerator(feedType string, cfg modules.Config, catalog modules.Catalog) (*generator.Generator, error) {
	scopes, err := modules.LoadScopes(feedType, cfg, catalog, t.Deps)
	if err != nil {
		return nil, err
	}

	gen := generator.New(feedType, scopes, t.Deps, generator.WithPurge(t.Config.Generator.PurgeNamespaces))
	t.Deps.Logger.Info("Created feed generator", map[string]interface{}{
		"feed_type":  feedType,
		"namespaces": len(gen.Namespaces()),
	})
	return gen, nil
}
