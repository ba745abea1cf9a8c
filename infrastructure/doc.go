// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package.
//
// The infrastructure package is organized by technical concern:
//
// - logger/structured: logrus-backed structured logger
// - xml/xmltree: Element implementation over antchfx/xmlquery nodes
// - feedext: gofeed extension trees converted to foreign markup
//
// # Logger
//
//	logger, err := structured.NewLogger(structured.Options{Level: "debug", Format: "json"})
//	logger.Info("Created feed generator", map[string]interface{}{
//	    "feed_type": "rss_2.0",
//	})
//
// # XML Tree
//
//	root, err := xmltree.Parse(strings.NewReader(doc))
//	generator.PurgeUnusedNamespaceDeclarations(root)
//	out := root.OutputXML()
//
// # Foreign Markup
//
//	feed, err := gofeed.NewParser().ParseString(doc)
//	fragments := feedext.NewConverter(gen.Namespaces(), deps).ItemMarkup(feed.Items[0])
//	gen.GenerateForeignMarkup(itemElement, fragments)
package infrastructure
