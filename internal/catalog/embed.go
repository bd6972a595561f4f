package catalog

import (
	"bytes"
	_ "embed"
)

//go:embed data/catalog.json
var defaultCatalogJSON []byte

// DefaultCatalog loads the catalog bundled with the binary. Host
// applications normally supply their own catalog; the bundled one backs
// the CLI and serves as a reference for the expected shape.
func DefaultCatalog() (*Catalog, error) {
	return LoadCatalog(bytes.NewReader(defaultCatalogJSON))
}
