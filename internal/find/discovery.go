package find

import (
	"strings"

	"github.com/metafind/metafind/internal/catalog"
	"github.com/metafind/metafind/internal/pathutil"
)

// Discover returns the identifiers of every content item with a sidecar
// record under scope: the whole site for the empty scope, otherwise items
// whose logical directory equals scope or lies properly beneath it. Derived
// identifiers without a matching content item are discarded, which guards
// against orphaned sidecars.
func Discover(cat *catalog.Catalog, scope string) map[string]struct{} {
	scope = pathutil.CleanScope(scope)
	known := cat.KnownItems()
	fullSuffix := cat.ContentSuffix() + cat.SidecarSuffix()

	out := make(map[string]struct{})
	for _, sc := range cat.Sidecars() {
		if !pathutil.WithinScope(sc.Dir, scope) {
			continue
		}

		id := strings.TrimSuffix(sc.Rel, fullSuffix)
		if id == sc.Rel {
			continue
		}

		if _, ok := known[id]; !ok {
			continue
		}
		out[id] = struct{}{}
	}
	return out
}
