// Package resolver classifies request paths into page types for the
// surrounding rendering layer.
package resolver

import (
	"strings"

	"github.com/metafind/metafind/internal/config"
	"github.com/metafind/metafind/internal/find"
	"github.com/metafind/metafind/internal/pathutil"
)

// PageType names the template the rendering layer should use for a request,
// with ordered fallbacks consulted when no specific entry exists for Name.
type PageType struct {
	Name      string
	Fallbacks []string
}

// PageResolver maps a request path and its parameters to a page type.
type PageResolver interface {
	Resolve(path string, params find.Params) PageType
}

// Default is the base classification: content items render as items,
// everything else as a category listing.
type Default struct {
	Known map[string]struct{}
}

func (d Default) Resolve(path string, params find.Params) PageType {
	id := strings.TrimSuffix(pathutil.CleanScope(path), "/")
	if _, ok := d.Known[id]; ok {
		return PageType{Name: "item"}
	}
	return PageType{Name: "category"}
}

// InfoFind decorates a base resolver: requests carrying a usable find trigger
// classify as search-result pages with "find" and "category" declared as
// template fallbacks; everything else delegates to the base.
type InfoFind struct {
	Config *config.Config
	Base   PageResolver
}

func (r InfoFind) Resolve(path string, params find.Params) PageType {
	trigger := params.Get(r.Config.TriggerParam)
	if strings.TrimSpace(find.SanitizeTrigger(trigger)) != "" {
		return PageType{
			Name:      r.Config.TriggerParam,
			Fallbacks: []string{"find", "category"},
		}
	}

	if r.Base == nil {
		return PageType{Name: "category"}
	}
	return r.Base.Resolve(path, params)
}
