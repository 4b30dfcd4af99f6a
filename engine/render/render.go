// Package render implements template-based description text: simple
// {placeholder} substitution plus per-location/per-item template pools.
package render

import (
	"strings"

	"github.com/nathoo/shmoopland/engine/cache"
	"github.com/nathoo/shmoopland/engine/random"
)

// Render substitutes {name} placeholders in template with values from
// vars. If any placeholder has no value, the original template is
// returned unmodified rather than partially filled.
func Render(template string, vars map[string]string) string {
	placeholders := scanPlaceholders(template)
	if len(placeholders) == 0 {
		return template
	}
	for _, name := range placeholders {
		if _, ok := vars[name]; !ok {
			return template
		}
	}
	out := template
	for _, name := range placeholders {
		out = strings.ReplaceAll(out, "{"+name+"}", vars[name])
	}
	return out
}

// scanPlaceholders returns the placeholder names in a template.
func scanPlaceholders(template string) []string {
	var names []string
	for i := 0; i < len(template); i++ {
		if template[i] != '{' {
			continue
		}
		end := strings.IndexByte(template[i:], '}')
		if end < 0 {
			break
		}
		name := template[i+1 : i+end]
		if name != "" && !strings.ContainsAny(name, "{ \t") {
			names = append(names, name)
		}
		i += end
	}
	return names
}

// Renderer generates dynamic descriptions from per-subject template
// pools and context variables. Generated text is memoized by an
// order-independent composite key of subject and context.
type Renderer struct {
	templates map[string][]string // subject ID -> template pool
	variables map[string][]string // variable name -> candidate values
	cache     *cache.Cache
	rng       *random.RNG
}

// NewRenderer creates a renderer over the given template pools.
func NewRenderer(templates, variables map[string][]string, rng *random.RNG, cacheCapacity int) *Renderer {
	if templates == nil {
		templates = map[string][]string{}
	}
	if variables == nil {
		variables = map[string][]string{}
	}
	return &Renderer{
		templates: templates,
		variables: variables,
		cache:     cache.New(cacheCapacity),
		rng:       rng,
	}
}

// Describe renders a dynamic description for the subject, falling back
// to the static text when no template pool exists. Context values win
// over the configured variables; list-valued variables contribute a
// random element.
func (r *Renderer) Describe(subject, static string, context map[string]string) string {
	pool := r.templates[subject]
	if len(pool) == 0 {
		return Render(static, r.vars(context))
	}

	key := cache.CompositeKey(subject, context)
	if v, ok := r.cache.Get(key); ok {
		return v.(string)
	}

	template := pool[r.rng.Intn(len(pool))]
	text := Render(template, r.vars(context))
	r.cache.Put(key, text)
	return text
}

// vars merges configured variables (random element per list) with the
// caller's context, context winning.
func (r *Renderer) vars(context map[string]string) map[string]string {
	out := make(map[string]string, len(r.variables)+len(context))
	for name, values := range r.variables {
		if len(values) == 1 {
			out[name] = values[0]
		} else if len(values) > 1 {
			out[name] = values[r.rng.Intn(len(values))]
		}
	}
	for k, v := range context {
		out[k] = v
	}
	return out
}
