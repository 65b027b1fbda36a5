package generator

// modelAliases maps the model identifiers stored on products to
// generator-supported model names. Product setup lets businesses pick from a
// short menu; the stored identifier is decoupled from the provider's naming.
var modelAliases = map[string]string{
	"gpt-4":         "gpt-4o",
	"gpt-4o":        "gpt-4o",
	"gpt-4o-mini":   "gpt-4o-mini",
	"gpt-4-turbo":   "gpt-4-turbo",
	"gpt-3.5":       "gpt-3.5-turbo",
	"gpt-3.5-turbo": "gpt-3.5-turbo",
}

// ResolveModel maps a product's model identifier to a supported model name.
// Unknown identifiers fall back to the default rather than failing the request.
func ResolveModel(id, fallback string) string {
	if name, ok := modelAliases[id]; ok {
		return name
	}
	return fallback
}
