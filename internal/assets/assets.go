package assets

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// LoadTemplateSet loads a template set by name using the default embedded loader.
// The name identifies a directory containing page.html, title.html and body.html.
func LoadTemplateSet(name string) (*TemplateSet, error) {
	return defaultLoader.LoadTemplateSet(name)
}

// TemplateSetNames lists the embedded template sets.
func TemplateSetNames() []string {
	return defaultLoader.TemplateSetNames()
}
