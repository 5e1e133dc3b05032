package assets

// TemplateSet holds the HTML templates used to build notecard pages.
// The three templates work together: card snippets are rendered with Title
// or Body and then placed inside Page.
type TemplateSet struct {
	Name  string // Identifier (name or directory path)
	Page  string // Page scaffold: head, note container, background script
	Title string // Card snippet for a title section (year heading + body)
	Body  string // Card snippet for a plain body segment
}

// DefaultTemplateSetName is the name of the built-in template set.
const DefaultTemplateSetName = "default"

// templateFiles lists the files every template set directory must hold.
var templateFiles = []string{"page.html", "title.html", "body.html"}
