// Package assets provides the HTML templates for notecard pages.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (default set)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// AssetResolver is the loader used by the generator when an asset path is
// configured. It tries the custom FilesystemLoader first and falls back to
// the EmbeddedLoader only when the set is not found, so a broken custom set
// is reported instead of silently replaced.
//
// # Directory Structure
//
//	{basePath}/
//	└── templates/
//	    └── {name}/
//	        ├── page.html    # Page scaffold
//	        ├── title.html   # Title card snippet
//	        └── body.html    # Body card snippet
//
// Templates use html/template syntax. page.html receives Title, Stylesheet,
// BackgroundPages and Cards; the snippets receive Variant, Title and Body.
//
// # Security
//
// Asset names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
