package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: notecards [command] [flags] [input.md]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  generate   Turn a Markdown history outline into notecard pages (default)")
	fmt.Fprintln(w, "  config     Print the effective configuration as YAML")
	fmt.Fprintln(w, "  doctor     Check the PDF printing environment")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'notecards help <command>' for details on a specific command.")
}

// printGenerateUsage prints usage for the generate command.
func printGenerateUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: notecards generate [input.md] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Split a Markdown outline into notecards and write numbered HTML pages.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file (default: gac-history-original.md)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <dir>          Output directory (default: gac-history)")
	fmt.Fprintln(w, "      --prefix <s>            File prefix: <prefix>-<n>.html (default: gac-history)")
	fmt.Fprintln(w, "  -c, --config <name>         Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Cards:")
	fmt.Fprintln(w, "  -m, --max-length <n>        Segment length budget in characters (default: 700)")
	fmt.Fprintln(w, "  -e, --engine <s>            Inline renderer: strong, goldmark (default: strong)")
	fmt.Fprintln(w, "      --seed <n>              Seed the layout class choice")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --titles-per-doc <n>    Title sections per page (default: 3)")
	fmt.Fprintln(w, "      --title <s>             Page <title> (default: \"GAC History\")")
	fmt.Fprintln(w, "      --stylesheet <href>     Stylesheet href, relative to the pages")
	fmt.Fprintln(w, "      --background-pages <n>  Decorative background pages (default: 100)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Templates:")
	fmt.Fprintln(w, "      --template <name>       Template set name (default: default)")
	fmt.Fprintln(w, "      --asset-path <dir>      Directory with templates/<set>/*.html")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "PDF:")
	fmt.Fprintln(w, "      --pdf                   Also print every page to PDF (requires Chrome)")
	fmt.Fprintln(w, "  -t, --timeout <d>           Per-page timeout (default: 30s)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet                 Only show errors")
	fmt.Fprintln(w, "  -v, --verbose               Show per-page details and timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  NOTECARDS_CONFIG, NOTECARDS_INPUT, NOTECARDS_OUTPUT_DIR, NOTECARDS_PREFIX,")
	fmt.Fprintln(w, "  NOTECARDS_ENGINE, NOTECARDS_TEMPLATE_SET, NOTECARDS_ASSET_PATH, NOTECARDS_TIMEOUT")
	fmt.Fprintln(w, "  ROD_BROWSER_BIN, ROD_NO_SANDBOX")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Priority: flags > environment > config file > defaults")
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: notecards config [-c <name>]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the configuration generate would use, after environment overrides.")
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: notecards doctor [--json]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check PDF printing and template readiness.")
}
