package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// Config errors (E100-E199)
	"E100": {
		Category: CategoryConfig,
		Message:  "Config file not readable",
	},
	"E101": {
		Category: CategoryConfig,
		Message:  "Config file not parseable",
		Detail:   "colorctx.json must be a JSON object.",
	},
	"E102": {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
	},

	// Host errors (E200-E299)
	"E201": {
		Category: CategoryHost,
		Message:  "Handler not found",
		Detail:   "No handler is registered for this element and event. The page may be out of date.",
	},
	"E202": {
		Category: CategoryHost,
		Message:  "Unsupported event type",
		Detail:   "Only click and contextmenu events are dispatched.",
	},
	"E203": {
		Category: CategoryHost,
		Message:  "Host stopped",
		Detail:   "The event loop is no longer accepting interactions.",
	},

	// CLI errors (E300-E399)
	"E301": {
		Category: CategoryCLI,
		Message:  "Unknown palette color",
	},
	"E302": {
		Category: CategoryCLI,
		Message:  "Unknown output format",
	},
}
