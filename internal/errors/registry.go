package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Config Errors (E120-E149)
	// ============================================

	"E120": {
		Category: CategoryConfig,
		Message:  "Invalid configuration file",
		Detail:   "domsugar.json could not be read or is not valid JSON.",
	},
	"E122": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
		Detail:   "A value in domsugar.json is out of range.",
	},

	// ============================================
	// Tree Errors (E200-E209)
	// ============================================

	"E201": {
		Category: CategoryTree,
		Message:  "Invalid tree node",
		Detail:   "Tree nodes must be objects with a tag, strings, arrays or null.",
	},
	"E202": {
		Category: CategoryTree,
		Message:  "Malformed tree document",
		Detail:   "The document could not be decoded as JSON or YAML.",
	},

	// ============================================
	// Style Errors (E210-E219)
	// ============================================

	"E210": {
		Category: CategoryStyle,
		Message:  "Style value rejected",
		Detail:   "The host refused the style field or value. The builder ignores this error.",
	},

	// ============================================
	// Render Errors (E300-E309)
	// ============================================

	"E301": {
		Category: CategoryRender,
		Message:  "Node cannot be rendered",
		Detail:   "Only nodes created by the in-memory document with a non-empty tag name can be rendered.",
	},

	// ============================================
	// CLI Errors (E400-E409)
	// ============================================

	"E401": {
		Category: CategoryCLI,
		Message:  "Unknown input format",
		Detail:   "The input format must be json or yaml.",
	},
}

// GetAllCodes returns all registered error codes in sorted order.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
