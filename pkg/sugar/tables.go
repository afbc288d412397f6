package sugar

// directProperties are assigned as string fields on the element.
var directProperties = map[string]bool{
	"className":    true,
	"defaultValue": true,
	"htmlFor":      true,
	"textContent":  true,
	"unselectable": true,
	"value":        true,
}

// booleanProperties are assigned as boolean fields on the element.
var booleanProperties = map[string]bool{
	"autofocus":      true,
	"checked":        true,
	"defaultChecked": true,
	"disabled":       true,
	"hidden":         true,
	"multiple":       true,
	"readOnly":       true,
	"required":       true,
	"selected":       true,
}

// unitlessFields are numeric style fields that take no "px" suffix.
var unitlessFields = map[string]bool{
	"opacity": true,
	"zIndex":  true,
	"index":   true,
}

const (
	// DefaultFloatField is the style field for "float" on standard hosts.
	DefaultFloatField = "cssFloat"

	// LegacyFloatField is the style field for "float" on legacy hosts.
	LegacyFloatField = "styleFloat"

	lengthUnit = "px"
)

// IsDirectProperty reports whether key is assigned as a string field.
func IsDirectProperty(key string) bool { return directProperties[key] }

// IsBooleanProperty reports whether key is assigned as a boolean field.
func IsBooleanProperty(key string) bool { return booleanProperties[key] }

// IsUnitless reports whether numeric values of the style field are
// assigned without a length unit.
func IsUnitless(field string) bool { return unitlessFields[field] }
