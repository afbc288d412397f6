package sugar

import (
	"fmt"
	"strings"
	"sync"

	"github.com/vango-dev/domsugar/pkg/dom"
)

// StyleNames caches the translation from hyphenated CSS names to style
// field names. Entries are added on first use and never removed. It is
// safe for concurrent use and may be shared between builders.
type StyleNames struct {
	mu    sync.RWMutex
	names map[string]string
}

// NewStyleNames creates a cache whose "float" entry resolves to
// floatField. An empty floatField selects DefaultFloatField.
func NewStyleNames(floatField string) *StyleNames {
	if floatField == "" {
		floatField = DefaultFloatField
	}
	return &StyleNames{
		names: map[string]string{"float": floatField},
	}
}

// Resolve returns the style field for a CSS name.
func (c *StyleNames) Resolve(key string) string {
	field, _ := c.resolve(key)
	return field
}

// Len returns the number of cached names.
func (c *StyleNames) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.names)
}

// resolve returns the field and whether it was already cached.
func (c *StyleNames) resolve(key string) (string, bool) {
	c.mu.RLock()
	field, ok := c.names[key]
	c.mu.RUnlock()
	if ok {
		return field, true
	}

	// Two callers may derive the same missing entry; both store the same value.
	field = cssNameToField(key)
	c.mu.Lock()
	c.names[key] = field
	c.mu.Unlock()
	return field, false
}

// cssNameToField converts "-webkit-foo" to "WebkitFoo" and "-ms-foo" to
// "msFoo".
func cssNameToField(key string) string {
	var b strings.Builder
	b.Grow(len(key))
	for i := 0; i < len(key); i++ {
		c := key[i]
		if c == '-' && i+1 < len(key) {
			i++
			b.WriteByte(toUpper(key[i]))
			continue
		}
		b.WriteByte(c)
	}

	field := b.String()
	if strings.HasPrefix(field, "Ms") {
		field = "m" + field[1:]
	}
	return field
}

func toUpper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

// applyStyle assigns one style entry. Null values are skipped; numbers
// get a length unit unless the field is unitless. Host rejections, both
// returned errors and panics, are logged and dropped.
func (b *Builder) applyStyle(el dom.Element, key string, value Value) {
	if isNull(value) {
		return
	}

	field, cached := b.names.resolve(key)
	b.metrics.styleLookup(cached)

	text := stringify(value)
	if _, ok := value.(Number); ok && !unitlessFields[field] {
		text += lengthUnit
	}

	defer func() {
		if r := recover(); r != nil {
			b.rejectStyle(field, text, fmt.Errorf("panic: %v", r))
		}
	}()
	if err := el.Style().SetField(field, text); err != nil {
		b.rejectStyle(field, text, err)
	}
}

func (b *Builder) rejectStyle(field, value string, err error) {
	b.metrics.styleRejected()
	b.logger.Debug("style assignment rejected",
		"field", field,
		"value", value,
		"error", err,
	)
}
