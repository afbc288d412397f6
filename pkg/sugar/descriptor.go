package sugar

import "strings"

// Descriptor is a parsed "tag#id.class" string.
type Descriptor struct {
	Tag     string
	ID      string
	Classes string
}

// ParseDescriptor splits a descriptor into its tag, id and classes.
//
// Segments are a '#' or '.' followed by at least one character that is
// neither. The tag is everything before the first segment (the whole
// string when there is none). The last id segment wins; class segments
// are joined with single spaces in order. Nothing is validated.
func ParseDescriptor(s string) Descriptor {
	var (
		d       Descriptor
		classes []string
		tagEnd  = -1
	)

	for i := 0; i < len(s); {
		marker := s[i]
		if marker != '#' && marker != '.' {
			i++
			continue
		}
		j := i + 1
		for j < len(s) && s[j] != '#' && s[j] != '.' {
			j++
		}
		if j == i+1 {
			// Bare marker; it stays part of the surrounding text.
			i++
			continue
		}

		if tagEnd < 0 {
			tagEnd = i
		}
		name := s[i+1 : j]
		if marker == '#' {
			d.ID = name
		} else {
			classes = append(classes, name)
		}
		i = j
	}

	if tagEnd < 0 {
		d.Tag = s
	} else {
		d.Tag = s[:tagEnd]
	}
	d.Classes = strings.Join(classes, " ")
	return d
}
