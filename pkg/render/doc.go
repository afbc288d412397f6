// Package render serializes in-memory DOM trees to HTML.
//
// The renderer produces HTML5 output for trees built on dom.NewDocument:
//
//   - Text and attribute escaping
//   - Void elements (input, br, img, etc.) without closing tags
//   - Boolean attributes (disabled, checked, etc.) rendered bare
//   - Attributes in the order they were first set
//   - Raw text for script and style contents
//
// Go event listeners are not part of the markup. Inline handler
// attributes (set from strings) are rendered like any other attribute.
//
// # Basic Usage
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(el)
//
// To stream HTML to a writer:
//
//	err := renderer.RenderToWriter(w, el)
package render
