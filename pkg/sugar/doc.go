// Package sugar builds element trees from a compact tag descriptor, a
// property bag and a list of children.
//
//	b := sugar.New(dom.NewDocument())
//
//	b.El("br")
//	// <br>
//
//	b.Create("div#foo", sugar.Props{"className": sugar.String("aa bb")})
//	// <div class="aa bb" id="foo"></div>
//
//	b.El("div", b.El("span", "Hello"), " world &")
//	// <div><span>Hello</span> world &amp;</div>
//
//	b.Create("button", sugar.Props{"onClick": sugar.Handler(onOK)}, "OK")
//	// <button>OK</button> with a click listener
//
//	b.Create("div", sugar.Props{"style": sugar.StyleMap{
//	    "font-size": sugar.Number(10),
//	    "border":    sugar.String("solid"),
//	}})
//	// <div style="border: solid; font-size: 10px"></div>
//
// # Descriptors
//
// A descriptor is "tag(#id)?(.class)*". The last id wins; classes are
// joined with single spaces in order. Both override "id" and "className"
// given in the property bag.
//
// # Properties
//
// Keys are dispatched in this order: "style"; "on" followed by an upper
// case letter (event handlers); direct properties (className,
// defaultValue, htmlFor, textContent, unselectable, value); boolean
// properties (autofocus, checked, defaultChecked, disabled, hidden,
// multiple, readOnly, required, selected); anything else is an attribute,
// removed when the value is Null.
//
// # Failure Policy
//
// Construction never fails. Style values the host rejects are dropped and
// logged at debug level; unsupported children are skipped.
package sugar
