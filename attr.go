package cartoon

import "sort"

// Animatable is anything a Timeline can read and write attributes on.
type Animatable interface {
	Name() string
	Attr(name string) (any, bool)
	SetAttr(name string, value any) bool
}

// Drawable is a named canvas member.
type Drawable interface {
	Animatable
	Draw(s Surface)
	IsVisible() bool
}

// reservedItemAttrs are the transform and state fields every item exposes
// through Attr regardless of its render attributes.
var reservedItemAttrs = map[string]bool{
	"x": true, "y": true, "rotation": true, "scale": true,
	"path": true, "reverse": true, "closePath": true, "visible": true,
	"originX": true, "originY": true,
}

// Attr returns the current value of a render attribute or reserved field.
// The second result is false if the name is unknown.
func (it *Item) Attr(name string) (any, bool) {
	if v, ok := it.attrs[name]; ok {
		return v, true
	}
	if !reservedItemAttrs[name] {
		return nil, false
	}
	switch name {
	case "x":
		return it.X, true
	case "y":
		return it.Y, true
	case "rotation":
		return it.Rotation, true
	case "scale":
		return it.Scale, true
	case "originX":
		return it.OriginX, true
	case "originY":
		return it.OriginY, true
	case "reverse":
		return it.Reverse, true
	case "visible":
		return it.Visible, true
	case "closePath":
		return it.ClosePath, true
	case "path":
		return it.Path(), true
	}
	return nil, false
}

// SetAttr sets a render attribute or reserved field. Render attributes are
// legal only if a default is already present. Returns false for unknown
// names and for reserved fields given a value of the wrong kind.
func (it *Item) SetAttr(name string, value any) bool {
	if _, ok := it.attrs[name]; ok {
		it.attrs[name] = value
		return true
	}
	if !reservedItemAttrs[name] {
		return false
	}
	switch name {
	case "x":
		return setFloat(&it.X, value)
	case "y":
		return setFloat(&it.Y, value)
	case "rotation":
		return setFloat(&it.Rotation, value)
	case "scale":
		return setFloat(&it.Scale, value)
	case "originX":
		return setFloat(&it.OriginX, value)
	case "originY":
		return setFloat(&it.OriginY, value)
	case "reverse":
		return setBool(&it.Reverse, value)
	case "visible":
		return setBool(&it.Visible, value)
	case "closePath":
		return setBool(&it.ClosePath, value)
	case "path":
		p, ok := value.([]Vertex)
		if !ok {
			return false
		}
		it.SetPath(p)
		return true
	}
	return false
}

// SetAttrs applies every entry of m and reports whether all of them
// succeeded. A failing key does not stop the remaining keys from being
// applied and nothing is rolled back.
func (it *Item) SetAttrs(m map[string]any) bool {
	return setAll(it, m)
}

// IsVisible reports whether the canvas should draw the item.
func (it *Item) IsVisible() bool {
	return it.Visible
}

// setAll applies m to a in sorted key order.
func setAll(a Animatable, m map[string]any) bool {
	ok := true
	for _, k := range sortedKeys(m) {
		if !a.SetAttr(k, m[k]) {
			ok = false
		}
	}
	return ok
}

func setFloat(dst *float64, value any) bool {
	f, ok := toFloat(value)
	if !ok {
		return false
	}
	*dst = f
	return true
}

func setBool(dst *bool, value any) bool {
	b, ok := value.(bool)
	if !ok {
		return false
	}
	*dst = b
	return true
}

// toFloat converts any Go numeric value to float64.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
