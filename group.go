package cartoon

// Group draws a list of drawables together. Its transform fields are
// animatable but, unlike an item parent, are not inherited by members.
type Group struct {
	name     string
	members  []Drawable
	X, Y     float64
	Rotation float64
	Scale    float64
	Visible  bool
}

// NewGroup creates an empty, visible group.
func NewGroup(name string) *Group {
	return &Group{name: name, Scale: 1, Visible: true}
}

// Name returns the group's name.
func (g *Group) Name() string { return g.name }

// AddItem appends d to the group.
func (g *Group) AddItem(d Drawable) {
	g.members = append(g.members, d)
}

// Members returns the group's drawables. The slice MUST NOT be mutated.
func (g *Group) Members() []Drawable {
	return g.members
}

// Draw draws every member onto s.
func (g *Group) Draw(s Surface) {
	for _, d := range g.members {
		d.Draw(s)
	}
}

// IsVisible reports whether the group is drawn by its canvas.
func (g *Group) IsVisible() bool { return g.Visible }

// Attr returns x, y, rotation or scale.
func (g *Group) Attr(name string) (any, bool) {
	if f := g.field(name); f != nil {
		return *f, true
	}
	return nil, false
}

// SetAttr sets x, y, rotation or scale.
func (g *Group) SetAttr(name string, value any) bool {
	f := g.field(name)
	if f == nil {
		return false
	}
	return setFloat(f, value)
}

func (g *Group) field(name string) *float64 {
	switch name {
	case "x":
		return &g.X
	case "y":
		return &g.Y
	case "rotation":
		return &g.Rotation
	case "scale":
		return &g.Scale
	}
	return nil
}
