package inspect

// Control fixtures mimicking a widget toolkit's attribute-bag style:
// plain structs with exported fields, optional values as pointers.

// Color is an enum-like value rendered through its descriptive name.
type Color string

func (c Color) String() string { return string(c) }

type Text struct {
	Value    string
	Visible  bool
	Disabled bool
}

type TextField struct {
	Label    string
	HintText string
	Visible  bool
	Disabled bool
}

type Column struct {
	Controls []any
	Visible  bool
	Disabled bool
}

type Container struct {
	Content  any
	Width    *float64
	Padding  int
	Bgcolor  Color
	Visible  bool
	Disabled bool
}

type AppBar struct {
	Title   any
	Bgcolor Color
}

// Icon is node-shaped but also implements fmt.Stringer.
type Icon struct {
	Name string
}

func (i Icon) String() string { return i.Name }

type Page struct {
	Route    string
	Title    string
	Appbar   *AppBar
	Controls []any
	Visible  bool
	Disabled bool
}

func floatPtr(f float64) *float64 { return &f }
