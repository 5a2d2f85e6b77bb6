package encode

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/tidwall/pretty"
)

// Kind is the kind of JSON value a piece of output belongs to.
type Kind int

const (
	NullKind Kind = iota
	BoolKind
	NumberKind
	StringKind
	ObjectKind
	ArrayKind
)

type Colorable struct {
	Kind Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	FieldColor ColorAttr = iota
	ValueColor
	// SepColor colours brackets, braces and the separators of objects.
	SepColor
)

type Colors struct {
	Default func(...any) string
	Map     map[Colorable]func(...any) string
}

// NewColors returns the default palette.  Colours are emitted whether
// or not the output is a terminal; deciding that is up to the caller.
func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(...any) string{},
	}
	colors.Map[Colorable{Kind: ObjectKind, Attr: SepColor}] = sprint(color.New(color.FgMagenta))
	colors.Map[Colorable{Kind: ObjectKind, Attr: FieldColor}] = sprint(color.RGB(128, 168, 196))
	colors.Map[Colorable{Kind: NullKind, Attr: ValueColor}] = sprint(color.RGB(168, 0, 196))
	colors.Map[Colorable{Kind: BoolKind, Attr: ValueColor}] = sprint(color.New(color.FgCyan))
	colors.Map[Colorable{Kind: NumberKind, Attr: ValueColor}] = sprint(color.RGB(128, 216, 236))
	colors.Map[Colorable{Kind: StringKind, Attr: ValueColor}] = sprint(color.RGB(8, 196, 16))
	return colors
}

func sprint(c *color.Color) func(...any) string {
	c.EnableColor()
	return c.SprintFunc()
}

func colorDefault(v ...any) string {
	if len(v) == 1 {
		if s, ok := v[0].(string); ok {
			return s
		}
	}
	return fmt.Sprint(v...)
}

func (c *Colors) Color(k Kind, a ColorAttr, s string) string {
	return c.Get(k, a)(s)
}

// Style returns the palette as a pretty.Style.  Each colour function
// is split around its argument into the text written before and after
// a value.
func (c *Colors) Style() *pretty.Style {
	return &pretty.Style{
		Key:      c.wrap(ObjectKind, FieldColor),
		String:   c.wrap(StringKind, ValueColor),
		Number:   c.wrap(NumberKind, ValueColor),
		True:     c.wrap(BoolKind, ValueColor),
		False:    c.wrap(BoolKind, ValueColor),
		Null:     c.wrap(NullKind, ValueColor),
		Brackets: c.wrap(ObjectKind, SepColor),
	}
}

const mark = "\x00"

func (c *Colors) wrap(k Kind, a ColorAttr) [2]string {
	pre, post, _ := strings.Cut(c.Color(k, a, mark), mark)
	return [2]string{pre, post}
}

func (c *Colors) Get(k Kind, a ColorAttr) func(...any) string {
	f := c.Map[Colorable{Kind: k, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
