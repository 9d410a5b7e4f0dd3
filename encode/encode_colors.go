package encode

import (
	"fmt"

	"github.com/fatih/color"
)

type ColorAttr int

const (
	LevelColor ColorAttr = iota
	XRefColor
	TagColor
	ValueColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Default: colorDefault,
		Map: map[ColorAttr]func(string, ...any) string{
			LevelColor: color.RGB(128, 128, 128).SprintfFunc(),
			XRefColor:  color.RGB(196, 96, 16).SprintfFunc(),
			TagColor:   color.RGB(74, 92, 138).SprintfFunc(),
			ValueColor: colorDefault,
		},
	}
}

func colorDefault(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}

func (c *Colors) Color(attr ColorAttr, s string) string {
	f, ok := c.Map[attr]
	if !ok {
		f = c.Default
	}
	return f("%s", s)
}
