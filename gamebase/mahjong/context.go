package mahjong

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownDirection = errors.New("unknown direction")
	ErrUnknownLizhi     = errors.New("unknown lizhi")
)

// Direction 场风与自风
type Direction int

const (
	East Direction = iota
	South
	West
	North
)

var directionNames = [...]string{"東", "南", "西", "北"}
var directionEnNames = [...]string{"East", "South", "West", "North"}

func (d Direction) String() string {
	return directionNames[d]
}

func (d Direction) English() string {
	return directionEnNames[d]
}

// Tile 对应的风牌
func (d Direction) Tile() Tile {
	return MakeTile(ColorWind, int(d))
}

func ParseDirection(s string) (Direction, error) {
	for i := range directionNames {
		if s == directionNames[i] || s == directionEnNames[i] {
			return Direction(i), nil
		}
	}
	return East, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

func ParseLizhi(s string) (ELizhi, error) {
	if l, ok := lizhiKeys[s]; ok {
		return l, nil
	}
	return LizhiNone, fmt.Errorf("%w: %q", ErrUnknownLizhi, s)
}

// Context 判定时的场况，显式传入所有役的判定
type Context struct {
	Lizhi      ELizhi
	LuckyForms []FormKind // 海底、河底、岭上、抢杠、天和、地和等由调用方声明的役
	Place      Direction  // 场风
	Player     Direction  // 自风
	PlayerName string
	Rule       *Rule
}

func NewContext() *Context {
	return &Context{Rule: DefaultRule()}
}

// IsParent 亲家
func (c *Context) IsParent() bool {
	return c.Player == East
}

func (c *Context) rule() *Rule {
	if c.Rule == nil {
		return DefaultRule()
	}
	return c.Rule
}
