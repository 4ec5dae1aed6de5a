package mahjong

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"
)

const (
	flagNormal = 1
	flagRed    = 2
)

var (
	TileNull  Tile = -1
	TileEast  Tile = MakeTile(ColorWind, 0)   // 東
	TileSouth Tile = MakeTile(ColorWind, 1)   // 南
	TileWest  Tile = MakeTile(ColorWind, 2)   // 西
	TileNorth Tile = MakeTile(ColorWind, 3)   // 北
	TileHaku  Tile = MakeTile(ColorDragon, 0) // 白
	TileHatsu Tile = MakeTile(ColorDragon, 1) // 發
	TileChun  Tile = MakeTile(ColorDragon, 2) // 中
)

var ErrInvalidTile = errors.New("invalid tile")

// 字牌静态表
var honorTileMap = map[rune]Tile{
	'東': TileEast,
	'南': TileSouth,
	'西': TileWest,
	'北': TileNorth,
	'白': TileHaku,
	'發': TileHatsu,
	'中': TileChun,
}

var honorNames = [ColorEnd][]string{
	ColorWind:   {"東", "南", "西", "北"},
	ColorDragon: {"白", "發", "中"},
}

// 末位字符 -> 花色，大写表示赤牌
var letterToColor = map[byte]EColor{
	's': ColorBamboo,
	'm': ColorCharacter,
	'p': ColorDot,
}

// 绿一色可用的牌
var greenTiles = map[Tile]struct{}{
	MakeTile(ColorBamboo, 1): {},
	MakeTile(ColorBamboo, 2): {},
	MakeTile(ColorBamboo, 3): {},
	MakeTile(ColorBamboo, 5): {},
	MakeTile(ColorBamboo, 7): {},
	TileHatsu:                {},
}

// Tile 牌，低4位为标记位（1普通，2赤牌），比较与排序时请使用 Normal
type Tile int32

func MakeTile(color EColor, point int) Tile {
	return Tile(int(color)<<8 | point<<4 | flagNormal)
}

// MakeRedTile 赤五
func MakeRedTile(color EColor) Tile {
	return Tile(int(color)<<8 | 4<<4 | flagRed)
}

func (t Tile) Color() EColor {
	return EColor((t >> 8) & 0x0F)
}

// Point 从0开始，数牌的点数为 Point()+1
func (t Tile) Point() int {
	return int((t >> 4) & 0x0F)
}

func (t Tile) Info() (EColor, int) {
	return t.Color(), t.Point()
}

func (t Tile) Flag() int {
	return int(t & 0x0F)
}

func (t Tile) IsValid() bool {
	if t <= 0 {
		return false
	}
	c, p := t.Info()
	if c < ColorBegin || c >= ColorEnd || p >= PointCountByColor[c] {
		return false
	}
	switch t.Flag() {
	case flagNormal:
		return true
	case flagRed:
		return c.IsSuit() && p == 4
	}
	return false
}

func (t Tile) IsRed() bool {
	return t.Flag() == flagRed
}

// Normal 去掉赤牌标记
func (t Tile) Normal() Tile {
	return t&^0x0F | flagNormal
}

// Same 忽略赤牌标记比较
func (t Tile) Same(o Tile) bool {
	return t.Normal() == o.Normal()
}

func (t Tile) IsSuit() bool { // 数牌
	return t.Color().IsSuit()
}

func (t Tile) IsHonor() bool { // 字牌
	return t.Color() == ColorWind || t.Color() == ColorDragon
}

func (t Tile) IsWind() bool {
	return t.Color() == ColorWind
}

func (t Tile) IsDragon() bool { // 三元牌
	return t.Color() == ColorDragon
}

// Rank 数牌为1-9，字牌为0
func (t Tile) Rank() int {
	if !t.IsSuit() {
		return 0
	}
	return t.Point() + 1
}

func (t Tile) IsTerminal() bool { // 老头牌
	r := t.Rank()
	return r == 1 || r == 9
}

func (t Tile) IsYaojiu() bool { // 幺九牌
	return t.IsTerminal() || t.IsHonor()
}

func (t Tile) IsZhongzhang() bool { // 中张牌
	r := t.Rank()
	return r >= 2 && r <= 8
}

func (t Tile) IsGreen() bool {
	_, ok := greenTiles[t.Normal()]
	return ok
}

// Next 同花色的下一张，9或字牌返回 false
func (t Tile) Next() (Tile, bool) {
	c, p := t.Info()
	if !c.IsSuit() || p >= 8 {
		return TileNull, false
	}
	return MakeTile(c, p+1), true
}

// Prev 同花色的上一张，1或字牌返回 false
func (t Tile) Prev() (Tile, bool) {
	c, p := t.Info()
	if !c.IsSuit() || p <= 0 {
		return TileNull, false
	}
	return MakeTile(c, p-1), true
}

// WrappingNext 宝牌指示牌 -> 宝牌
func (t Tile) WrappingNext() Tile {
	c, p := t.Info()
	return MakeTile(c, (p+1)%PointCountByColor[c])
}

// WrappingPrev 宝牌 -> 宝牌指示牌
func (t Tile) WrappingPrev() Tile {
	c, p := t.Info()
	n := PointCountByColor[c]
	return MakeTile(c, (p+n-1)%n)
}

// ValueCount 役牌的番数：三元牌1，场风与自风各1
func (t Tile) ValueCount(ctx *Context) int {
	switch {
	case t.IsDragon():
		return 1
	case t.IsWind():
		n := 0
		if t.Same(ctx.Place.Tile()) {
			n++
		}
		if t.Same(ctx.Player.Tile()) {
			n++
		}
		return n
	}
	return 0
}

func (t Tile) String() string {
	c, p := t.Info()
	if c.IsSuit() {
		letter := c.Letter()
		if t.IsRed() {
			letter -= 'a' - 'A'
		}
		return strconv.Itoa(p+1) + string(letter)
	}
	if c == ColorWind || c == ColorDragon {
		return honorNames[c][p]
	}
	return ""
}

// ParseTile 解析 "1s" "5P" "東" 等形式
func ParseTile(name string) (Tile, error) {
	if r, size := utf8.DecodeRuneInString(name); size == len(name) {
		if t, ok := honorTileMap[r]; ok {
			return t, nil
		}
	}
	if len(name) != 2 || name[0] < '1' || name[0] > '9' {
		return TileNull, fmt.Errorf("%w: %q", ErrInvalidTile, name)
	}
	letter, red := name[1], false
	if letter >= 'A' && letter <= 'Z' {
		letter, red = letter+('a'-'A'), true
	}
	color, ok := letterToColor[letter]
	if !ok {
		return TileNull, fmt.Errorf("%w: %q", ErrInvalidTile, name)
	}
	point := int(name[0] - '1')
	if red {
		if point != 4 {
			return TileNull, fmt.Errorf("%w: only fives can be red: %q", ErrInvalidTile, name)
		}
		return MakeRedTile(color), nil
	}
	return MakeTile(color, point), nil
}
