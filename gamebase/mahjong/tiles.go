package mahjong

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

var (
	ErrInvalidLast = errors.New("winning tile must be exactly one tile")
	ErrInvalidPon  = errors.New("invalid pon")
	ErrInvalidChi  = errors.New("invalid chi")
	ErrInvalidKan  = errors.New("invalid kan")
)

// Tiles 一组牌，由 NewTiles 创建时保持有序
type Tiles []Tile

func NewTiles(tiles ...Tile) Tiles {
	res := slices.Clone(Tiles(tiles))
	res.Sort()
	return res
}

// Sort 赤五排在同点数普通牌之后
func (ts Tiles) Sort() {
	slices.SortFunc(ts, func(a, b Tile) int {
		if c := cmp.Compare(a.Normal(), b.Normal()); c != 0 {
			return c
		}
		return cmp.Compare(a.Flag(), b.Flag())
	})
}

func (ts Tiles) Clone() Tiles {
	return slices.Clone(ts)
}

func (ts Tiles) First() Tile {
	return ts[0]
}

func (ts Tiles) Last() Tile {
	return ts[len(ts)-1]
}

// Middle 仅对3张的组有效
func (ts Tiles) Middle() Tile {
	if len(ts) != 3 {
		panic(fmt.Sprintf("Middle called on %d tiles: %s", len(ts), ts))
	}
	return ts[1]
}

func (ts Tiles) Contains(t Tile) bool {
	return ts.Index(t) >= 0
}

// Index 第一张与 t 相同（忽略赤牌）的位置
func (ts Tiles) Index(t Tile) int {
	return slices.IndexFunc(ts, t.Same)
}

func (ts Tiles) Count(t Tile) int {
	n := 0
	for _, tile := range ts {
		if tile.Same(t) {
			n++
		}
	}
	return n
}

func (ts Tiles) CountRed() int {
	n := 0
	for _, tile := range ts {
		if tile.IsRed() {
			n++
		}
	}
	return n
}

// Equal 忽略赤牌逐张比较
func (ts Tiles) Equal(o Tiles) bool {
	return slices.EqualFunc(ts, o, Tile.Same)
}

func (ts Tiles) All(pred func(Tile) bool) bool {
	for _, t := range ts {
		if !pred(t) {
			return false
		}
	}
	return true
}

func (ts Tiles) Any(pred func(Tile) bool) bool {
	return slices.ContainsFunc(ts, pred)
}

func (ts Tiles) String() string {
	var b strings.Builder
	for _, t := range ts {
		b.WriteString(t.String())
	}
	return b.String()
}

func (ts Tiles) CheckLast() error {
	if len(ts) != 1 {
		return fmt.Errorf("%w: %s", ErrInvalidLast, ts)
	}
	return nil
}

func (ts Tiles) CheckPon() error {
	if len(ts) != 3 || !ts.isKezi() {
		return fmt.Errorf("%w: %s", ErrInvalidPon, ts)
	}
	return nil
}

func (ts Tiles) CheckChi() error {
	if len(ts) != 3 || !ts.IsShunzi() {
		return fmt.Errorf("%w: %s", ErrInvalidChi, ts)
	}
	return nil
}

func (ts Tiles) CheckKan() error {
	if len(ts) != 4 || !ts.isKezi() {
		return fmt.Errorf("%w: %s", ErrInvalidKan, ts)
	}
	return nil
}

// IsShunzi 有序的三张连续同花色数牌
func (ts Tiles) IsShunzi() bool {
	if len(ts) != 3 {
		return false
	}
	for i := 1; i < len(ts); i++ {
		next, ok := ts[i-1].Next()
		if !ok || !next.Same(ts[i]) {
			return false
		}
	}
	return true
}

// IsKezi 三张或四张相同的牌
func (ts Tiles) IsKezi() bool {
	return (len(ts) == 3 || len(ts) == 4) && ts.isKezi()
}

func (ts Tiles) isKezi() bool {
	for _, t := range ts[1:] {
		if !t.Same(ts[0]) {
			return false
		}
	}
	return true
}

// ParseTiles 解析连续书写的牌，如 "1s2s3s白發中"
func ParseTiles(s string) (Tiles, error) {
	var res Tiles
	for len(s) > 0 {
		size := 2
		if s[0] < '0' || s[0] > '9' {
			_, size = utf8.DecodeRuneInString(s)
		}
		if size > len(s) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTile, s)
		}
		t, err := ParseTile(s[:size])
		if err != nil {
			return nil, err
		}
		res = append(res, t)
		s = s[size:]
	}
	return NewTiles(res...), nil
}

// MustParseTiles 用于常量与测试
func MustParseTiles(s string) Tiles {
	ts, err := ParseTiles(s)
	if err != nil {
		panic(err)
	}
	return ts
}
