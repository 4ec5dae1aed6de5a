package mahjong

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrHandNotFound      = errors.New("hand not found")
	ErrHandRepeated      = errors.New("hand specified more than once")
	ErrLastNotFound      = errors.New("winning tile not found")
	ErrLastRepeated      = errors.New("winning tile specified more than once")
	ErrDorasRepeated     = errors.New("dora specified more than once")
	ErrLizhiWithFuro     = errors.New("lizhi declared with open melds")
	ErrTooManyRed        = errors.New("too many red fives")
	ErrTooManySameTiles  = errors.New("too many copies of a tile")
	ErrInvalidTilesCount = errors.New("invalid number of tiles")
)

// Tilesets 经过校验的整副牌，判定期间视为不可变
type Tilesets struct {
	ctx     *Context
	isZimo  bool
	last    Tile
	hand    Tiles
	pons    []Tiles
	chis    []Tiles
	minkans []Tiles
	ankans  []Tiles
	doras   Tiles // 宝牌本身，而非指示牌
}

func NewTilesets(ctx *Context, sets []Tileset) (*Tilesets, error) {
	ts, err := dispatch(ctx, sets)
	if err != nil {
		return nil, err
	}
	checks := []func() error{
		ts.checkLizhiFuro,
		ts.checkNumReds,
		ts.checkNumSameTiles,
		ts.checkNumTiles,
	}
	for _, check := range checks {
		if err := check(); err != nil {
			return nil, err
		}
	}
	return ts, nil
}

// ParseTilesets 解析以空白分隔的牌组，如 "1p1p1p2p2p2p3p3p3p5p ツモ5P ポン4p4p4p"
func ParseTilesets(ctx *Context, notation string) (*Tilesets, error) {
	fields := strings.Fields(notation)
	sets := make([]Tileset, 0, len(fields))
	for _, f := range fields {
		s, err := ParseTileset(f)
		if err != nil {
			return nil, err
		}
		sets = append(sets, s)
	}
	return NewTilesets(ctx, sets)
}

func dispatch(ctx *Context, sets []Tileset) (*Tilesets, error) {
	if ctx == nil {
		ctx = NewContext()
	}
	ts := &Tilesets{ctx: ctx}
	var hasHand, hasLast, hasDoras bool
	for _, s := range sets {
		switch s.Tag {
		case TagTsumo, TagRon:
			if hasLast {
				return nil, ErrLastRepeated
			}
			hasLast = true
			ts.isZimo = s.Tag == TagTsumo
			ts.last = s.Tiles.First()
		case TagHand:
			if hasHand {
				return nil, ErrHandRepeated
			}
			hasHand = true
			ts.hand = s.Tiles
		case TagPon:
			ts.pons = append(ts.pons, s.Tiles)
		case TagChi:
			ts.chis = append(ts.chis, s.Tiles)
		case TagMinkan:
			ts.minkans = append(ts.minkans, s.Tiles)
		case TagAnkan:
			ts.ankans = append(ts.ankans, s.Tiles)
		case TagDora:
			if hasDoras {
				return nil, ErrDorasRepeated
			}
			hasDoras = true
			for _, t := range s.Tiles {
				ts.doras = append(ts.doras, t.WrappingNext())
			}
		}
	}
	if !hasLast {
		return nil, ErrLastNotFound
	}
	if !hasHand {
		return nil, ErrHandNotFound
	}
	return ts, nil
}

func (ts *Tilesets) checkLizhiFuro() error {
	if ts.ctx.Lizhi != LizhiNone && ts.DidFuro() {
		return ErrLizhiWithFuro
	}
	return nil
}

func (ts *Tilesets) checkNumReds() error {
	reds := make(map[EColor]int)
	for _, t := range ts.TilesWithoutDoras() {
		if t.IsRed() {
			reds[t.Color()]++
		}
	}
	for c := ColorBegin; c < ColorEnd; c++ {
		if reds[c] > RedTileMax {
			return fmt.Errorf("%w: %d in %s", ErrTooManyRed, reds[c], c)
		}
	}
	return nil
}

func (ts *Tilesets) checkNumSameTiles() error {
	all := ts.TilesWithoutDoras()
	for _, d := range ts.doras {
		all = append(all, d.WrappingPrev())
	}
	nums := make(map[Tile]int)
	for _, t := range all {
		nums[t.Normal()]++
	}
	for _, t := range NewTiles(all...) {
		if nums[t.Normal()] > SameTileMax {
			return fmt.Errorf("%w: %s", ErrTooManySameTiles, t)
		}
	}
	return nil
}

// 杠按3张计算
func (ts *Tilesets) checkNumTiles() error {
	n := 1 + len(ts.hand) + 3*(len(ts.pons)+len(ts.chis)+len(ts.minkans)+len(ts.ankans))
	if n != TileCountAgari {
		return fmt.Errorf("%w: %d", ErrInvalidTilesCount, n)
	}
	return nil
}

func (ts *Tilesets) Context() *Context { return ts.ctx }
func (ts *Tilesets) IsZimo() bool      { return ts.isZimo }
func (ts *Tilesets) Last() Tile        { return ts.last }
func (ts *Tilesets) Hand() Tiles       { return ts.hand }
func (ts *Tilesets) Pons() []Tiles     { return ts.pons }
func (ts *Tilesets) Chis() []Tiles     { return ts.chis }
func (ts *Tilesets) Minkans() []Tiles  { return ts.minkans }
func (ts *Tilesets) Ankans() []Tiles   { return ts.ankans }
func (ts *Tilesets) Doras() Tiles      { return ts.doras }

// DidFuro 是否有吃、碰、明杠
func (ts *Tilesets) DidFuro() bool {
	return len(ts.pons) > 0 || len(ts.chis) > 0 || len(ts.minkans) > 0
}

// IsMenqian 门前清，暗杠不破坏门清
func (ts *Tilesets) IsMenqian() bool {
	return !ts.DidFuro()
}

// HandWithLast 手牌加和了牌，有序
func (ts *Tilesets) HandWithLast() Tiles {
	return NewTiles(append(ts.hand.Clone(), ts.last)...)
}

// TilesWithoutDoras 除宝牌外的所有牌，杠为4张
func (ts *Tilesets) TilesWithoutDoras() Tiles {
	res := Tiles{ts.last}
	res = append(res, ts.hand...)
	for _, groups := range [][]Tiles{ts.pons, ts.chis, ts.minkans, ts.ankans} {
		for _, g := range groups {
			res = append(res, g...)
		}
	}
	return res
}

// DoraCount 宝牌的番数，含赤牌
func (ts *Tilesets) DoraCount() int {
	n := 0
	for _, t := range ts.TilesWithoutDoras() {
		n += ts.doras.Count(t)
		if t.IsRed() {
			n++
		}
	}
	return n
}

// HasKans 是否有杠
func (ts *Tilesets) HasKans() bool {
	return len(ts.minkans) > 0 || len(ts.ankans) > 0
}

func (ts *Tilesets) String() string {
	var b strings.Builder
	b.WriteString(ts.hand.String())
	for _, g := range []struct {
		tag    ETag
		groups []Tiles
	}{{TagPon, ts.pons}, {TagChi, ts.chis}, {TagMinkan, ts.minkans}, {TagAnkan, ts.ankans}} {
		for _, tiles := range g.groups {
			b.WriteString(" " + g.tag.String() + tiles.String())
		}
	}
	if ts.isZimo {
		b.WriteString(" " + TagTsumo.String() + ts.last.String())
	} else {
		b.WriteString(" " + TagRon.String() + ts.last.String())
	}
	return b.String()
}

// Key 用于缓存，包含宝牌与场况
func (ts *Tilesets) Key() string {
	c := ts.ctx
	return fmt.Sprintf("%s|%s|%d%d|%s|%d|%v|%+v", ts, ts.doras, c.Place, c.Player, c.PlayerName, c.Lizhi, c.LuckyForms, *c.rule())
}
