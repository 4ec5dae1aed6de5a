package mahjong

import (
	"fmt"
	"math/bits"
	"strings"
)

// Agari 一种和了形的分解：雀头、手牌中的刻子与顺子，以及荣和改判的一组
type Agari struct {
	ts       *Tilesets
	wait     EWaitKind
	rongming Rongming
	pair     Tiles
	kezis    []Tiles // 手牌中的暗刻（已去掉荣和改判的一组）
	shunzis  []Tiles // 手牌中的暗顺（已去掉荣和改判的一组）
	ankans   []Tiles
}

// EnumerateAgari 列举所有和了形，每种听牌形各生成一个
func EnumerateAgari(ts *Tilesets) []*Agari {
	var res []*Agari
	for _, q := range enumerateQuetou(ts.HandWithLast()) {
		for _, k := range enumerateKezi(q.rest) {
			shunzis, ok := extractShunzi(k.rest)
			if !ok {
				continue
			}
			for _, wait := range EnumerateWaits(q.pair, shunzis, k.kezis, ts.Last()) {
				res = append(res, newAgari(ts, wait, q.pair, k.kezis, shunzis))
			}
		}
	}
	return res
}

func newAgari(ts *Tilesets, wait EWaitKind, pair Tiles, kezis, shunzis []Tiles) *Agari {
	r := reconcileRon(ts, pair, kezis, shunzis)
	return &Agari{
		ts:       ts,
		wait:     wait,
		rongming: r,
		pair:     pair,
		kezis:    r.apply(sourceKezi, kezis),
		shunzis:  r.apply(sourceShunzi, shunzis),
		ankans:   r.apply(sourceAnkan, ts.Ankans()),
	}
}

type quetouCand struct {
	pair Tiles
	rest Tiles
}

type keziCand struct {
	kezis []Tiles
	rest  Tiles
}

type span struct {
	start, end int
}

func (s span) len() int {
	return s.end - s.start
}

// rangeSameTiles 有序牌中连续相同牌的区间
func rangeSameTiles(tiles Tiles) []span {
	var res []span
	start := 0
	for i := 1; i <= len(tiles); i++ {
		if i == len(tiles) || !tiles[i].Same(tiles[start]) {
			res = append(res, span{start, i})
			start = i
		}
	}
	return res
}

// enumerateQuetou 每种至少两张的牌各取前两张作为雀头
func enumerateQuetou(tiles Tiles) []quetouCand {
	var res []quetouCand
	for _, r := range rangeSameTiles(tiles) {
		if r.len() < 2 {
			continue
		}
		rest := make(Tiles, 0, len(tiles)-2)
		rest = append(rest, tiles[:r.start]...)
		rest = append(rest, tiles[r.start+2:]...)
		res = append(res, quetouCand{pair: NewTiles(tiles[r.start : r.start+2]...), rest: rest})
	}
	return res
}

// enumerateKezi 对至少三张的牌逐一决定是否取为刻子，共 2^k 种
func enumerateKezi(tiles Tiles) []keziCand {
	if len(tiles)%3 != 0 {
		panic(fmt.Sprintf("remaining tiles are not a multiple of 3: %d", len(tiles)))
	}
	var cands []span
	for _, r := range rangeSameTiles(tiles) {
		if r.len() >= 3 {
			cands = append(cands, span{r.start, r.start + 3})
		}
	}
	if len(cands) > 4 {
		panic(fmt.Sprintf("more than 4 triplet candidates: %s", tiles))
	}

	res := make([]keziCand, 0, 1<<len(cands))
	for set := uint(0); set < 1<<len(cands); set++ {
		rest := tiles.Clone()
		var kezis []Tiles
		removed := 0
		for i, c := range cands {
			if set>>i&1 == 0 {
				continue
			}
			start, end := c.start-removed, c.end-removed
			kezis = append(kezis, NewTiles(rest[start:end]...))
			rest = append(rest[:start], rest[end:]...)
			removed += c.len()
		}
		if bits.OnesCount(set) != len(kezis) {
			panic(fmt.Sprintf("picked %d triplets for mask %b", len(kezis), set))
		}
		res = append(res, keziCand{kezis: kezis, rest: rest})
	}
	return res
}

// extractShunzi 贪心拆顺子：每次取最前面的牌，再依次取出下一张、下下张的第一张。
// 不穷举所有拆法，结果取决于顺序。
func extractShunzi(tiles Tiles) ([]Tiles, bool) {
	if len(tiles)%3 != 0 {
		panic(fmt.Sprintf("remaining tiles are not a multiple of 3: %d", len(tiles)))
	}
	tiles = tiles.Clone()
	var res []Tiles
	for len(tiles) > 0 {
		group := Tiles{tiles[0]}
		tiles = tiles[1:]
		for range 2 {
			next, ok := group.Last().Next()
			if !ok {
				return nil, false
			}
			i := tiles.Index(next)
			if i < 0 {
				return nil, false
			}
			group = append(group, tiles[i])
			tiles = append(tiles[:i], tiles[i+1:]...)
		}
		res = append(res, group)
	}
	return res, true
}

func (a *Agari) Tilesets() *Tilesets { return a.ts }
func (a *Agari) Context() *Context   { return a.ts.Context() }
func (a *Agari) Wait() EWaitKind     { return a.wait }
func (a *Agari) Rongming() Rongming  { return a.rongming }
func (a *Agari) Pair() Tiles         { return a.pair }
func (a *Agari) IsZimo() bool        { return a.ts.IsZimo() }
func (a *Agari) IsMenqian() bool     { return a.ts.IsMenqian() }
func (a *Agari) Pons() []Tiles       { return a.ts.Pons() }
func (a *Agari) Chis() []Tiles       { return a.ts.Chis() }
func (a *Agari) Minkans() []Tiles    { return a.ts.Minkans() }

// Ankans 暗杠（荣和改判的除外）
func (a *Agari) Ankans() []Tiles { return a.ankans }

func (a *Agari) KezisInHand() []Tiles   { return a.kezis }
func (a *Agari) ShunzisInHand() []Tiles { return a.shunzis }

// RonMingkes 荣和改判的明刻，至多一组
func (a *Agari) RonMingkes() []Tiles {
	if t, ok := a.rongming.Mingke(); ok {
		return []Tiles{t}
	}
	return nil
}

// RonMingshuns 荣和改判的明顺，至多一组
func (a *Agari) RonMingshuns() []Tiles {
	if t, ok := a.rongming.Mingshun(); ok {
		return []Tiles{t}
	}
	return nil
}

// Mingkes 明刻：碰、明杠、荣和明刻
func (a *Agari) Mingkes() []Tiles {
	return concat(a.Pons(), a.Minkans(), a.RonMingkes())
}

// Ankes 暗刻：手牌刻子与暗杠
func (a *Agari) Ankes() []Tiles {
	return concat(a.kezis, a.ankans)
}

// Mingshuns 明顺：吃与荣和明顺
func (a *Agari) Mingshuns() []Tiles {
	return concat(a.Chis(), a.RonMingshuns())
}

func (a *Agari) Anshuns() []Tiles {
	return a.shunzis
}

func (a *Agari) Kezis() []Tiles {
	return concat(a.Mingkes(), a.Ankes())
}

func (a *Agari) Shunzis() []Tiles {
	return concat(a.Mingshuns(), a.Anshuns())
}

// Mianzis 所有面子，刻子在前
func (a *Agari) Mianzis() []Tiles {
	return concat(a.Kezis(), a.Shunzis())
}

// AllGroups 面子加雀头
func (a *Agari) AllGroups() []Tiles {
	return append(a.Mianzis(), a.pair)
}

// KanCount 杠的数量
func (a *Agari) KanCount() int {
	return len(a.ts.Minkans()) + len(a.ts.Ankans())
}

func (a *Agari) String() string {
	var b strings.Builder
	for _, m := range a.Mianzis() {
		b.WriteString(m.String() + " ")
	}
	b.WriteString(a.pair.String() + " ")
	b.WriteString("待ち: " + a.wait.String())
	return b.String()
}

func concat(groups ...[]Tiles) []Tiles {
	n := 0
	for _, g := range groups {
		n += len(g)
	}
	res := make([]Tiles, 0, n)
	for _, g := range groups {
		res = append(res, g...)
	}
	return res
}
