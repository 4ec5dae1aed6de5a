package mahjong

import "fmt"

// ERongKind 荣和牌所在的组被改判为何种副露
type ERongKind int

const (
	RongNone     ERongKind = iota
	RongMingshun           // 明顺
	RongMingke             // 明刻
)

type rongSource int

const (
	sourceNone rongSource = iota
	sourceShunzi
	sourceKezi
	sourceAnkan
)

// Rongming 荣和时被改判为明的那一组，只记录来源与下标，不修改原切片
type Rongming struct {
	Kind   ERongKind
	Tiles  Tiles
	source rongSource
	index  int
}

func (r Rongming) Mingke() (Tiles, bool) {
	return r.Tiles, r.Kind == RongMingke
}

func (r Rongming) Mingshun() (Tiles, bool) {
	return r.Tiles, r.Kind == RongMingshun
}

// reconcileRon 荣和时决定和了牌完成了哪一组。
// 顺子没有明暗之分，所以优先视为完成顺子；其次是暗刻、暗杠；都没有则必为雀头。
func reconcileRon(ts *Tilesets, pair Tiles, kezis, shunzis []Tiles) Rongming {
	if ts.IsZimo() {
		return Rongming{}
	}
	last := ts.Last()
	for i, s := range shunzis {
		if s.Contains(last) {
			return Rongming{Kind: RongMingshun, Tiles: s, source: sourceShunzi, index: i}
		}
	}
	for i, k := range kezis {
		if k.Contains(last) {
			return Rongming{Kind: RongMingke, Tiles: k, source: sourceKezi, index: i}
		}
	}
	for i, k := range ts.Ankans() {
		if k.Contains(last) {
			return Rongming{Kind: RongMingke, Tiles: k, source: sourceAnkan, index: i}
		}
	}
	if !pair.First().Same(last) {
		panic(fmt.Sprintf("ron tile %s completes no run, triplet, quad or pair", last))
	}
	return Rongming{}
}

// without 返回去掉第 i 个元素后的新切片
func without(groups []Tiles, i int) []Tiles {
	res := make([]Tiles, 0, len(groups))
	res = append(res, groups[:i]...)
	return append(res, groups[i+1:]...)
}

func (r Rongming) apply(src rongSource, groups []Tiles) []Tiles {
	if r.source != src {
		return groups
	}
	return without(groups, r.index)
}
