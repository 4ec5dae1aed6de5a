package mahjong

// 特殊形只在没有任何副露和暗杠时成立，直接检查14张牌

var kokushiTarget = MustParseTiles("1s9s1m9m1p9p東南西北白發中")

func jiulianTarget(c EColor) Tiles {
	points := []int{0, 0, 0, 1, 2, 3, 4, 5, 6, 7, 8, 8, 8}
	res := make(Tiles, len(points))
	for i, p := range points {
		res[i] = MakeTile(c, p)
	}
	return res
}

func isBareHand(ts *Tilesets) bool {
	return len(ts.Hand()) == TileCountHand
}

// checkQiduizi 七种不同的牌各两张
func checkQiduizi(ts *Tilesets) []Form {
	if !isBareHand(ts) {
		return nil
	}
	ranges := rangeSameTiles(ts.HandWithLast())
	if len(ranges) != 7 {
		return nil
	}
	for _, r := range ranges {
		if r.len() != 2 {
			return nil
		}
	}
	return one(FormQiduizi, true, ts.Context().rule())
}

// matchTarget 手牌加上候选中的某一张是否恰好等于目标牌型。
// 返回补上的那张是否就是和了牌（即听全部候选的纯正形）。
func matchTarget(ts *Tilesets, target Tiles, cands Tiles) (matched, pure bool) {
	tiles := ts.HandWithLast()
	for _, c := range cands {
		want := NewTiles(append(target.Clone(), c)...)
		if want.Equal(tiles) {
			return true, c.Same(ts.Last())
		}
	}
	return false, false
}

func checkKokushimuso(ts *Tilesets) []Form {
	if !isBareHand(ts) {
		return nil
	}
	matched, pure := matchTarget(ts, kokushiTarget, kokushiTarget)
	if !matched {
		return nil
	}
	if pure {
		return one(FormKokushimuso13, true, ts.Context().rule())
	}
	return one(FormKokushimuso, true, ts.Context().rule())
}

func checkJiulianbaodeng(ts *Tilesets) []Form {
	if !isBareHand(ts) {
		return nil
	}
	c := ts.Last().Color()
	if !c.IsSuit() {
		return nil
	}
	cands := make(Tiles, PointCountByColor[c])
	for i := range cands {
		cands[i] = MakeTile(c, i)
	}
	matched, pure := matchTarget(ts, jiulianTarget(c), cands)
	if !matched {
		return nil
	}
	if pure {
		return one(FormChunzhengJiulianbaodeng, true, ts.Context().rule())
	}
	return one(FormJiulianbaodeng, true, ts.Context().rule())
}
