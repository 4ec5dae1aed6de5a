package mahjong

// EnumerateWaits 列举和了牌对应的所有听牌形。
// 只看手牌中的雀头、暗顺、暗刻，副露与听牌形无关。
func EnumerateWaits(pair Tiles, shunzis, kezis []Tiles, last Tile) []EWaitKind {
	w := waitChecker{pair: pair, shunzis: shunzis, kezis: kezis, last: last}
	var res []EWaitKind
	lb, hasLB := w.liangmianBianzhang()
	if hasLB && lb == WaitLiangmian {
		res = append(res, WaitLiangmian)
	}
	if w.isShuangpeng() {
		res = append(res, WaitShuangpeng)
	}
	if hasLB && lb == WaitBianzhang {
		res = append(res, WaitBianzhang)
	}
	if w.isQianzhang() {
		res = append(res, WaitQianzhang)
	}
	if dy, ok := w.danqiYandan(); ok {
		res = append(res, dy)
	}
	return res
}

type waitChecker struct {
	pair    Tiles
	shunzis []Tiles
	kezis   []Tiles
	last    Tile
}

// 和了牌构成了某个刻子，则原本与雀头组成双碰
func (w *waitChecker) isShuangpeng() bool {
	for _, k := range w.kezis {
		if k.First().Same(w.last) {
			return true
		}
	}
	return false
}

func (w *waitChecker) isQianzhang() bool {
	for _, s := range w.shunzis {
		if s.Middle().Same(w.last) {
			return true
		}
	}
	return false
}

// 只检查第一个以和了牌为端点的顺子：123的3或789的7为边张，否则为两面
func (w *waitChecker) liangmianBianzhang() (EWaitKind, bool) {
	if !w.last.IsSuit() {
		return WaitEnd, false
	}
	for _, s := range w.shunzis {
		if !s.First().Same(w.last) && !s.Last().Same(w.last) {
			continue
		}
		rank := w.last.Rank()
		if s.Last().Rank() == 3 && rank == 3 {
			return WaitBianzhang, true
		}
		if s.First().Rank() == 7 && rank == 7 {
			return WaitBianzhang, true
		}
		return WaitLiangmian, true
	}
	return WaitEnd, false
}

// 和了牌为雀头时，若有顺子与之相邻则原本是四连张的延单
func (w *waitChecker) danqiYandan() (EWaitKind, bool) {
	if !w.pair.First().Same(w.last) {
		return WaitEnd, false
	}
	next, hasNext := w.last.Next()
	prev, hasPrev := w.last.Prev()
	for _, s := range w.shunzis {
		if hasNext && s.First().Same(next) {
			return WaitYandan, true
		}
		if hasPrev && s.Last().Same(prev) {
			return WaitYandan, true
		}
	}
	return WaitDanqi, true
}
