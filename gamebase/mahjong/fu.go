package mahjong

import (
	"slices"

	"github.com/topfreegames/pitaya/v3/pkg/logger"
)

const (
	fuBase    = 20 // 副底
	fuQiduizi = 25
)

// 刻子的符：中张/幺九 × 明刻、暗刻、明杠、暗杠
var (
	fuMingke  = [2]int{2, 4}
	fuAnke    = [2]int{4, 8}
	fuMinkan  = [2]int{8, 16}
	fuAnkan   = [2]int{16, 32}
	fuPinghe  = 20
	fuRonMenq = 10
	fuZimo    = 2
	fuWait    = 2
)

// CalculateFu 计算一种和了形的符
func CalculateFu(a *Agari, forms []Form) int {
	if a.IsZimo() && slices.ContainsFunc(forms, func(f Form) bool { return f.Kind == FormPinghe }) {
		logger.Log.Debugf("pinghe zimo, fixed %d fu", fuPinghe)
		return fuPinghe
	}

	agariFu := calcAgariFu(a)
	keziFu := calcKeziFu(a)
	quetouFu := a.Pair().First().ValueCount(a.Context())
	waitFu := calcWaitFu(a)
	sum := fuBase + agariFu + keziFu + quetouFu + waitFu
	fu := ceilAt(sum, 10)
	logger.Log.Debugf("fu: base %d agari %d kezi %d quetou %d wait %d = %d -> %d",
		fuBase, agariFu, keziFu, quetouFu, waitFu, sum, fu)

	// 副露平和形荣和提升到30符
	if !a.IsZimo() && fu == 20 {
		return 30
	}
	return fu
}

func calcAgariFu(a *Agari) int {
	switch {
	case a.IsZimo():
		return fuZimo
	case a.IsMenqian():
		return fuRonMenq
	}
	return 0
}

func keziFu(groups []Tiles, table [2]int) int {
	n := 0
	for _, g := range groups {
		if g.First().IsZhongzhang() {
			n += table[0]
		} else {
			n += table[1]
		}
	}
	return n
}

func calcKeziFu(a *Agari) int {
	return keziFu(concat(a.Pons(), a.RonMingkes()), fuMingke) +
		keziFu(a.KezisInHand(), fuAnke) +
		keziFu(a.Minkans(), fuMinkan) +
		keziFu(a.Ankans(), fuAnkan)
}

func calcWaitFu(a *Agari) int {
	switch a.Wait() {
	case WaitLiangmian, WaitShuangpeng:
		return 0
	}
	return fuWait
}
