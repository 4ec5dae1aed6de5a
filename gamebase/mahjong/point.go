package mahjong

import (
	"fmt"
)

const yakumanFan = 13

// Point 番、符与役满倍数，可累加
type Point struct {
	Fan     int
	Fu      int
	Yakuman int
}

func (p Point) Add(o Point) Point {
	return Point{Fan: p.Fan + o.Fan, Fu: p.Fu + o.Fu, Yakuman: p.Yakuman + o.Yakuman}
}

func (p Point) IsYakuman() bool {
	return p.Yakuman > 0
}

// Limit 满贯以上的档位
func (p Point) Limit(rule *Rule) ELimit {
	switch {
	case p.Yakuman > 0 || p.Fan >= yakumanFan:
		return LimitYakuman
	case p.Fan >= 11:
		return LimitSanbaiman
	case p.Fan >= 8:
		return LimitBaiman
	case p.Fan >= 6:
		return LimitHaneman
	case p.Fan >= 5:
		return LimitMangan
	}
	base := p.rawBase()
	if base >= limitBase[LimitMangan] || (rule != nil && rule.Kiriage && base >= 1920) {
		return LimitMangan
	}
	return LimitNone
}

func (p Point) rawBase() int {
	return p.Fu << (p.Fan + 2)
}

// BasePoints 基本点
func (p Point) BasePoints(rule *Rule) int {
	if p.Yakuman > 0 {
		return limitBase[LimitYakuman] * p.Yakuman
	}
	if l := p.Limit(rule); l != LimitNone {
		return limitBase[l]
	}
	return p.rawBase()
}

// Value 荣和时的得点，亲家6倍子家4倍，百位进位
func (p Point) Value(isParent bool, rule *Rule) int {
	mul := 4
	if isParent {
		mul = 6
	}
	return ceilAt(p.BasePoints(rule)*mul, 100)
}

// Payment 各家支付
type Payment struct {
	Ron        int // 荣和时放铳者支付
	FromParent int // 子家自摸时亲家支付
	FromChild  int // 自摸时每个子家支付
}

func (p Point) Payments(isParent bool, rule *Rule) Payment {
	base := p.BasePoints(rule)
	pay := Payment{Ron: p.Value(isParent, rule)}
	if isParent {
		pay.FromChild = ceilAt(base*2, 100)
	} else {
		pay.FromParent = ceilAt(base*2, 100)
		pay.FromChild = ceilAt(base, 100)
	}
	return pay
}

// String 单个役的番数显示，役满按13番每倍
func (p Point) String() string {
	switch {
	case p.Yakuman > 0:
		return fmt.Sprintf("%d翻", yakumanFan*p.Yakuman)
	case p.Fu == 0:
		return fmt.Sprintf("%d翻", p.Fan)
	default:
		return fmt.Sprintf("%d翻%d符", p.Fan, p.Fu)
	}
}

// FullString 合计显示
func (p Point) FullString(isParent bool, rule *Rule) string {
	value := p.Value(isParent, rule)
	if p.Yakuman > 1 {
		return fmt.Sprintf("%d点 %d倍%s", value, p.Yakuman, LimitYakuman)
	}
	if p.Yakuman == 1 {
		return fmt.Sprintf("%d点 %s", value, LimitYakuman)
	}
	if l := p.Limit(rule); l != LimitNone {
		return fmt.Sprintf("%d翻 %d点 %s", p.Fan, value, l)
	}
	return fmt.Sprintf("%d翻%d符 %d点", p.Fan, p.Fu, value)
}
