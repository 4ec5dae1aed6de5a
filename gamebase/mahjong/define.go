package mahjong

const (
	TileCountAgari = 14 // 和了时的张数，杠按3张计
	TileCountHand  = 13
	SameTileMax    = 4
	RedTileMax     = 1 // 每种数牌的赤牌上限
)

type EColor int

// 排序顺序即定义顺序：索子 < 萬子 < 筒子 < 风牌 < 三元牌
const (
	ColorUndefined EColor = -1
	ColorBamboo    EColor = iota - 1 // 索子 s
	ColorCharacter                   // 萬子 m
	ColorDot                         // 筒子 p
	ColorWind                        // 风牌
	ColorDragon                      // 三元牌
	ColorEnd
	ColorBegin = ColorBamboo
)

var PointCountByColor = [ColorEnd]int{9, 9, 9, 4, 3}

func (c EColor) IsSuit() bool {
	return c >= ColorBamboo && c <= ColorDot
}

func (c EColor) Letter() byte {
	switch c {
	case ColorBamboo:
		return 's'
	case ColorCharacter:
		return 'm'
	case ColorDot:
		return 'p'
	default:
		return '?'
	}
}

func (c EColor) String() string {
	switch c {
	case ColorBamboo:
		return "索子"
	case ColorCharacter:
		return "萬子"
	case ColorDot:
		return "筒子"
	case ColorWind:
		return "風牌"
	case ColorDragon:
		return "三元牌"
	default:
		return "?"
	}
}

// EWaitKind 听牌形
type EWaitKind int

const (
	WaitLiangmian  EWaitKind = iota // 两面
	WaitShuangpeng                  // 双碰
	WaitBianzhang                   // 边张
	WaitQianzhang                   // 嵌张
	WaitDanqi                       // 单骑
	WaitYandan                      // 延单
	WaitEnd
)

var waitNames = [WaitEnd]string{"両面", "シャンポン", "ペンチャン", "カンチャン", "単騎", "ノベタン"}

func (w EWaitKind) String() string {
	if w < 0 || w >= WaitEnd {
		return ""
	}
	return waitNames[w]
}

// ELizhi 立直状态
type ELizhi int

const (
	LizhiNone ELizhi = iota
	LizhiNormal
	LizhiIppatsu
	LizhiDouble
	LizhiDoubleIppatsu
)

var lizhiKeys = map[string]ELizhi{
	"":               LizhiNone,
	"none":           LizhiNone,
	"lizhi":          LizhiNormal,
	"ippatsu":        LizhiIppatsu,
	"double":         LizhiDouble,
	"double_ippatsu": LizhiDoubleIppatsu,
}

// ELimit 满贯以上的档位
type ELimit int

const (
	LimitNone ELimit = iota
	LimitMangan
	LimitHaneman
	LimitBaiman
	LimitSanbaiman
	LimitYakuman
)

var limitNames = []string{"", "満貫", "跳満", "倍満", "三倍満", "役満"}
var limitBase = []int{0, 2000, 3000, 4000, 6000, 8000}

func (l ELimit) String() string {
	return limitNames[l]
}

func ceilAt(x, at int) int {
	return (x + at - 1) / at * at
}
