package mahjong

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

var (
	ErrUnknownForm  = errors.New("unknown form")
	ErrNotLuckyForm = errors.New("form cannot be declared by caller")
)

// FormKind 役，定义顺序即同番数时的显示顺序
type FormKind int

const (
	FormLizhi               FormKind = iota // 立直
	FormIppatsu                             // 一发
	FormMenqianqingzimohu                   // 门前清自摸和
	FormFanpai                              // 役牌
	FormDuanyaojiu                          // 断幺九
	FormPinghe                              // 平和
	FormYibeikou                            // 一杯口
	FormHaidimoyue                          // 海底摸月
	FormHedilaoyu                           // 河底捞鱼
	FormLingshangkaihua                     // 岭上开花
	FormQianggang                           // 抢杠
	FormDoubleLizhi                         // 两立直
	FormSanshokuDojun                       // 三色同顺
	FormSanshokuDoko                        // 三色同刻
	FormSananke                             // 三暗刻
	FormIkkiTukan                           // 一气通贯
	FormQiduizi                             // 七对子
	FormDuiduihe                            // 对对和
	FormHunquandaiyaojiu                    // 混全带幺九
	FormSangangzi                           // 三杠子
	FormLiangbeigou                         // 二杯口
	FormChunquandaiyaojiu                   // 纯全带幺九
	FormHunyise                             // 混一色
	FormShousanyuan                         // 小三元
	FormHunlaotou                           // 混老头
	FormQingyise                            // 清一色
	FormSianke                              // 四暗刻
	FormDaisanyuan                          // 大三元
	FormKokushimuso                         // 国士无双
	FormLuyise                              // 绿一色
	FormZiyise                              // 字一色
	FormQinglaotou                          // 清老头
	FormSigangzi                            // 四杠子
	FormShousushi                           // 小四喜
	FormDaisushi                            // 大四喜
	FormJiulianbaodeng                      // 九莲宝灯
	FormDihe                                // 地和
	FormTianhe                              // 天和
	FormSiankeDanqi                         // 四暗刻单骑
	FormKokushimuso13                       // 国士无双十三面
	FormChunzhengJiulianbaodeng             // 纯正九莲宝灯
	FormDora                                // 宝牌
	FormEnd
)

var formNames = [FormEnd]string{
	"立直", "一発", "門前清自摸和", "役牌", "断么九", "平和", "一盃口", "海底摸月", "河底撈魚", "嶺上開花",
	"槍槓", "ダブル立直", "三色同順", "三色同刻", "三暗刻", "一気通貫", "七対子", "対々和", "混全帯幺九", "三槓子",
	"二盃口", "純全帯公九", "混一色", "小三元", "混老頭", "清一色", "四暗刻", "大三元", "国士無双", "緑一色",
	"字一色", "清老頭", "四槓子", "小四喜", "大四喜", "九蓮宝燈", "地和", "天和", "四暗刻単騎", "国士無双13面待ち",
	"純正九蓮宝燈", "ドラ",
}

// 门清/副露时的番数，副露为0表示必须门清
var formFans = map[FormKind][2]int{
	FormLizhi:             {1, 0},
	FormIppatsu:           {1, 0},
	FormMenqianqingzimohu: {1, 0},
	FormDuanyaojiu:        {1, 1},
	FormPinghe:            {1, 0},
	FormYibeikou:          {1, 0},
	FormHaidimoyue:        {1, 1},
	FormHedilaoyu:         {1, 1},
	FormLingshangkaihua:   {1, 1},
	FormQianggang:         {1, 1},
	FormDoubleLizhi:       {2, 0},
	FormSanshokuDojun:     {2, 1},
	FormSanshokuDoko:      {2, 2},
	FormSananke:           {2, 2},
	FormIkkiTukan:         {2, 1},
	FormQiduizi:           {2, 0},
	FormDuiduihe:          {2, 2},
	FormHunquandaiyaojiu:  {2, 1},
	FormSangangzi:         {2, 2},
	FormLiangbeigou:       {3, 0},
	FormChunquandaiyaojiu: {3, 2},
	FormHunyise:           {3, 2},
	FormShousanyuan:       {2, 2},
	FormHunlaotou:         {2, 2},
	FormQingyise:          {6, 5},
}

// LuckyFormKinds 只能由调用方声明的役
var LuckyFormKinds = []FormKind{
	FormHaidimoyue, FormHedilaoyu, FormLingshangkaihua, FormQianggang, FormDihe, FormTianhe,
}

// IsLucky 是否可由调用方声明
func (k FormKind) IsLucky() bool {
	return slices.Contains(LuckyFormKinds, k)
}

// ParseLuckyForm 解析调用方声明的役，其他役返回 ErrNotLuckyForm
func ParseLuckyForm(name string) (FormKind, error) {
	k, err := ParseFormKind(name)
	if err != nil {
		return k, err
	}
	if !k.IsLucky() {
		return FormEnd, fmt.Errorf("%w: %s", ErrNotLuckyForm, name)
	}
	return k, nil
}

func (k FormKind) String() string {
	if k < 0 || k >= FormEnd {
		return ""
	}
	return formNames[k]
}

// IsYakuman 役满
func (k FormKind) IsYakuman() bool {
	return k >= FormSianke && k < FormDora
}

func (k FormKind) isDoubleYakuman() bool {
	switch k {
	case FormSiankeDanqi, FormKokushimuso13, FormChunzhengJiulianbaodeng, FormDaisushi:
		return true
	}
	return false
}

func ParseFormKind(name string) (FormKind, error) {
	for k := FormKind(0); k < FormEnd; k++ {
		if formNames[k] == name {
			return k, nil
		}
	}
	return FormEnd, fmt.Errorf("%w: %q", ErrUnknownForm, name)
}

// Form 成立的役，番数在判定时已按门清与否确定
type Form struct {
	Kind  FormKind
	Point Point
}

// makeForm 按门清与否取番数，副露下不成立时返回 false
func makeForm(kind FormKind, menqian bool, rule *Rule) (Form, bool) {
	if kind.IsYakuman() {
		return Form{Kind: kind, Point: Point{Yakuman: rule.yakumanCount(kind)}}, true
	}
	fans, ok := formFans[kind]
	if !ok {
		return Form{}, false
	}
	fan := fans[0]
	if !menqian {
		fan = fans[1]
	}
	if fan == 0 {
		return Form{}, false
	}
	return Form{Kind: kind, Point: Point{Fan: fan}}, true
}

// countedForm 役牌、宝牌等番数可变的役
func countedForm(kind FormKind, n int) Form {
	return Form{Kind: kind, Point: Point{Fan: n}}
}

func (f Form) String() string {
	return f.Point.String() + " " + f.Kind.String()
}

// IsTrueYakuman 役满（累计役满不算）
func (f Form) IsTrueYakuman() bool {
	return f.Point.Yakuman > 0
}

func compareForms(a, b Form) int {
	return cmp.Or(
		cmp.Compare(a.Point.Yakuman, b.Point.Yakuman),
		cmp.Compare(a.Point.Fan, b.Point.Fan),
		cmp.Compare(a.Kind, b.Kind),
	)
}

// fixForms 从小到大排序；有役满时只保留役满
func fixForms(forms []Form) []Form {
	forms = slices.Clone(forms)
	slices.SortFunc(forms, compareForms)
	if slices.ContainsFunc(forms, Form.IsTrueYakuman) {
		forms = slices.DeleteFunc(forms, func(f Form) bool { return !f.IsTrueYakuman() })
	}
	return forms
}

// onlyDora 只有宝牌不能和了
func onlyDora(forms []Form) bool {
	for _, f := range forms {
		if f.Kind != FormDora {
			return false
		}
	}
	return true
}

func sumPoints(forms []Form) Point {
	var p Point
	for _, f := range forms {
		p = p.Add(f.Point)
	}
	return p
}
