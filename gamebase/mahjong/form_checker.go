package mahjong

import (
	"fmt"
	"slices"

	"github.com/topfreegames/pitaya/v3/pkg/logger"
)

// FormChecker 一类役的判定，按注册顺序依次执行
type FormChecker[T any] interface {
	Name() string
	Check(target T) []Form
}

type formCheckerFunc[T any] struct {
	name  string
	check func(T) []Form
}

func (f formCheckerFunc[T]) Name() string { return f.name }

func (f formCheckerFunc[T]) Check(target T) []Form { return f.check(target) }

// BaseFormCheckers 与拆分无关、对整副牌只判定一次的役
var BaseFormCheckers = []FormChecker[*Tilesets]{
	formCheckerFunc[*Tilesets]{"lucky", checkLucky},
	formCheckerFunc[*Tilesets]{"lizhi", checkLizhi},
	formCheckerFunc[*Tilesets]{"menqianqingzimohu", checkMenqianqingzimohu},
	formCheckerFunc[*Tilesets]{"duanyaojiu", checkDuanyaojiu},
	formCheckerFunc[*Tilesets]{"ziyise", checkZiyise},
	formCheckerFunc[*Tilesets]{"hunyise_qingyise", checkHunyiseQingyise},
	formCheckerFunc[*Tilesets]{"hunlaotou_qinglaotou", checkHunlaotouQinglaotou},
	formCheckerFunc[*Tilesets]{"luyise", checkLuyise},
	formCheckerFunc[*Tilesets]{"dora", checkDora},
}

// AgariFormCheckers 依赖具体拆分的役
var AgariFormCheckers = []FormChecker[*Agari]{
	formCheckerFunc[*Agari]{"fanpai", checkFanpai},
	formCheckerFunc[*Agari]{"pinghe", checkPinghe},
	formCheckerFunc[*Agari]{"yibeikou_liangbeigou", checkYibeikouLiangbeigou},
	formCheckerFunc[*Agari]{"sanshoku_dojun", checkSanshokuDojun},
	formCheckerFunc[*Agari]{"sanshoku_doko", checkSanshokuDoko},
	formCheckerFunc[*Agari]{"sananke_sianke", checkSanankeSianke},
	formCheckerFunc[*Agari]{"ikki_tukan", checkIkkiTukan},
	formCheckerFunc[*Agari]{"duiduihe", checkDuiduihe},
	formCheckerFunc[*Agari]{"quandaiyaojiu", checkQuandaiyaojiu},
	formCheckerFunc[*Agari]{"sangangzi_sigangzi", checkSangangziSigangzi},
	formCheckerFunc[*Agari]{"shousanyuan", checkShousanyuan},
	formCheckerFunc[*Agari]{"daisanyuan", checkDaisanyuan},
	formCheckerFunc[*Agari]{"shousushi_daisushi", checkShousushiDaisushi},
}

func baseForms(ts *Tilesets) []Form {
	var forms []Form
	for _, c := range BaseFormCheckers {
		forms = append(forms, c.Check(ts)...)
	}
	return forms
}

func agariForms(a *Agari) []Form {
	var forms []Form
	for _, c := range AgariFormCheckers {
		forms = append(forms, c.Check(a)...)
	}
	return forms
}

func one(kind FormKind, menqian bool, rule *Rule) []Form {
	if f, ok := makeForm(kind, menqian, rule); ok {
		return []Form{f}
	}
	return nil
}

func checkLucky(ts *Tilesets) []Form {
	var forms []Form
	for _, k := range ts.Context().LuckyForms {
		if !k.IsLucky() {
			logger.Log.Warnf("ignore undeclarable form %s", k)
			continue
		}
		if k == FormLingshangkaihua && !ts.HasKans() {
			logger.Log.Warnf("ignore %s without kan", k)
			continue
		}
		forms = append(forms, one(k, true, ts.Context().rule())...)
	}
	return forms
}

func checkLizhi(ts *Tilesets) []Form {
	rule := ts.Context().rule()
	switch ts.Context().Lizhi {
	case LizhiNormal:
		return one(FormLizhi, true, rule)
	case LizhiIppatsu:
		return append(one(FormLizhi, true, rule), one(FormIppatsu, true, rule)...)
	case LizhiDouble:
		return one(FormDoubleLizhi, true, rule)
	case LizhiDoubleIppatsu:
		return append(one(FormDoubleLizhi, true, rule), one(FormIppatsu, true, rule)...)
	}
	return nil
}

func checkMenqianqingzimohu(ts *Tilesets) []Form {
	if ts.IsMenqian() && ts.IsZimo() {
		return one(FormMenqianqingzimohu, true, ts.Context().rule())
	}
	return nil
}

func checkDuanyaojiu(ts *Tilesets) []Form {
	rule := ts.Context().rule()
	if !ts.IsMenqian() && !rule.OpenTanyao {
		return nil
	}
	if ts.TilesWithoutDoras().All(Tile.IsZhongzhang) {
		return one(FormDuanyaojiu, ts.IsMenqian(), rule)
	}
	return nil
}

func checkZiyise(ts *Tilesets) []Form {
	if ts.TilesWithoutDoras().All(Tile.IsHonor) {
		return one(FormZiyise, true, ts.Context().rule())
	}
	return nil
}

func checkHunyiseQingyise(ts *Tilesets) []Form {
	tiles := ts.TilesWithoutDoras()
	color := ColorUndefined
	hasHonor := false
	for _, t := range tiles {
		if t.IsHonor() {
			hasHonor = true
			continue
		}
		if color != ColorUndefined && color != t.Color() {
			return nil
		}
		color = t.Color()
	}
	if color == ColorUndefined {
		return nil
	}
	kind := FormQingyise
	if hasHonor {
		kind = FormHunyise
	}
	return one(kind, ts.IsMenqian(), ts.Context().rule())
}

// 全为幺九牌：有字牌为混老头，无字牌为清老头，全字牌交给字一色
func checkHunlaotouQinglaotou(ts *Tilesets) []Form {
	tiles := ts.TilesWithoutDoras()
	if !tiles.All(Tile.IsYaojiu) {
		return nil
	}
	rule := ts.Context().rule()
	switch {
	case !tiles.Any(Tile.IsTerminal):
		return nil
	case tiles.Any(Tile.IsHonor):
		return one(FormHunlaotou, ts.IsMenqian(), rule)
	default:
		return one(FormQinglaotou, true, rule)
	}
}

func checkLuyise(ts *Tilesets) []Form {
	if ts.TilesWithoutDoras().All(Tile.IsGreen) {
		return one(FormLuyise, true, ts.Context().rule())
	}
	return nil
}

func checkDora(ts *Tilesets) []Form {
	if n := ts.DoraCount(); n > 0 {
		return []Form{countedForm(FormDora, n)}
	}
	return nil
}

func checkFanpai(a *Agari) []Form {
	n := 0
	for _, k := range a.Kezis() {
		n += k.First().ValueCount(a.Context())
	}
	if n > 0 {
		return []Form{countedForm(FormFanpai, n)}
	}
	return nil
}

// 门清、四顺子、雀头非役牌、两面听
func checkPinghe(a *Agari) []Form {
	if !a.IsMenqian() || len(a.Kezis()) > 0 || a.Wait() != WaitLiangmian {
		return nil
	}
	if a.Pair().First().ValueCount(a.Context()) > 0 {
		return nil
	}
	return one(FormPinghe, true, a.Context().rule())
}

func checkYibeikouLiangbeigou(a *Agari) []Form {
	if !a.IsMenqian() {
		return nil
	}
	shunzis := slices.Clone(a.Shunzis())
	slices.SortFunc(shunzis, func(x, y Tiles) int {
		return int(x.First().Normal()) - int(y.First().Normal())
	})
	n := 0
	for i := 0; i+1 < len(shunzis); i++ {
		if shunzis[i].Equal(shunzis[i+1]) {
			n++
			i++
		}
	}
	rule := a.Context().rule()
	switch n {
	case 0:
		return nil
	case 1:
		return one(FormYibeikou, true, rule)
	case 2:
		return one(FormLiangbeigou, true, rule)
	}
	panic(fmt.Sprintf("%d identical run pairs", n))
}

// threeColors 某个点数在三种数牌中都出现
func threeColors(groups []Tiles) bool {
	seen := make(map[int]map[EColor]struct{})
	for _, g := range groups {
		first := g.First()
		if !first.IsSuit() {
			continue
		}
		if seen[first.Point()] == nil {
			seen[first.Point()] = make(map[EColor]struct{})
		}
		seen[first.Point()][first.Color()] = struct{}{}
	}
	for _, colors := range seen {
		if len(colors) == 3 {
			return true
		}
	}
	return false
}

func checkSanshokuDojun(a *Agari) []Form {
	if threeColors(a.Shunzis()) {
		return one(FormSanshokuDojun, a.IsMenqian(), a.Context().rule())
	}
	return nil
}

func checkSanshokuDoko(a *Agari) []Form {
	if threeColors(a.Kezis()) {
		return one(FormSanshokuDoko, a.IsMenqian(), a.Context().rule())
	}
	return nil
}

func checkSanankeSianke(a *Agari) []Form {
	rule := a.Context().rule()
	switch len(a.Ankes()) {
	case 3:
		return one(FormSananke, a.IsMenqian(), rule)
	case 4:
		if a.Wait() == WaitDanqi {
			return one(FormSiankeDanqi, true, rule)
		}
		return one(FormSianke, true, rule)
	}
	return nil
}

func checkIkkiTukan(a *Agari) []Form {
	starts := make(map[EColor]int)
	for _, s := range a.Shunzis() {
		if r := s.First().Rank(); r == 1 || r == 4 || r == 7 {
			starts[s.First().Color()] |= 1 << (r / 3)
		}
	}
	for _, mask := range starts {
		if mask == 0b111 {
			return one(FormIkkiTukan, a.IsMenqian(), a.Context().rule())
		}
	}
	return nil
}

func checkDuiduihe(a *Agari) []Form {
	if len(a.Kezis()) == 4 {
		return one(FormDuiduihe, a.IsMenqian(), a.Context().rule())
	}
	return nil
}

// 每组都含幺九牌且至少有一个顺子；有字牌为混全带，无字牌为纯全带
func checkQuandaiyaojiu(a *Agari) []Form {
	if len(a.Shunzis()) == 0 {
		return nil
	}
	hasHonor := false
	for _, g := range a.AllGroups() {
		if !g.Any(Tile.IsYaojiu) {
			return nil
		}
		hasHonor = hasHonor || g.Any(Tile.IsHonor)
	}
	kind := FormChunquandaiyaojiu
	if hasHonor {
		kind = FormHunquandaiyaojiu
	}
	return one(kind, a.IsMenqian(), a.Context().rule())
}

func checkSangangziSigangzi(a *Agari) []Form {
	rule := a.Context().rule()
	switch n := a.KanCount(); {
	case n == 3:
		return one(FormSangangzi, a.IsMenqian(), rule)
	case n == 4:
		return one(FormSigangzi, true, rule)
	case n > 4:
		panic(fmt.Sprintf("%d kans", n))
	}
	return nil
}

func countKezis(a *Agari, pred func(Tile) bool) int {
	n := 0
	for _, k := range a.Kezis() {
		if pred(k.First()) {
			n++
		}
	}
	return n
}

func checkShousanyuan(a *Agari) []Form {
	if a.Pair().First().IsDragon() && countKezis(a, Tile.IsDragon) == 2 {
		return one(FormShousanyuan, a.IsMenqian(), a.Context().rule())
	}
	return nil
}

func checkDaisanyuan(a *Agari) []Form {
	if countKezis(a, Tile.IsDragon) == 3 {
		return one(FormDaisanyuan, true, a.Context().rule())
	}
	return nil
}

func checkShousushiDaisushi(a *Agari) []Form {
	rule := a.Context().rule()
	switch n := countKezis(a, Tile.IsWind); {
	case n == 4:
		return one(FormDaisushi, true, rule)
	case n == 3 && a.Pair().First().IsWind():
		return one(FormShousushi, true, rule)
	}
	return nil
}
