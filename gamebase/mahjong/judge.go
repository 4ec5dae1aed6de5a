package mahjong

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/topfreegames/pitaya/v3/pkg/logger"
)

// Judgment 判定结果：和了形（特殊形为 nil）、成立的役与合计
type Judgment struct {
	ts    *Tilesets
	agari *Agari
	forms []Form
	total Point
}

func newJudgment(ts *Tilesets, agari *Agari, forms []Form) *Judgment {
	forms = fixForms(forms)
	if len(forms) == 0 || onlyDora(forms) {
		return nil
	}
	j := &Judgment{ts: ts, agari: agari, forms: forms, total: sumPoints(forms)}
	if agari != nil {
		if j.total.Fu != 0 {
			panic(fmt.Sprintf("forms carry fu before calculation: %v", forms))
		}
		j.total.Fu = CalculateFu(agari, forms)
	}
	return j
}

func (j *Judgment) Tilesets() *Tilesets { return j.ts }
func (j *Judgment) Agari() *Agari       { return j.agari }
func (j *Judgment) Forms() []Form       { return j.forms }
func (j *Judgment) Total() Point        { return j.total }

func (j *Judgment) Value() int {
	return j.total.Value(j.ts.Context().IsParent(), j.ts.Context().rule())
}

func (j *Judgment) Limit() ELimit {
	return j.total.Limit(j.ts.Context().rule())
}

func (j *Judgment) Payments() Payment {
	return j.total.Payments(j.ts.Context().IsParent(), j.ts.Context().rule())
}

// Compare 先比子家得点，相同时役少者为大
func (j *Judgment) Compare(o *Judgment) int {
	rule := j.ts.Context().rule()
	return cmp.Or(
		cmp.Compare(j.total.Value(false, rule), o.total.Value(false, rule)),
		cmp.Compare(len(o.forms), len(j.forms)),
	)
}

func (j *Judgment) String() string {
	ctx := j.ts.Context()
	var b strings.Builder
	fmt.Fprintf(&b, "%s場 %s家 %s\n", ctx.Place, ctx.Player, ctx.PlayerName)
	fmt.Fprintf(&b, "%s\n", j.ts)
	if j.agari != nil {
		fmt.Fprintf(&b, "(%s)\n", j.agari)
	}
	for _, f := range j.forms {
		fmt.Fprintf(&b, "%s\n", f)
	}
	b.WriteString(j.total.FullString(ctx.IsParent(), ctx.rule()))
	return b.String()
}

// Judge 选出得点最高的判定，不能和了时返回 nil。
// 完全相同时取后列举者。
func Judge(ts *Tilesets) *Judgment {
	logger.Log.Debugf("judge start: %s", ts)
	var best *Judgment
	for _, j := range JudgeAll(ts) {
		if best == nil || j.Compare(best) >= 0 {
			best = j
		}
	}
	if best == nil {
		logger.Log.Debugf("judge done: no agari")
	} else {
		logger.Log.Debugf("judge done: %q", best)
	}
	return best
}

// JudgeAll 所有成立的判定：各和了形，然后七对子、国士无双、九莲宝灯
func JudgeAll(ts *Tilesets) []*Judgment {
	base := baseForms(ts)
	var res []*Judgment
	for _, a := range EnumerateAgari(ts) {
		logger.Log.Debugf("-> agari: %s", a)
		forms := append(append([]Form(nil), base...), agariForms(a)...)
		if j := newJudgment(ts, a, forms); j != nil {
			res = append(res, j)
		}
	}
	for _, special := range []func(*Tilesets) []Form{checkQiduizi, checkKokushimuso, checkJiulianbaodeng} {
		sf := special(ts)
		if len(sf) == 0 {
			continue
		}
		forms := append(append([]Form(nil), base...), sf...)
		if j := newJudgment(ts, nil, forms); j != nil {
			if sf[0].Kind == FormQiduizi {
				j.total.Fu = fuQiduizi
			}
			res = append(res, j)
		}
	}
	return res
}
