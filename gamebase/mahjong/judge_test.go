package mahjong_test

import (
	"strconv"
	"testing"

	"github.com/kevin-chtw/tw_riichi/gamebase/mahjong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type JudgeCase struct {
	Player   mahjong.Direction
	Lizhi    mahjong.ELizhi
	Rule     *mahjong.Rule
	Notation string
	Want     string
}

func judge(t *testing.T, c JudgeCase) *mahjong.Judgment {
	t.Helper()
	ctx := mahjong.NewContext()
	ctx.Player = c.Player
	ctx.Lizhi = c.Lizhi
	if c.Rule != nil {
		ctx.Rule = c.Rule
	}
	ts, err := mahjong.ParseTilesets(ctx, c.Notation)
	require.NoError(t, err)
	return mahjong.Judge(ts)
}

func TestJudge(t *testing.T) {
	cases := []JudgeCase{
		{
			Notation: "1p1p1p2p2p2p3p3p3p4p4p4p5p ツモ5p",
			Want: "東場 東家 \n1p1p1p2p2p2p3p3p3p4p4p4p5p ツモ5p\n" +
				"(1p1p1p 2p2p2p 3p3p3p 4p4p4p 5p5p 待ち: 単騎)\n" +
				"13翻 四暗刻単騎\n48000点 役満",
		},
		{
			Notation: "1s9s1m9m1p9p東南西北白發中 ツモ中",
			Want:     "東場 東家 \n1s9s1m9m1p9p東南西北白發中 ツモ中\n13翻 国士無双13面待ち\n48000点 役満",
		},
		{
			Notation: "1p1p2p2p3p3p4p4p5p5p6p6p7p ツモ7p",
			Want: "東場 東家 \n1p1p2p2p3p3p4p4p5p5p6p6p7p ツモ7p\n" +
				"(1p2p3p 1p2p3p 5p6p7p 5p6p7p 4p4p 待ち: 両面)\n" +
				"1翻 門前清自摸和\n1翻 平和\n3翻 二盃口\n6翻 清一色\n11翻 36000点 三倍満",
		},
		{
			Notation: "1p1p1p2p2p2p3p3p3p5p ツモ5P ポン4p4p4p",
			Want: "東場 東家 \n1p1p1p2p2p2p3p3p3p5p ポン4p4p4p ツモ5P\n" +
				"(4p4p4p 1p1p1p 2p2p2p 3p3p3p 5p5P 待ち: 単騎)\n" +
				"1翻 ドラ\n2翻 三暗刻\n2翻 対々和\n5翻 清一色\n10翻 24000点 倍満",
		},
		{
			Player:   mahjong.West,
			Notation: "5s6s7s4m5m6m4p4p4p5p6p西西 ロン西",
			Want: "東場 西家 \n5s6s7s4m5m6m4p4p4p5p6p西西 ロン西\n" +
				"(西西西 5s6s7s 4m5m6m 4p5p6p 4p4p 待ち: シャンポン)\n" +
				"1翻 役牌\n1翻40符 1300点",
		},
		{
			Notation: "1s2s3s4s5s6s6s7s8s8s9s西西 ロン7s ドラ1s中6s2p",
			Want: "東場 東家 \n1s2s3s4s5s6s6s7s8s8s9s西西 ロン7s\n" +
				"(6s7s8s 1s2s3s 4s5s6s 7s8s9s 西西 待ち: カンチャン)\n" +
				"2翻 一気通貫\n3翻 混一色\n3翻 ドラ\n8翻 24000点 倍満",
		},
		{
			Player:   mahjong.West,
			Lizhi:    mahjong.LizhiIppatsu,
			Notation: "5s6s7s4m5m6m4p4p4p5p6p西西 ロン西",
			Want: "東場 西家 \n5s6s7s4m5m6m4p4p4p5p6p西西 ロン西\n" +
				"(西西西 5s6s7s 4m5m6m 4p5p6p 4p4p 待ち: シャンポン)\n" +
				"1翻 立直\n1翻 一発\n1翻 役牌\n3翻40符 5200点",
		},
		{
			Notation: "1s1s9s3m3m5p5p7p7p東東白白 ツモ9s",
			Want:     "東場 東家 \n1s1s9s3m3m5p5p7p7p東東白白 ツモ9s\n1翻 門前清自摸和\n2翻 七対子\n3翻25符 4800点",
		},
		{
			Player:   mahjong.South,
			Notation: "2s3s4s5s6s7s3m4m5p5p ロン2m チー6p7p8p",
			Want: "東場 南家 \n2s3s4s5s6s7s3m4m5p5p チー6p7p8p ロン2m\n" +
				"(6p7p8p 2m3m4m 2s3s4s 5s6s7s 5p5p 待ち: 両面)\n" +
				"1翻 断么九\n1翻30符 1000点",
		},
	}
	for i, c := range cases {
		t.Run("case"+strconv.Itoa(i), func(t *testing.T) {
			j := judge(t, c)
			require.NotNil(t, j)
			assert.Equal(t, c.Want, j.String())
		})
	}
}

func TestJudgeNoAgari(t *testing.T) {
	cases := []JudgeCase{
		// 役なし
		{Notation: "2s3s4s6s7s8s1m1m1m5p6p9p9p ロン7p"},
		// ドラのみ
		{Notation: "2s3s4s6s7s8s1m1m1m5p6p9p9p ロン7p ドラ1s"},
		// 形になっていない
		{Notation: "1s3s5s7s9s1m3m5m7m9m1p3p5p ロン7p"},
		// 食断なし
		{
			Player:   mahjong.South,
			Rule:     &mahjong.Rule{OpenTanyao: false},
			Notation: "2s3s4s5s6s7s3m4m5p5p ロン2m チー6p7p8p",
		},
	}
	for i, c := range cases {
		t.Run("case"+strconv.Itoa(i), func(t *testing.T) {
			assert.Nil(t, judge(t, c))
		})
	}
}

func TestJudgeDeterministic(t *testing.T) {
	c := JudgeCase{Notation: "1s2s3s4s5s6s6s7s8s8s9s西西 ロン7s ドラ1s中6s2p"}
	first := judge(t, c)
	require.NotNil(t, first)
	for range 5 {
		assert.Equal(t, first.String(), judge(t, c).String())
	}
}

func TestJudgeAllKeepsEveryCandidate(t *testing.T) {
	ts, err := mahjong.ParseTilesets(nil, "1s2s3s4s5s6s6s7s8s8s9s西西 ロン7s")
	require.NoError(t, err)
	all := mahjong.JudgeAll(ts)
	require.NotEmpty(t, all)

	best := mahjong.Judge(ts)
	for _, j := range all {
		assert.LessOrEqual(t, j.Value(), best.Value())
	}
}

func TestJudgeDoubleYakuman(t *testing.T) {
	c := JudgeCase{
		Rule:     &mahjong.Rule{OpenTanyao: true, DoubleYakuman: true},
		Notation: "1s9s1m9m1p9p東南西北白發中 ツモ中",
	}
	j := judge(t, c)
	require.NotNil(t, j)
	assert.Equal(t, 2, j.Total().Yakuman)
	assert.Equal(t, 96000, j.Value())
	assert.Equal(t, "東場 東家 \n1s9s1m9m1p9p東南西北白發中 ツモ中\n26翻 国士無双13面待ち\n96000点 2倍役満", j.String())
}

func TestJudgePayments(t *testing.T) {
	j := judge(t, JudgeCase{Player: mahjong.South, Notation: "1p1p2p2p3p3p4p4p5p5p6p6p7p ツモ7p"})
	require.NotNil(t, j)
	assert.Equal(t, mahjong.LimitSanbaiman, j.Limit())
	assert.Equal(t, mahjong.Payment{Ron: 24000, FromParent: 12000, FromChild: 6000}, j.Payments())
}
