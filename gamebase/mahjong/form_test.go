package mahjong_test

import (
	"testing"

	"github.com/kevin-chtw/tw_riichi/gamebase/mahjong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func formKinds(j *mahjong.Judgment) []mahjong.FormKind {
	var res []mahjong.FormKind
	for _, f := range j.Forms() {
		res = append(res, f.Kind)
	}
	return res
}

func TestJudgeForms(t *testing.T) {
	cases := []struct {
		notation string
		want     []mahjong.FormKind
	}{
		{"1s2s3s1m2m3m1p2p3p5p5p7s8s ロン9s", []mahjong.FormKind{mahjong.FormSanshokuDojun, mahjong.FormPinghe}},
		{"1m2m3m4m5m6m7m8m9m2p2p5s6s ロン7s", []mahjong.FormKind{mahjong.FormIkkiTukan, mahjong.FormPinghe}},
		{"1s1s2s2s3s3s5m6m7m9p9p東東 ロン東", []mahjong.FormKind{mahjong.FormYibeikou, mahjong.FormFanpai}},
		{"2s2s2s2m2m2m2p2p2p5s6s7s9m ロン9m", []mahjong.FormKind{mahjong.FormSanshokuDoko, mahjong.FormSananke}},
		{"1s2s3s7m8m9m1p1p1p東東9s9s ロン東", []mahjong.FormKind{mahjong.FormHunquandaiyaojiu, mahjong.FormFanpai}},
		{"1s2s3s7m8m9m1p1p1p9p9p9s9s ロン9p", []mahjong.FormKind{mahjong.FormChunquandaiyaojiu}},
		{"白白白發發發中中1s2s3s4s4s ロン4s", []mahjong.FormKind{mahjong.FormShousanyuan, mahjong.FormHunyise}},
		{"5p5p5p6s ロン6s 明槓1s1s1s1s 明槓2m2m2m2m 暗槓3p3p3p3p", []mahjong.FormKind{mahjong.FormSangangzi, mahjong.FormDuiduihe}},
		{"1s1s1s9s9s9s1m1m1m東 ロン東 ポン9m9m9m", []mahjong.FormKind{mahjong.FormHunlaotou, mahjong.FormDuiduihe}},
		{"2p3p4p5p6p7p2m3m4m3s4s8p8p ロン5s", []mahjong.FormKind{mahjong.FormDuanyaojiu, mahjong.FormPinghe}},
	}
	for _, c := range cases {
		t.Run(c.notation, func(t *testing.T) {
			ts, err := mahjong.ParseTilesets(nil, c.notation)
			require.NoError(t, err)
			j := mahjong.Judge(ts)
			require.NotNil(t, j)
			assert.Subset(t, formKinds(j), c.want)
		})
	}
}

func TestJudgeYakuman(t *testing.T) {
	cases := []struct {
		notation string
		want     mahjong.FormKind
	}{
		{"白白白發發發中中1s1s2s3s4s ロン中", mahjong.FormDaisanyuan},
		{"東東東南南南西西西北北1s2s ロン3s", mahjong.FormShousushi},
		{"東東東南南南西西西北北北1s ロン1s", mahjong.FormDaisushi},
		{"2s2s3s3s4s4s6s6s6s8s8s發發 ロン發", mahjong.FormLuyise},
		{"東東東南南南西西西白白發發 ロン發", mahjong.FormZiyise},
		{"1s1s1s9s9s9s1m1m1m9m9m9p9p ロン9p", mahjong.FormQinglaotou},
		{"1m1m1m2m3m4m5m6m7m8m9m9m9m ロン5m", mahjong.FormChunzhengJiulianbaodeng},
		{"1m1m1m2m3m4m5m5m6m7m8m9m9m ロン9m", mahjong.FormJiulianbaodeng},
		{"1s9s1m9m1p9p東南西北白發發 ロン中", mahjong.FormKokushimuso},
		{"1s1s1s2s2s2s東東東白白中中 ツモ白", mahjong.FormSianke},
		{"5s ツモ5s 明槓1s1s1s1s 明槓2m2m2m2m 暗槓3p3p3p3p 暗槓白白白白", mahjong.FormSigangzi},
	}
	for _, c := range cases {
		t.Run(c.notation, func(t *testing.T) {
			ts, err := mahjong.ParseTilesets(nil, c.notation)
			require.NoError(t, err)
			j := mahjong.Judge(ts)
			require.NotNil(t, j)
			assert.Contains(t, formKinds(j), c.want)
			for _, f := range j.Forms() {
				assert.True(t, f.Kind.IsYakuman(), "%s", f)
			}
			assert.Equal(t, mahjong.LimitYakuman, j.Limit())
		})
	}
}

func TestJudgeLuckyForms(t *testing.T) {
	ctx := mahjong.NewContext()
	ctx.LuckyForms = []mahjong.FormKind{mahjong.FormTianhe}
	ts, err := mahjong.ParseTilesets(ctx, "2s3s4s6s7s8s1m1m1m5p6p9p9p ツモ7p")
	require.NoError(t, err)
	j := mahjong.Judge(ts)
	require.NotNil(t, j)
	assert.Equal(t, []mahjong.FormKind{mahjong.FormTianhe}, formKinds(j))
	assert.Equal(t, 48000, j.Value())
}

func TestJudgeIgnoresUndeclarableForms(t *testing.T) {
	ctx := mahjong.NewContext()
	ctx.Player = mahjong.South
	ctx.LuckyForms = []mahjong.FormKind{mahjong.FormQingyise, mahjong.FormKokushimuso, mahjong.FormLizhi}
	ts, err := mahjong.ParseTilesets(ctx, "2s3s4s6s7s8s1m1m1m5p6p9p9p ロン7p")
	require.NoError(t, err)
	assert.Nil(t, mahjong.Judge(ts))

	ctx.LuckyForms = append(ctx.LuckyForms, mahjong.FormHedilaoyu)
	j := mahjong.Judge(ts)
	require.NotNil(t, j)
	assert.Equal(t, []mahjong.FormKind{mahjong.FormHedilaoyu}, formKinds(j))
}

func TestJudgeLingshangNeedsKan(t *testing.T) {
	ctx := mahjong.NewContext()
	ctx.Player = mahjong.South
	ctx.LuckyForms = []mahjong.FormKind{mahjong.FormLingshangkaihua}
	ts, err := mahjong.ParseTilesets(ctx, "2s3s4s6s7s8s1m1m1m5p6p9p9p ロン7p")
	require.NoError(t, err)
	assert.Nil(t, mahjong.Judge(ts))

	ts, err = mahjong.ParseTilesets(ctx, "2s3s4s6s7s8s5p6p9p9p ツモ7p 暗槓1m1m1m1m")
	require.NoError(t, err)
	j := mahjong.Judge(ts)
	require.NotNil(t, j)
	assert.Equal(t, []mahjong.FormKind{mahjong.FormMenqianqingzimohu, mahjong.FormLingshangkaihua}, formKinds(j))
}

func TestParseLuckyForm(t *testing.T) {
	for _, k := range mahjong.LuckyFormKinds {
		got, err := mahjong.ParseLuckyForm(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
		assert.True(t, k.IsLucky())
	}
	_, err := mahjong.ParseLuckyForm("清一色")
	assert.ErrorIs(t, err, mahjong.ErrNotLuckyForm)
	_, err = mahjong.ParseLuckyForm("焼き鳥")
	assert.ErrorIs(t, err, mahjong.ErrUnknownForm)
	assert.False(t, mahjong.FormDora.IsLucky())
}

func TestParseFormKind(t *testing.T) {
	for k := mahjong.FormKind(0); k < mahjong.FormEnd; k++ {
		got, err := mahjong.ParseFormKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := mahjong.ParseFormKind("焼き鳥")
	assert.ErrorIs(t, err, mahjong.ErrUnknownForm)
}

func TestFormCheckerNames(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range mahjong.BaseFormCheckers {
		assert.False(t, seen[c.Name()], c.Name())
		seen[c.Name()] = true
	}
	for _, c := range mahjong.AgariFormCheckers {
		assert.False(t, seen[c.Name()], c.Name())
		seen[c.Name()] = true
	}
}
