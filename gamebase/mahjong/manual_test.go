package mahjong_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kevin-chtw/tw_riichi/gamebase/mahjong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManualCases(t *testing.T) {
	m, err := mahjong.LoadManual(filepath.Join("testdata", "judge_cases.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, m.Hands)
	assert.Equal(t, &mahjong.Rule{OpenTanyao: true}, m.Rule)

	for _, h := range m.Hands {
		t.Run(h.Notation, func(t *testing.T) {
			ts, err := h.Tilesets(m.Rule)
			require.NoError(t, err)
			j := mahjong.Judge(ts)
			if h.Want == "" {
				assert.Nil(t, j)
				return
			}
			require.NotNil(t, j)
			assert.Equal(t, h.Want, j.String())
		})
	}
}

func TestManualHandContextErrors(t *testing.T) {
	cases := []struct {
		hand mahjong.ManualHand
		want error
	}{
		{mahjong.ManualHand{Place: "中"}, mahjong.ErrUnknownDirection},
		{mahjong.ManualHand{Player: "up"}, mahjong.ErrUnknownDirection},
		{mahjong.ManualHand{Lizhi: "maybe"}, mahjong.ErrUnknownLizhi},
		{mahjong.ManualHand{Lucky: []string{"天和", "焼き鳥"}}, mahjong.ErrUnknownForm},
		{mahjong.ManualHand{Lucky: []string{"清一色"}}, mahjong.ErrNotLuckyForm},
		{mahjong.ManualHand{Lucky: []string{"海底摸月", "立直"}}, mahjong.ErrNotLuckyForm},
	}
	for _, c := range cases {
		_, err := c.hand.Context(mahjong.DefaultRule())
		assert.ErrorIs(t, err, c.want)
	}
}

func TestManualHandRejectsUndeclarableForm(t *testing.T) {
	h := mahjong.ManualHand{
		Notation: "2s3s4s6s7s8s1m1m1m5p6p9p9p ロン7p",
		Player:   "South",
		Lucky:    []string{"清一色"},
	}
	_, err := h.Tilesets(nil)
	assert.ErrorIs(t, err, mahjong.ErrNotLuckyForm)
}

func TestLoadRule(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rule.yaml")
	require.NoError(t, os.WriteFile(path, []byte("kiriage: true\ndouble_yakuman: true\n"), 0o644))

	rule, err := mahjong.LoadRule(path)
	require.NoError(t, err)
	assert.Equal(t, &mahjong.Rule{OpenTanyao: true, Kiriage: true, DoubleYakuman: true}, rule)

	_, err = mahjong.LoadRule(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParseDirection(t *testing.T) {
	for i, name := range []string{"東", "南", "西", "北"} {
		d, err := mahjong.ParseDirection(name)
		require.NoError(t, err)
		assert.Equal(t, mahjong.Direction(i), d)
		en, err := mahjong.ParseDirection(d.English())
		require.NoError(t, err)
		assert.Equal(t, d, en)
		assert.True(t, d.Tile().IsWind())
	}
}
