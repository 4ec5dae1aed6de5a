package main

import (
	"path/filepath"
	"testing"

	"github.com/kevin-chtw/tw_riichi/gamebase/mahjong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJudgeManualFixture(t *testing.T) {
	assert.NoError(t, judgeManual(filepath.Join("..", "..", "gamebase", "mahjong", "testdata", "judge_cases.yaml")))
	assert.Error(t, judgeManual(filepath.Join(t.TempDir(), "missing.yaml")))
}

func TestJudgeCommand(t *testing.T) {
	rootCmd.SetArgs([]string{"judge", "--player", "West", "5s6s7s4m5m6m4p4p4p5p6p西西", "ロン西"})
	require.NoError(t, rootCmd.Execute())

	rootCmd.SetArgs([]string{"judge", "1s2s3s", "ツモ4s"})
	assert.ErrorIs(t, rootCmd.Execute(), mahjong.ErrInvalidTilesCount)
}

func TestJudgmentText(t *testing.T) {
	assert.Equal(t, "", judgmentText(nil))
	ts, err := mahjong.ParseTilesets(nil, "1s9s1m9m1p9p東南西北白發中 ツモ中")
	require.NoError(t, err)
	j := mahjong.Judge(ts)
	assert.Equal(t, j.String(), judgmentText(j))
	assert.Equal(t, limitColor(mahjong.LimitYakuman), limitColor(j.Limit()))
}
