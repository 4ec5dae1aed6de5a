package mahjong

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangeSameTiles(t *testing.T) {
	got := rangeSameTiles(MustParseTiles("1s1s1s2s2s2s3s3s3s4s4s4s東東"))
	assert.Equal(t, []span{{0, 3}, {3, 6}, {6, 9}, {9, 12}, {12, 14}}, got)
}

func TestEnumerateQuetou(t *testing.T) {
	cands := enumerateQuetou(MustParseTiles("1s1s1s2s2s2s3s3s3s4s4s4s東東"))
	want := []struct{ pair, rest string }{
		{"1s1s", "1s2s2s2s3s3s3s4s4s4s東東"},
		{"2s2s", "1s1s1s2s3s3s3s4s4s4s東東"},
		{"3s3s", "1s1s1s2s2s2s3s4s4s4s東東"},
		{"4s4s", "1s1s1s2s2s2s3s3s3s4s東東"},
		{"東東", "1s1s1s2s2s2s3s3s3s4s4s4s"},
	}
	require.Len(t, cands, len(want))
	for i, w := range want {
		assert.Equal(t, w.pair, cands[i].pair.String())
		assert.Equal(t, w.rest, cands[i].rest.String())
	}
}

func TestEnumerateKezi(t *testing.T) {
	cands := enumerateKezi(MustParseTiles("1s1s1s2s3s4s東東東"))
	require.Len(t, cands, 4)
	assert.Empty(t, cands[0].kezis)
	assert.Equal(t, "1s1s1s2s3s4s東東東", cands[0].rest.String())
	assert.Equal(t, "2s3s4s東東東", cands[1].rest.String())
	assert.Equal(t, "1s1s1s2s3s4s", cands[2].rest.String())
	assert.Equal(t, "2s3s4s", cands[3].rest.String())
	require.Len(t, cands[3].kezis, 2)
	assert.Equal(t, "東東東", cands[3].kezis[1].String())
}

func TestEnumerateKeziPanicsOnBadSize(t *testing.T) {
	assert.Panics(t, func() { enumerateKezi(MustParseTiles("1s1s")) })
}

func TestExtractShunzi(t *testing.T) {
	testCases := []struct {
		tiles string
		want  []string
		ok    bool
	}{
		{"1s2s3s", []string{"1s2s3s"}, true},
		{"1s1s2s2s3s3s", []string{"1s2s3s", "1s2s3s"}, true},
		{"1s2s3s4s5s6s6s7s8s7s8s9s", []string{"1s2s3s", "4s5s6s", "6s7s8s", "7s8s9s"}, true},
		{"4p5P6p", []string{"4p5P6p"}, true},
		{"7s8s9s1m2m3m", []string{"7s8s9s", "1m2m3m"}, true},
		{"8s9s1m", nil, false},
		{"東南西", nil, false},
		{"1s2s4s", nil, false},
	}
	for _, tc := range testCases {
		t.Run(tc.tiles, func(t *testing.T) {
			got, ok := extractShunzi(MustParseTiles(tc.tiles))
			require.Equal(t, tc.ok, ok)
			var names []string
			for _, g := range got {
				names = append(names, g.String())
			}
			assert.Equal(t, tc.want, names)
		})
	}
}

func TestReconcileRonIsPure(t *testing.T) {
	ts, err := ParseTilesets(NewContext(), "1s2s3s4s5s6s6s7s8s8s9s西西 ロン7s")
	require.NoError(t, err)
	pair := MustParseTiles("西西")
	shunzis := []Tiles{MustParseTiles("1s2s3s"), MustParseTiles("4s5s6s"), MustParseTiles("6s7s8s"), MustParseTiles("7s8s9s")}

	r := reconcileRon(ts, pair, nil, shunzis)
	assert.Equal(t, RongMingshun, r.Kind)
	assert.Equal(t, "6s7s8s", r.Tiles.String())
	assert.Len(t, shunzis, 4)

	rest := r.apply(sourceShunzi, shunzis)
	assert.Len(t, rest, 3)
	assert.Equal(t, "6s7s8s", shunzis[2].String())
	assert.Equal(t, "7s8s9s", rest[2].String())
}

func TestReconcileRonPanicsWithoutHome(t *testing.T) {
	ts, err := ParseTilesets(NewContext(), "1s2s3s4s5s6s6s7s8s8s9s西西 ロン7s")
	require.NoError(t, err)
	assert.Panics(t, func() { reconcileRon(ts, MustParseTiles("西西"), nil, nil) })
}
