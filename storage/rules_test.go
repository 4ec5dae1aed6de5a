package storage_test

import (
	"encoding/json"
	"testing"

	"github.com/kevin-chtw/tw_riichi/gamebase/mahjong"
	"github.com/kevin-chtw/tw_riichi/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleKey(t *testing.T) {
	assert.Equal(t, "rules/riichi-1", storage.RuleKey("riichi-1"))
	assert.Equal(t, "rules/", storage.RuleKey(""))
}

func TestRuleRecordJSON(t *testing.T) {
	record := storage.RuleRecord{
		ServerId:   "riichi-1",
		ServerType: "riichi",
		Rule:       &mahjong.Rule{OpenTanyao: true, DoubleYakuman: true},
	}
	data, err := json.Marshal(record)
	require.NoError(t, err)
	assert.JSONEq(t, `{"server_id":"riichi-1","server_type":"riichi","rule":{"open_tanyao":true,"kiriage":false,"double_yakuman":true}}`, string(data))

	var got storage.RuleRecord
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, record, got)
}
