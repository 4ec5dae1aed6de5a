package mahjong

import (
	"strings"
)

// ETag 牌组的种类
type ETag int

const (
	TagHand   ETag = iota // 手牌
	TagTsumo              // ツモ
	TagRon                // ロン
	TagPon                // ポン
	TagChi                // チー
	TagMinkan             // 明槓
	TagAnkan              // 暗槓
	TagDora               // ドラ（指示牌）
)

var tagPrefixes = []struct {
	prefix string
	tag    ETag
}{
	{"ツモ", TagTsumo},
	{"ロン", TagRon},
	{"ポン", TagPon},
	{"チー", TagChi},
	{"明槓", TagMinkan},
	{"暗槓", TagAnkan},
	{"ドラ", TagDora},
}

func (t ETag) String() string {
	for _, p := range tagPrefixes {
		if p.tag == t {
			return p.prefix
		}
	}
	return ""
}

// Tileset 带种类标记的一组牌
type Tileset struct {
	Tag   ETag
	Tiles Tiles
}

// NewTileset 排序并检查牌组的合法性
func NewTileset(tag ETag, tiles Tiles) (Tileset, error) {
	tiles = NewTiles(tiles...)
	var err error
	switch tag {
	case TagTsumo, TagRon:
		err = tiles.CheckLast()
	case TagPon:
		err = tiles.CheckPon()
	case TagChi:
		err = tiles.CheckChi()
	case TagMinkan, TagAnkan:
		err = tiles.CheckKan()
	}
	if err != nil {
		return Tileset{}, err
	}
	return Tileset{Tag: tag, Tiles: tiles}, nil
}

// ParseTileset 解析 "ポン4p4p4p" 形式，无前缀为手牌
func ParseTileset(token string) (Tileset, error) {
	tag := TagHand
	for _, p := range tagPrefixes {
		if rest, ok := strings.CutPrefix(token, p.prefix); ok {
			tag, token = p.tag, rest
			break
		}
	}
	tiles, err := ParseTiles(token)
	if err != nil {
		return Tileset{}, err
	}
	return NewTileset(tag, tiles)
}

func (s Tileset) String() string {
	return s.Tag.String() + s.Tiles.String()
}
