package mahjong

import (
	"fmt"

	"github.com/spf13/viper"
)

// ManualHand yaml 中手写的一手牌
type ManualHand struct {
	Name     string   `mapstructure:"name"`
	Notation string   `mapstructure:"notation"`
	Place    string   `mapstructure:"place"`
	Player   string   `mapstructure:"player"`
	Lizhi    string   `mapstructure:"lizhi"`
	Lucky    []string `mapstructure:"lucky"`
	Want     string   `mapstructure:"want"` // 期望的判定显示，空表示不能和了
}

// Manual 对应 yaml 文件：
//
//	rule: {open_tanyao: true, kiriage: false, double_yakuman: false}
//	hands:
//	  - notation: "1p1p1p2p2p2p3p3p3p4p4p4p5p ツモ5p"
//	    player: 東
type Manual struct {
	Rule  *Rule
	Hands []ManualHand
}

// LoadManual 读取手写牌谱
func LoadManual(path string) (*Manual, error) {
	vp := viper.New()
	vp.SetConfigType("yaml")
	vp.SetConfigFile(path)
	if err := vp.ReadInConfig(); err != nil {
		return nil, err
	}
	m := &Manual{}
	sub := vp.Sub("rule")
	if sub == nil {
		sub = viper.New()
	}
	m.Rule = NewRule(sub)
	if err := vp.UnmarshalKey("hands", &m.Hands); err != nil {
		return nil, fmt.Errorf("parse hands in %s: %w", path, err)
	}
	return m, nil
}

// Context 按手写内容生成场况
func (h *ManualHand) Context(rule *Rule) (*Context, error) {
	ctx := &Context{PlayerName: h.Name, Rule: rule}
	var err error
	if h.Place != "" {
		if ctx.Place, err = ParseDirection(h.Place); err != nil {
			return nil, err
		}
	}
	if h.Player != "" {
		if ctx.Player, err = ParseDirection(h.Player); err != nil {
			return nil, err
		}
	}
	if ctx.Lizhi, err = ParseLizhi(h.Lizhi); err != nil {
		return nil, err
	}
	for _, name := range h.Lucky {
		k, err := ParseLuckyForm(name)
		if err != nil {
			return nil, err
		}
		ctx.LuckyForms = append(ctx.LuckyForms, k)
	}
	return ctx, nil
}

func (h *ManualHand) Tilesets(rule *Rule) (*Tilesets, error) {
	ctx, err := h.Context(rule)
	if err != nil {
		return nil, err
	}
	return ParseTilesets(ctx, h.Notation)
}
