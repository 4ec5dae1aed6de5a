package mahjong

import (
	"github.com/spf13/viper"
)

// Rule 可选规则
type Rule struct {
	OpenTanyao    bool `json:"open_tanyao"`    // 食断
	Kiriage       bool `json:"kiriage"`        // 切上满贯
	DoubleYakuman bool `json:"double_yakuman"` // 四暗刻单骑、国士十三面、纯正九莲、大四喜按双倍役满
}

func DefaultRule() *Rule {
	return &Rule{OpenTanyao: true}
}

// LoadRule 从 yaml 文件读取规则，未配置的项取默认值
func LoadRule(path string) (*Rule, error) {
	vp := viper.New()
	vp.SetConfigType("yaml")
	vp.SetConfigFile(path)
	if err := vp.ReadInConfig(); err != nil {
		return nil, err
	}
	return NewRule(vp), nil
}

// NewRule 从已加载的配置中读取规则
func NewRule(vp *viper.Viper) *Rule {
	def := DefaultRule()
	vp.SetDefault("open_tanyao", def.OpenTanyao)
	vp.SetDefault("kiriage", def.Kiriage)
	vp.SetDefault("double_yakuman", def.DoubleYakuman)
	return &Rule{
		OpenTanyao:    vp.GetBool("open_tanyao"),
		Kiriage:       vp.GetBool("kiriage"),
		DoubleYakuman: vp.GetBool("double_yakuman"),
	}
}

func (r *Rule) yakumanCount(kind FormKind) int {
	if r.DoubleYakuman && kind.isDoubleYakuman() {
		return 2
	}
	return 1
}
