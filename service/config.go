package service

import (
	"time"

	"github.com/kevin-chtw/tw_riichi/gamebase/mahjong"
	"github.com/spf13/viper"
	"github.com/topfreegames/pitaya/v3/pkg/config"
)

// Config 判定服务的配置，对应 riichi.service、riichi.rule 与 riichi.etcd
type Config struct {
	CacheCounters int64
	CacheMaxCost  int64
	CacheTTL      time.Duration
	BatchLimit    int
	Rule          *mahjong.Rule
	Etcd          config.ETCDBindingConfig // 集群模式下登记规则用
}

func DefaultConfig() *Config {
	return &Config{
		CacheCounters: 1e5,
		CacheMaxCost:  1e4,
		CacheTTL:      10 * time.Minute,
		BatchLimit:    8,
		Rule:          mahjong.DefaultRule(),
		Etcd: config.ETCDBindingConfig{
			Endpoints:   []string{"localhost:2379"},
			Prefix:      "riichi/",
			DialTimeout: 5 * time.Second,
			LeaseTTL:    time.Minute,
		},
	}
}

// NewConfig 从 viper 读取，未配置的项取默认值
func NewConfig(vp *viper.Viper) *Config {
	def := DefaultConfig()
	vp.SetDefault("riichi.service.cache_counters", def.CacheCounters)
	vp.SetDefault("riichi.service.cache_max_cost", def.CacheMaxCost)
	vp.SetDefault("riichi.service.cache_ttl", def.CacheTTL)
	vp.SetDefault("riichi.service.batch_limit", def.BatchLimit)
	vp.SetDefault("riichi.etcd.endpoints", def.Etcd.Endpoints)
	vp.SetDefault("riichi.etcd.prefix", def.Etcd.Prefix)
	vp.SetDefault("riichi.etcd.dial_timeout", def.Etcd.DialTimeout)
	vp.SetDefault("riichi.etcd.lease_ttl", def.Etcd.LeaseTTL)

	rule := vp.Sub("riichi.rule")
	if rule == nil {
		rule = viper.New()
	}
	return &Config{
		CacheCounters: vp.GetInt64("riichi.service.cache_counters"),
		CacheMaxCost:  vp.GetInt64("riichi.service.cache_max_cost"),
		CacheTTL:      vp.GetDuration("riichi.service.cache_ttl"),
		BatchLimit:    vp.GetInt("riichi.service.batch_limit"),
		Rule:          mahjong.NewRule(rule),
		Etcd: config.ETCDBindingConfig{
			Endpoints:   vp.GetStringSlice("riichi.etcd.endpoints"),
			Prefix:      vp.GetString("riichi.etcd.prefix"),
			DialTimeout: vp.GetDuration("riichi.etcd.dial_timeout"),
			LeaseTTL:    vp.GetDuration("riichi.etcd.lease_ttl"),
		},
	}
}

// LoadConfig 读取 yaml 配置文件
func LoadConfig(path string) (*Config, error) {
	vp := viper.New()
	vp.SetConfigType("yaml")
	vp.SetConfigFile(path)
	if err := vp.ReadInConfig(); err != nil {
		return nil, err
	}
	return NewConfig(vp), nil
}
