package service

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/dgraph-io/ristretto"
	"github.com/google/uuid"
	"github.com/kevin-chtw/tw_riichi/gamebase/mahjong"
	"github.com/kevin-chtw/tw_riichi/storage"
	"github.com/kevin-chtw/tw_riichi/utils"
	pitaya "github.com/topfreegames/pitaya/v3/pkg"
	"github.com/topfreegames/pitaya/v3/pkg/component"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
	"golang.org/x/sync/errgroup"
	"google.golang.org/protobuf/types/known/structpb"
)

// RuleRegistry 集群中各判定服务器登记的规则
type RuleRegistry interface {
	Get(ctx context.Context, serverID string) (*storage.RuleRecord, error)
	List(ctx context.Context) ([]*storage.RuleRecord, error)
}

// Judge 和了判定的远程服务
type Judge struct {
	component.Base
	app   pitaya.Pitaya
	conf  *Config
	cache *ristretto.Cache
	rules RuleRegistry
}

// cached 缓存的判定结果，judgment 为 nil 表示不能和了
type cached struct {
	judgment *mahjong.Judgment
}

// NewJudge 创建判定服务，app 可以为 nil
func NewJudge(app pitaya.Pitaya, conf *Config) (*Judge, error) {
	if conf == nil {
		conf = DefaultConfig()
	}
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: conf.CacheCounters,
		MaxCost:     conf.CacheMaxCost,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create judgment cache: %w", err)
	}
	return &Judge{app: app, conf: conf, cache: cache}, nil
}

// SetRules 集群模式下设置规则登记表，未设置时 Rules 只返回本服规则
func (j *Judge) SetRules(rules RuleRegistry) {
	j.rules = rules
}

// Shutdown 组件关闭时释放缓存
func (j *Judge) Shutdown() {
	j.cache.Close()
}

// Judge 判定一手牌
func (j *Judge) Judge(ctx context.Context, req *structpb.Struct) (rsp *structpb.Struct, err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Log.Errorf("panic recovered %s\n %s", r, string(debug.Stack()))
			rsp, err = nil, fmt.Errorf("judge panicked: %v", r)
		}
	}()
	if req == nil {
		return nil, errors.New("nil request")
	}
	return j.judge(req)
}

// JudgeBatch 并发判定多手牌，结果顺序与请求一致。
// 单手出错时对应结果只带 error 字段，不影响其他手。
func (j *Judge) JudgeBatch(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if req == nil {
		return nil, errors.New("nil request")
	}
	hands := utils.GetStructs(req, "hands")
	results := make([]any, len(hands))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(j.conf.BatchLimit, 1))
	for i, hand := range hands {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rsp, err := j.Judge(gctx, hand)
			if err != nil {
				results[i] = map[string]any{"error": err.Error()}
				return nil
			}
			results[i] = rsp.AsMap()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return utils.ToStruct(map[string]any{"results": results}), nil
}

// Rules 查询判定规则，带 server_id 时只查该服务器
func (j *Judge) Rules(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var records []*storage.RuleRecord
	id := utils.GetString(req, "server_id")
	switch {
	case j.rules == nil:
		records = append(records, j.localRule())
	case id != "":
		record, err := j.rules.Get(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("get rule of %s: %w", id, err)
		}
		records = append(records, record)
	default:
		var err error
		if records, err = j.rules.List(ctx); err != nil {
			return nil, fmt.Errorf("list rules: %w", err)
		}
	}

	list := make([]any, 0, len(records))
	for _, r := range records {
		rule := r.Rule
		if rule == nil {
			rule = mahjong.DefaultRule()
		}
		list = append(list, map[string]any{
			"server_id":      r.ServerId,
			"server_type":    r.ServerType,
			"open_tanyao":    rule.OpenTanyao,
			"kiriage":        rule.Kiriage,
			"double_yakuman": rule.DoubleYakuman,
		})
	}
	return utils.ToStruct(map[string]any{"rules": list}), nil
}

func (j *Judge) localRule() *storage.RuleRecord {
	record := &storage.RuleRecord{ServerId: j.serverID(), Rule: j.conf.Rule}
	if j.app != nil {
		record.ServerType = j.app.GetServer().Type
	}
	return record
}

func (j *Judge) judge(req *structpb.Struct) (*structpb.Struct, error) {
	id := uuid.NewString()
	hand := mahjong.ManualHand{
		Name:     utils.GetString(req, "name"),
		Notation: utils.GetString(req, "notation"),
		Place:    utils.GetString(req, "place"),
		Player:   utils.GetString(req, "player"),
		Lizhi:    utils.GetString(req, "lizhi"),
		Lucky:    utils.GetStrings(req, "lucky"),
	}
	logger.Log.Infof("judge %s on %s: %q", id, j.serverID(), hand.Notation)

	ts, err := hand.Tilesets(j.conf.Rule)
	if err != nil {
		logger.Log.Infof("judge %s: invalid: %v", id, err)
		return nil, err
	}

	key := ts.Key()
	var res *mahjong.Judgment
	if v, ok := j.cache.Get(key); ok {
		res = v.(cached).judgment
		logger.Log.Debugf("judge %s: cache hit", id)
	} else {
		res = mahjong.Judge(ts)
		j.cache.SetWithTTL(key, cached{judgment: res}, 1, j.conf.CacheTTL)
	}
	return toResponse(id, res), nil
}

func (j *Judge) serverID() string {
	if j.app == nil {
		return "local"
	}
	return j.app.GetServerID()
}

func toResponse(id string, res *mahjong.Judgment) *structpb.Struct {
	fields := map[string]any{"id": id, "won": res != nil}
	if res == nil {
		return utils.ToStruct(fields)
	}
	total := res.Total()
	forms := make([]any, 0, len(res.Forms()))
	for _, f := range res.Forms() {
		forms = append(forms, map[string]any{
			"name":    f.Kind.String(),
			"fan":     f.Point.Fan,
			"yakuman": f.Point.Yakuman,
		})
	}
	pay := res.Payments()
	fields["text"] = res.String()
	fields["fan"] = total.Fan
	fields["fu"] = total.Fu
	fields["yakuman"] = total.Yakuman
	fields["value"] = res.Value()
	fields["rank"] = res.Limit().String()
	fields["forms"] = forms
	fields["payments"] = map[string]any{
		"ron":         pay.Ron,
		"from_parent": pay.FromParent,
		"from_child":  pay.FromChild,
	}
	if a := res.Agari(); a != nil {
		fields["wait"] = a.Wait().String()
	}
	return utils.ToStruct(fields)
}
