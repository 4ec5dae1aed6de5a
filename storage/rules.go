package storage

// Copyright (c) TFG Co. All Rights Reserved.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/kevin-chtw/tw_riichi/gamebase/mahjong"
	"github.com/topfreegames/pitaya/v3/pkg/cluster"
	"github.com/topfreegames/pitaya/v3/pkg/config"
	"github.com/topfreegames/pitaya/v3/pkg/constants"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
	"github.com/topfreegames/pitaya/v3/pkg/modules"
	clientv3 "go.etcd.io/etcd/client/v3"
	"go.etcd.io/etcd/client/v3/namespace"
)

// RuleRecord 某个判定服务器使用的规则
type RuleRecord struct {
	ServerId   string        `json:"server_id"`
	ServerType string        `json:"server_type"`
	Rule       *mahjong.Rule `json:"rule"`
}

// ETCDRules 集群模式下把本服的规则登记到 etcd，租约过期后自动消失
type ETCDRules struct {
	modules.Base
	cli             *clientv3.Client
	etcdEndpoints   []string
	etcdPrefix      string
	etcdDialTimeout time.Duration
	leaseTTL        time.Duration
	leaseID         clientv3.LeaseID
	thisServer      *cluster.Server
	rule            *mahjong.Rule
	stopChan        chan struct{}
}

func NewETCDRules(server *cluster.Server, rule *mahjong.Rule, conf config.ETCDBindingConfig) *ETCDRules {
	return &ETCDRules{
		thisServer:      server,
		rule:            rule,
		etcdEndpoints:   conf.Endpoints,
		etcdPrefix:      conf.Prefix,
		etcdDialTimeout: conf.DialTimeout,
		leaseTTL:        conf.LeaseTTL,
		stopChan:        make(chan struct{}),
	}
}

func RuleKey(serverID string) string {
	return fmt.Sprintf("rules/%s", serverID)
}

func (b *ETCDRules) put(ctx context.Context) error {
	value, err := json.Marshal(RuleRecord{
		ServerId:   b.thisServer.ID,
		ServerType: b.thisServer.Type,
		Rule:       b.rule,
	})
	if err != nil {
		return err
	}
	_, err = b.cli.Put(ctx, RuleKey(b.thisServer.ID), string(value), clientv3.WithLease(b.leaseID))
	return err
}

// Get 查询某个判定服务器的规则
func (b *ETCDRules) Get(ctx context.Context, serverID string) (*RuleRecord, error) {
	res, err := b.cli.Get(ctx, RuleKey(serverID))
	if err != nil {
		return nil, err
	}
	if len(res.Kvs) == 0 {
		return nil, constants.ErrBindingNotFound
	}
	record := &RuleRecord{}
	err = json.Unmarshal(res.Kvs[0].Value, record)
	return record, err
}

// List 所有在线判定服务器的规则
func (b *ETCDRules) List(ctx context.Context) ([]*RuleRecord, error) {
	res, err := b.cli.Get(ctx, RuleKey(""), clientv3.WithPrefix())
	if err != nil {
		return nil, err
	}
	records := make([]*RuleRecord, 0, len(res.Kvs))
	for _, kv := range res.Kvs {
		record := &RuleRecord{}
		if err := json.Unmarshal(kv.Value, record); err != nil {
			logger.Log.Warnf("[rule storage] bad record %s: %v", kv.Key, err)
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

func (b *ETCDRules) watchLeaseChan(c <-chan *clientv3.LeaseKeepAliveResponse) {
	for {
		select {
		case <-b.stopChan:
			return
		case kaRes := <-c:
			if kaRes != nil {
				continue
			}
			logger.Log.Warn("[rule storage] error renewing etcd lease, rebootstrapping")
			for b.bootstrapLease() != nil {
				logger.Log.Warn("[rule storage] error rebootstrapping lease, will retry in 5 seconds")
				time.Sleep(5 * time.Second)
			}
			return
		}
	}
}

// bootstrapLease 申请租约并重新登记规则
func (b *ETCDRules) bootstrapLease() error {
	l, err := b.cli.Grant(context.TODO(), int64(b.leaseTTL.Seconds()))
	if err != nil {
		return err
	}
	b.leaseID = l.ID
	logger.Log.Debugf("[rule storage] got leaseID: %x", l.ID)
	c, err := b.cli.KeepAlive(context.TODO(), b.leaseID)
	if err != nil {
		return err
	}
	<-c
	go b.watchLeaseChan(c)
	return b.put(context.TODO())
}

func (b *ETCDRules) Init() error {
	if b.cli == nil {
		cli, err := clientv3.New(clientv3.Config{
			Endpoints:   b.etcdEndpoints,
			DialTimeout: b.etcdDialTimeout,
		})
		if err != nil {
			return err
		}
		b.cli = cli
	}
	b.cli.KV = namespace.NewKV(b.cli.KV, b.etcdPrefix)
	return b.bootstrapLease()
}

func (b *ETCDRules) Shutdown() error {
	close(b.stopChan)
	return b.cli.Close()
}
