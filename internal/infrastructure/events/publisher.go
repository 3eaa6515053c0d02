// Package events 把图书变更事件发布到RabbitMQ
package events

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/infrastructure/config"
	"github.com/xiebiao/library/pkg/circuitbreaker"
	"github.com/xiebiao/library/pkg/metrics"
	"github.com/xiebiao/library/pkg/mq"
)

// exchangeType 事件交换机类型，下游可以按book.*订阅
const exchangeType = "topic"

// messagePublisher *mq.Publisher的最小接口，便于测试替换
type messagePublisher interface {
	Publish(ctx context.Context, routingKey string, message interface{}) error
}

// Publisher 基于RabbitMQ的事件发布者
// 发布经过熔断器，broker不可用时快速失败，不拖慢写请求
type Publisher struct {
	mq      messagePublisher
	breaker *circuitbreaker.CircuitBreaker
}

func newBreaker(cfg config.MQConfig, log *zap.Logger) *circuitbreaker.CircuitBreaker {
	return circuitbreaker.New("mq-publisher", circuitbreaker.Config{
		MaxFailures: cfg.BreakerFailures,
		Timeout:     cfg.BreakerTimeout,
		OnStateChange: func(name string, from, to circuitbreaker.State) {
			log.Warn("熔断器状态变化",
				zap.String("breaker", name),
				zap.Stringer("from", from),
				zap.Stringer("to", to),
			)
		},
	})
}

// NewPublisher 根据配置创建事件发布者
// mq.enabled为false时返回Noop，不建立连接
func NewPublisher(cfg *config.Config, log *zap.Logger) (book.EventPublisher, func(), error) {
	if !cfg.MQ.Enabled {
		log.Info("消息队列未启用，图书事件不会发布")
		return Noop{}, func() {}, nil
	}

	p, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange, exchangeType)
	if err != nil {
		return nil, nil, fmt.Errorf("连接消息队列失败: %w", err)
	}
	log.Info("消息队列连接成功", zap.String("exchange", cfg.MQ.Exchange))

	cleanup := func() {
		if err := p.Close(); err != nil {
			log.Warn("关闭消息队列连接失败", zap.Error(err))
		}
	}
	return &Publisher{mq: p, breaker: newBreaker(cfg.MQ, log)}, cleanup, nil
}

// Publish 以事件类型作为Routing Key发布
func (p *Publisher) Publish(ctx context.Context, event book.Event) error {
	err := p.breaker.Execute(func() error {
		return p.mq.Publish(ctx, event.Type, event)
	})
	metrics.RecordEventPublished(event.Type, err == nil)
	return err
}

// Noop 不发布任何事件
type Noop struct{}

func (Noop) Publish(context.Context, book.Event) error {
	return nil
}
