// Package circuitbreaker 熔断器
//
// 三种状态：
//   - CLOSED：请求正常通过，统计连续失败次数
//   - OPEN：达到阈值后打开，请求直接返回ErrOpenState，timeout后转为HALF_OPEN
//   - HALF_OPEN：放行一个探测请求，成功则关闭，失败则重新打开
//
// 用于保护事务提交后的外部调用(如事件发布)，下游不可用时不拖慢主流程。
package circuitbreaker

import (
	"errors"
	"sync"
	"time"
)

// State 熔断器状态
type State int

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "CLOSED"
	case StateOpen:
		return "OPEN"
	case StateHalfOpen:
		return "HALF_OPEN"
	default:
		return "UNKNOWN"
	}
}

// ErrOpenState 熔断器打开，请求未执行
var ErrOpenState = errors.New("circuit breaker is open")

// Config 熔断器配置
type Config struct {
	// MaxFailures 连续失败多少次后打开，<=0时取1
	MaxFailures int
	// Timeout OPEN状态持续时间
	Timeout time.Duration
	// OnStateChange 状态变化回调(记录日志、指标)，在锁外调用
	OnStateChange func(name string, from, to State)
}

// CircuitBreaker 熔断器，并发安全
type CircuitBreaker struct {
	name        string
	maxFailures int
	timeout     time.Duration
	onChange    func(name string, from, to State)
	now         func() time.Time

	mu       sync.Mutex
	state    State
	failures int
	openedAt time.Time
	probing  bool // HALF_OPEN下已有探测请求在执行
}

// New 创建熔断器
func New(name string, cfg Config) *CircuitBreaker {
	if cfg.MaxFailures <= 0 {
		cfg.MaxFailures = 1
	}
	return &CircuitBreaker{
		name:        name,
		maxFailures: cfg.MaxFailures,
		timeout:     cfg.Timeout,
		onChange:    cfg.OnStateChange,
		now:         time.Now,
	}
}

// Execute 在熔断器保护下执行req
// 熔断器打开时不调用req，直接返回ErrOpenState
func (cb *CircuitBreaker) Execute(req func() error) error {
	if err := cb.before(); err != nil {
		return err
	}
	err := req()
	cb.after(err == nil)
	return err
}

// State 当前状态
func (cb *CircuitBreaker) State() State {
	cb.mu.Lock()
	from := cb.state
	state := cb.currentState()
	cb.mu.Unlock()

	cb.notify(from, state)
	return state
}

func (cb *CircuitBreaker) before() error {
	cb.mu.Lock()
	from := cb.state
	state := cb.currentState()

	var err error
	switch {
	case state == StateOpen:
		err = ErrOpenState
	case state == StateHalfOpen && cb.probing:
		err = ErrOpenState
	case state == StateHalfOpen:
		cb.probing = true
	}
	cb.mu.Unlock()

	cb.notify(from, state)
	return err
}

func (cb *CircuitBreaker) after(success bool) {
	cb.mu.Lock()
	from := cb.state
	switch {
	case success:
		cb.failures = 0
		cb.state = StateClosed
	case cb.state == StateHalfOpen:
		cb.open()
	default:
		cb.failures++
		if cb.failures >= cb.maxFailures {
			cb.open()
		}
	}
	cb.probing = false
	to := cb.state
	cb.mu.Unlock()

	cb.notify(from, to)
}

// currentState OPEN超时后转为HALF_OPEN，调用方持有锁
func (cb *CircuitBreaker) currentState() State {
	if cb.state == StateOpen && cb.now().Sub(cb.openedAt) >= cb.timeout {
		cb.state = StateHalfOpen
		cb.probing = false
	}
	return cb.state
}

func (cb *CircuitBreaker) open() {
	cb.state = StateOpen
	cb.openedAt = cb.now()
	cb.failures = 0
}

func (cb *CircuitBreaker) notify(from, to State) {
	if from != to && cb.onChange != nil {
		cb.onChange(cb.name, from, to)
	}
}
