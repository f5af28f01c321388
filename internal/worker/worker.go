package worker

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// taskTimeout 每個背景工作可使用的最長時間
const taskTimeout = 10 * time.Second

// queueSize 佇列容量；滿了就丟棄，不讓呼叫端等待
const queueSize = 64

// Task 是在背景執行的工作，ctx 與發起的 request 無關
type Task func(ctx context.Context) error

// Pool 固定數量 goroutine 的工作池
type Pool interface {
	// Submit 不會阻塞：Stop 之後或佇列已滿時回傳 false，工作不會被執行
	Submit(Task) bool
	Stop()
}

// ErrorHandler 接收工作回傳的錯誤或 panic
type ErrorHandler func(error)

// NewPool creates a pool with n workers. n<=0 defaults to 1.
func NewPool(n int, onError ErrorHandler) Pool {
	if n <= 0 {
		n = 1
	}
	if onError == nil {
		onError = func(error) {}
	}
	p := &pool{jobs: make(chan Task, queueSize), onError: onError}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				p.run(job)
			}
		}()
	}
	return p
}

type pool struct {
	mu      sync.RWMutex
	stopped bool
	jobs    chan Task
	wg      sync.WaitGroup
	onError ErrorHandler
}

func (p *pool) run(t Task) {
	if t == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), taskTimeout)
	defer cancel()
	defer func() {
		if r := recover(); r != nil {
			p.onError(fmt.Errorf("worker: task panic: %v", r))
		}
	}()
	if err := t(ctx); err != nil {
		p.onError(err)
	}
}

func (p *pool) Submit(t Task) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return false
	}
	select {
	case p.jobs <- t:
		return true
	default:
		return false
	}
}

// Stop 關閉佇列並等待已送出的工作完成；可重複呼叫
func (p *pool) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	close(p.jobs)
	p.mu.Unlock()
	p.wg.Wait()
}
