package app

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// DefaultRefreshInterval период пересчёта "живых" представлений
const DefaultRefreshInterval = 5 * time.Minute

// RefreshFunc вызывается на каждый тик с текущим временем
type RefreshFunc func(ctx context.Context, now time.Time)

type subscription struct {
	fn RefreshFunc
}

// Refresher периодически будит подписанные live-представления,
// чтобы индикатор "сейчас" и вкладки upcoming/recent не устаревали.
type Refresher struct {
	interval time.Duration
	now      func() time.Time
	logger   *zap.Logger

	mu          sync.Mutex
	subscribers map[string]*subscription

	started  atomic.Bool
	stopOnce sync.Once
	stopChan chan struct{}
	done     chan struct{}
}

// NewRefresher создаёт новый планировщик обновлений
func NewRefresher(interval time.Duration, logger *zap.Logger) *Refresher {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	return &Refresher{
		interval:    interval,
		now:         time.Now,
		logger:      logger,
		subscribers: make(map[string]*subscription),
		stopChan:    make(chan struct{}),
		done:        make(chan struct{}),
	}
}

// Subscribe регистрирует fn под ключом key (повторная подписка заменяет старую).
// Возвращает функцию отписки.
func (r *Refresher) Subscribe(key string, fn RefreshFunc) func() {
	sub := &subscription{fn: fn}

	r.mu.Lock()
	r.subscribers[key] = sub
	r.mu.Unlock()

	// Отписываем только свою регистрацию
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if r.subscribers[key] == sub {
			delete(r.subscribers, key)
		}
	}
}

// Unsubscribe снимает подписку по ключу
func (r *Refresher) Unsubscribe(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.subscribers[key]
	delete(r.subscribers, key)
	return ok
}

// Len количество активных подписок
func (r *Refresher) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.subscribers)
}

// Start запускает фоновый цикл
func (r *Refresher) Start(ctx context.Context) {
	if !r.started.CompareAndSwap(false, true) {
		return
	}
	r.logger.Info("Starting live view refresher", zap.Duration("interval", r.interval))
	go r.run(ctx)
}

// Stop останавливает цикл и ждёт его завершения
func (r *Refresher) Stop() {
	r.stopOnce.Do(func() {
		r.logger.Info("Stopping live view refresher")
		close(r.stopChan)
	})
	if r.started.Load() {
		<-r.done
	}
}

func (r *Refresher) run(ctx context.Context) {
	defer close(r.done)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.Tick(ctx)
		case <-r.stopChan:
			return
		case <-ctx.Done():
			r.logger.Info("Live view refresher cancelled")
			return
		}
	}
}

// Tick вызывает всех подписчиков один раз
func (r *Refresher) Tick(ctx context.Context) {
	r.mu.Lock()
	fns := make([]RefreshFunc, 0, len(r.subscribers))
	for _, sub := range r.subscribers {
		fns = append(fns, sub.fn)
	}
	r.mu.Unlock()

	now := r.now()
	for _, fn := range fns {
		if ctx.Err() != nil {
			return
		}
		fn(ctx, now)
	}
}
