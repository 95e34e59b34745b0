package notify

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/integrations/notifier"
	"github.com/m04kA/SMC-StudioBooking/pkg/metrics"
)

const errorsBuffer = 16

// Dispatcher отправляет уведомления в фоне после коммита основной записи
//
// Dispatch никогда не блокирует вызывающего: при переполненной очереди уведомление
// отбрасывается. Ошибки доставки не возвращаются вызывающему, а пишутся в лог,
// метрики и изолированный канал Errors(). Повторных попыток нет.
type Dispatcher struct {
	sender      Sender
	sendTimeout time.Duration
	metrics     Metrics
	logger      Logger

	queue  chan Notification
	errs   chan error
	done   chan struct{}
	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.RWMutex
	closed bool
}

// NewDispatcher создает диспетчер и запускает воркер
func NewDispatcher(sender Sender, queueSize int, sendTimeout time.Duration, m Metrics, logger Logger) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	d := &Dispatcher{
		sender:      sender,
		sendTimeout: sendTimeout,
		metrics:     m,
		logger:      logger,
		queue:       make(chan Notification, queueSize),
		errs:        make(chan error, errorsBuffer),
		done:        make(chan struct{}),
		ctx:         ctx,
		cancel:      cancel,
	}

	go d.worker()
	return d
}

// Dispatch ставит уведомление в очередь, возвращает false если оно отброшено
func (d *Dispatcher) Dispatch(n Notification) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.logger.Warn("Notify: dispatcher closed, dropping %s notification to=%s", n.Kind, n.To)
		d.inc(n.Kind, metrics.ResultDropped)
		return false
	}

	select {
	case d.queue <- n:
		return true
	default:
		d.logger.Warn("Notify: queue full, dropping %s notification to=%s", n.Kind, n.To)
		d.inc(n.Kind, metrics.ResultDropped)
		return false
	}
}

// Errors канал ошибок доставки
// Запись неблокирующая: если никто не читает, ошибки отбрасываются
func (d *Dispatcher) Errors() <-chan error {
	return d.errs
}

// Close прекращает приём уведомлений и дожидается отправки очереди
// Если ctx истёк раньше, текущие отправки прерываются и возвращается ctx.Err()
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		d.cancel()
		return nil
	case <-ctx.Done():
		d.cancel()
		return ctx.Err()
	}
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for n := range d.queue {
		d.send(n)
	}
}

func (d *Dispatcher) send(n Notification) {
	ctx := d.ctx
	if d.sendTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.sendTimeout)
		defer cancel()
	}

	err := d.sender.Send(ctx, notifier.Message{
		To:      n.To,
		Subject: n.Subject,
		Body:    n.Body,
		ReplyTo: n.ReplyTo,
	})
	if err != nil {
		d.logger.Error("Notify: failed to send %s notification to=%s: %v", n.Kind, n.To, err)
		d.inc(n.Kind, metrics.ResultError)
		d.publish(&DeliveryError{Kind: n.Kind, To: n.To, Err: err})
		return
	}

	d.inc(n.Kind, metrics.ResultSuccess)
}

func (d *Dispatcher) publish(err error) {
	select {
	case d.errs <- err:
	default:
	}
}

func (d *Dispatcher) inc(kind Kind, result string) {
	if d.metrics != nil {
		d.metrics.IncNotification(string(kind), result)
	}
}
