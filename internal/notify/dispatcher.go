package notify

import (
	"context"
	"sync"
	"time"

	"jobboard-backend/internal/shared/telemetry"
)

const (
	DefaultWorkers   = 4
	DefaultQueueSize = 256

	sendTimeout = 30 * time.Second
)

// Dispatcher runs a bounded pool of workers draining queued messages. Enqueue
// never blocks the caller: a full queue drops the message with a log line.
// Delivery outcomes are logged and discarded, never reported back.
type Dispatcher struct {
	mailer  Mailer
	tasks   chan Message
	workers int

	startOnce sync.Once
	stopOnce  sync.Once
	wg        sync.WaitGroup
}

// NewDispatcher builds a dispatcher over the given mailer. Non-positive
// workers or queueSize fall back to defaults.
func NewDispatcher(mailer Mailer, workers, queueSize int) *Dispatcher {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &Dispatcher{
		mailer:  mailer,
		tasks:   make(chan Message, queueSize),
		workers: workers,
	}
}

// Start launches the worker pool. Safe to call once; later calls are no-ops.
func (d *Dispatcher) Start() {
	d.startOnce.Do(func() {
		for i := 0; i < d.workers; i++ {
			d.wg.Add(1)
			go d.worker()
		}
	})
}

// Enqueue submits a message for background delivery. It reports whether the
// message was accepted; a false return means the queue was full and the
// message was dropped.
func (d *Dispatcher) Enqueue(msg Message) bool {
	select {
	case d.tasks <- msg:
		return true
	default:
		telemetry.Warn("notify.queue_full", map[string]any{
			"to":      msg.To,
			"subject": msg.Subject,
		})
		return false
	}
}

// Stop closes the queue and waits for in-flight deliveries, bounded by ctx.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.stopOnce.Do(func() {
		close(d.tasks)
	})

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for msg := range d.tasks {
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		err := d.mailer.Send(ctx, msg)
		cancel()
		if err != nil {
			telemetry.Error("notify.send_failed", map[string]any{
				"to":      msg.To,
				"subject": msg.Subject,
				"error":   err.Error(),
			})
			continue
		}
		telemetry.Info("notify.sent", map[string]any{
			"to":      msg.To,
			"subject": msg.Subject,
		})
	}
}
