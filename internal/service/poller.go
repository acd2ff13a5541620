package service

import (
	"context"
	"sync"
	"time"

	"github.com/teletrack/teletrack-cli/internal/domain"
)

const (
	// ForegroundInterval is the message poll period while the user is
	// actively watching a conversation.
	ForegroundInterval = 3 * time.Second
	// BackgroundInterval is the slower period used when the
	// conversation is not in focus.
	BackgroundInterval = 10 * time.Second
)

// Poller periodically fetches the messages of one group and hands each
// batch to a callback. The poll period widens when the caller reports
// that the conversation left the foreground.
type Poller struct {
	chat    ChatService
	groupID string
	limit   int
	onBatch func([]*domain.Message)

	mu       sync.Mutex
	interval time.Duration
	kick     chan struct{}
	stop     chan struct{}
	done     chan struct{}
	running  bool
}

func NewPoller(chat ChatService, groupID string, limit int, onBatch func([]*domain.Message)) *Poller {
	return &Poller{
		chat:     chat,
		groupID:  groupID,
		limit:    limit,
		onBatch:  onBatch,
		interval: ForegroundInterval,
	}
}

// Start begins polling until Stop is called or ctx is cancelled. The
// first fetch happens immediately. Calling Start twice is an error on
// the caller's side; the second call is ignored.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	if p.running {
		p.mu.Unlock()
		return
	}
	p.running = true
	p.kick = make(chan struct{}, 1)
	p.stop = make(chan struct{})
	p.done = make(chan struct{})
	p.mu.Unlock()

	go p.loop(ctx)
}

func (p *Poller) loop(ctx context.Context) {
	defer close(p.done)

	p.poll(ctx)
	for {
		timer := time.NewTimer(p.currentInterval())
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-p.stop:
			timer.Stop()
			return
		case <-p.kick:
			// Interval changed; rearm with the new period.
			timer.Stop()
		case <-timer.C:
			p.poll(ctx)
		}
	}
}

func (p *Poller) poll(ctx context.Context) {
	messages, err := p.chat.Messages(ctx, p.groupID, p.limit)
	if err != nil {
		// Transient failures are expected; the next tick retries.
		return
	}
	p.onBatch(messages)
}

func (p *Poller) currentInterval() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.interval
}

// SetForeground switches between the fast and slow poll period. The
// change takes effect on the next tick.
func (p *Poller) SetForeground(foreground bool) {
	next := BackgroundInterval
	if foreground {
		next = ForegroundInterval
	}

	p.mu.Lock()
	changed := p.interval != next
	p.interval = next
	kick := p.kick
	running := p.running
	p.mu.Unlock()

	if changed && running {
		select {
		case kick <- struct{}{}:
		default:
		}
	}
}

// Stop halts polling and waits for the loop to exit. Safe to call more
// than once.
func (p *Poller) Stop() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	p.running = false
	close(p.stop)
	done := p.done
	p.mu.Unlock()

	<-done
}
