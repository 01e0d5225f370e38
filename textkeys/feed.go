package textkeys

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/guiguan/caster"
)

// DefaultBatchSize is used by Start and Load for a batch size <= 0.
const DefaultBatchSize = 256

// ErrFeedClosed is returned when subscribing to a feed which has already
// finished or has been cancelled.
var ErrFeedClosed = errors.New("textkeys: feed closed")

// ErrFeedStarted is returned when Start is called a second time.
var ErrFeedStarted = errors.New("textkeys: feed already started")

// Feed reads words asynchronously and broadcasts them in batches.
//
// Subscribers have to subscribe before the feed is started; batches published
// earlier are not replayed. All subscription channels are closed when the
// input is exhausted, a read error occurs, or the feed's context is done.
type Feed struct {
	ctx     context.Context
	cast    *caster.Caster // broadcaster for batches of words
	done    chan struct{}
	mx      sync.Mutex
	started bool
	words   int
	err     error // remember first I/O error
}

// NewFeed creates a feed bound to ctx.
func NewFeed(ctx context.Context) *Feed {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Feed{
		ctx:  ctx,
		cast: caster.New(ctx),
		done: make(chan struct{}),
	}
}

// Subscribe returns a channel receiving batches of words. capacity is the
// number of batches buffered for this subscriber.
func (f *Feed) Subscribe(capacity uint) (<-chan []string, error) {
	if f.closed() {
		return nil, ErrFeedClosed
	}
	sub, _ := f.cast.Sub(f.ctx, capacity)
	if f.closed() {
		// Sub hands out a closed channel if it lost a race with Close
		return nil, ErrFeedClosed
	}
	out := make(chan []string, capacity)
	go func() {
		defer close(out)
		for msg := range sub {
			batch, ok := msg.([]string)
			if !ok {
				continue
			}
			select {
			case out <- batch:
			case <-f.ctx.Done():
				// the caster blocks on sends to sub until it closes it
				for range sub {
				}
				return
			}
		}
	}()
	return out, nil
}

// closed is true if the feed has finished or its context is done.
func (f *Feed) closed() bool {
	select {
	case <-f.done:
		return true
	case <-f.cast.Done():
		return true
	case <-f.ctx.Done():
		return true
	default:
		return false
	}
}

// Start begins reading words from r on a separate goroutine and publishes
// them in batches of up to batch words.
func (f *Feed) Start(r io.Reader, batch int) error {
	f.mx.Lock()
	defer f.mx.Unlock()
	if f.started {
		return ErrFeedStarted
	}
	f.started = true
	if batch <= 0 {
		batch = DefaultBatchSize
	}
	go f.run(r, batch)
	return nil
}

func (f *Feed) run(r io.Reader, size int) {
	defer close(f.done)
	defer f.cast.Close()
	batch := make([]string, 0, size)
	count := 0
	publish := func() bool {
		if len(batch) == 0 {
			return true
		}
		if f.ctx.Err() != nil {
			return false
		}
		count += len(batch)
		tracer().Debugf("feed: publishing batch of %d words", len(batch))
		ok := f.cast.Pub(batch)
		batch = make([]string, 0, size) // subscribers own published batches
		return ok
	}
	err := eachWord(r, func(w string) bool {
		batch = append(batch, w)
		if len(batch) < size {
			return true
		}
		return publish() && f.ctx.Err() == nil
	})
	if err == nil {
		publish()
		err = f.ctx.Err()
	}
	f.mx.Lock()
	f.words, f.err = count, err
	f.mx.Unlock()
	tracer().Infof("feed: %d words published", count)
}

// Done returns a channel which is closed when the feed has finished.
func (f *Feed) Done() <-chan struct{} {
	return f.done
}

// Err returns the error which stopped the feed, if any. It is valid after
// Done has been closed.
func (f *Feed) Err() error {
	f.mx.Lock()
	defer f.mx.Unlock()
	return f.err
}

// Count returns the number of words published. It is valid after Done has
// been closed.
func (f *Feed) Count() int {
	f.mx.Lock()
	defer f.mx.Unlock()
	return f.words
}
