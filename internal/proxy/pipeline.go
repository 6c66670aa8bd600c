package proxy

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/semaphore"

	"github.com/yourusername/shadowproxy/internal/logging"
	"github.com/yourusername/shadowproxy/internal/metrics"
	"github.com/yourusername/shadowproxy/pkg/shadowhttp/http11"
)

// PipelineItem is the unit handed from a connection task to the analyzer.
// It is owned exclusively by the pipeline for the duration of its transit.
type PipelineItem struct {
	ID                 string
	RawRequest         []byte
	RawPrimaryResponse []byte
}

// Pipeline is the bounded hand-off channel plus the analyzer supervisor
// that drains it. Producers (connection handlers) send and, when the
// channel is full, suspend until capacity frees up — backpressure, not
// drops. The supervisor spawns one task per item, bounded by a weighted
// semaphore standing in for the analyzer worker pool.
type Pipeline struct {
	ShadowTarget string
	Sink         Sink

	origin *OriginClient
	items  chan PipelineItem
	sem    *semaphore.Weighted
	wg     sync.WaitGroup

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

// NewPipeline builds a Pipeline with the given channel capacity and
// analyzer worker count.
func NewPipeline(shadowTarget string, origin *OriginClient, sink Sink, capacity, workers int) *Pipeline {
	ctx, cancel := context.WithCancel(context.Background())
	return &Pipeline{
		ShadowTarget: shadowTarget,
		Sink:         sink,
		origin:       origin,
		items:        make(chan PipelineItem, capacity),
		sem:          semaphore.NewWeighted(int64(workers)),
		ctx:          ctx,
		cancel:       cancel,
		done:         make(chan struct{}),
	}
}

// Submit hands (rawRequest, rawPrimaryResponse) to the pipeline, stamping
// it with a fresh comparison ID at this, the hand-off point. It blocks if
// the channel is at capacity — the caller has already responded to its
// client by the time this is invoked, so blocking here never affects
// client latency. The generated ID is returned so the caller can log it
// alongside the connection it came from.
func (p *Pipeline) Submit(rawRequest, rawPrimaryResponse []byte) string {
	id := uuid.NewString()
	select {
	case p.items <- PipelineItem{ID: id, RawRequest: rawRequest, RawPrimaryResponse: rawPrimaryResponse}:
	case <-p.ctx.Done():
	}
	return id
}

// Run is the analyzer supervisor loop: it receives items off the channel
// and spawns one task per item without itself blocking, so a full worker
// pool never stalls the receive side of the hand-off channel. Each spawned
// task acquires its own semaphore slot, so at most `workers` tasks run
// concurrently — the acquire can block the task, never the supervisor.
// Run returns once the context is cancelled and every spawned task has
// returned.
func (p *Pipeline) Run() {
	for {
		select {
		case item := <-p.items:
			p.wg.Add(1)
			go p.runTask(item)
		case <-p.ctx.Done():
			p.wg.Wait()
			close(p.done)
			return
		}
	}
}

// runTask acquires a worker slot and analyzes one item. If the context is
// cancelled before a slot frees up, the item is dropped without running —
// Stop is already tearing the pipeline down at that point.
func (p *Pipeline) runTask(item PipelineItem) {
	defer p.wg.Done()
	if err := p.sem.Acquire(p.ctx, 1); err != nil {
		return
	}
	defer p.sem.Release(1)
	p.analyze(item)
}

// Stop cancels the pipeline context and waits for Run to drain in-flight
// analyzer tasks.
func (p *Pipeline) Stop() {
	p.cancel()
	<-p.done
}

// analyze is the per-item analyzer task: call the shadow origin, decode
// request + both responses independently, and emit exactly one
// ComparisonRecord. Ordering within a task is request, then primary,
// then shadow, per the canonical design; there is no ordering guarantee
// between tasks.
func (p *Pipeline) analyze(item PipelineItem) {
	rec := ComparisonRecord{ID: item.ID}

	req, err := http11.DecodeRequest(item.RawRequest)
	rec.DecodedRequest = req
	rec.RequestErr = err

	primary, err := http11.DecodeResponse(item.RawPrimaryResponse)
	rec.DecodedPrimary = primary
	rec.PrimaryErr = err

	shadowRaw, shadowCallErr := p.origin.Call(p.ShadowTarget, item.RawRequest)
	rec.ShadowCallErr = shadowCallErr
	if shadowCallErr == nil {
		shadow, err := http11.DecodeResponse(shadowRaw)
		rec.DecodedShadow = shadow
		rec.ShadowErr = err
	}

	metrics.ShadowRequestsTotal.WithLabelValues(outcomeLabel(shadowCallErr)).Inc()
	metrics.ComparisonsTotal.WithLabelValues(
		boolLabel(rec.PrimaryErr == nil),
		boolLabel(rec.ShadowCallErr == nil && rec.ShadowErr == nil),
	).Inc()

	if slotErr := aggregateSlotErrors(rec); slotErr != nil {
		logging.TimedMsg("comparison " + rec.ID + " recorded with errors: " + slotErr.Error())
	} else {
		logging.TimedMsg("comparison " + rec.ID + " recorded")
	}

	if p.Sink != nil {
		p.Sink.Emit(rec)
	}
}

// aggregateSlotErrors folds whichever of the four independent failures
// occurred (request decode, primary decode, shadow call, shadow decode) into
// a single error for one log line, instead of separate ones per record.
func aggregateSlotErrors(rec ComparisonRecord) error {
	var merr *multierror.Error
	if rec.RequestErr != nil {
		merr = multierror.Append(merr, rec.RequestErr)
	}
	if rec.PrimaryErr != nil {
		merr = multierror.Append(merr, rec.PrimaryErr)
	}
	if rec.ShadowCallErr != nil {
		merr = multierror.Append(merr, rec.ShadowCallErr)
	}
	if rec.ShadowErr != nil {
		merr = multierror.Append(merr, rec.ShadowErr)
	}
	return merr.ErrorOrNil()
}

func outcomeLabel(err error) string {
	if err == nil {
		return "ok"
	}
	return "error"
}

func boolLabel(ok bool) string {
	if ok {
		return "true"
	}
	return "false"
}
