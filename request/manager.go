package request

import (
	"context"
	"log"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/milk9111/gridpath/common"
	"github.com/milk9111/gridpath/pathfinding"
)

// Finder runs one search. *pathfinding.Engine satisfies it.
type Finder interface {
	FindPath(start, end common.Vec3, algo pathfinding.Algorithm) pathfinding.Result
}

// Callback receives a request's waypoints exactly once.
type Callback func(waypoints []common.Vec3, success bool)

type Response struct {
	Waypoints []common.Vec3
	Success   bool
	Result    pathfinding.Result
}

type pathRequest struct {
	ctx      context.Context
	start    common.Vec3
	end      common.Vec3
	algo     pathfinding.Algorithm
	callback Callback
	done     chan Response
	queued   time.Time
}

// Manager queues path requests and runs them one at a time. A request's
// search starts as soon as nothing else is in flight; its result is handed
// back on the following Update, after which the next queued search starts.
type Manager struct {
	mu      sync.Mutex
	finder  Finder
	queue   []*pathRequest
	current *pathRequest
	result  pathfinding.Result
}

func NewManager(finder Finder) *Manager {
	return &Manager{finder: finder}
}

// SetFinder swaps the engine used for searches that have not started yet.
func (m *Manager) SetFinder(finder Finder) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.finder = finder
}

func (m *Manager) RequestPath(start, end common.Vec3, algo pathfinding.Algorithm, callback Callback) {
	m.enqueue(&pathRequest{
		ctx:      context.Background(),
		start:    start,
		end:      end,
		algo:     algo,
		callback: callback,
	})
}

// Submit queues a request and returns a channel that receives its response.
// ctx parents the search span; it does not cancel the search.
func (m *Manager) Submit(ctx context.Context, start, end common.Vec3, algo pathfinding.Algorithm) <-chan Response {
	done := make(chan Response, 1)
	m.enqueue(&pathRequest{
		ctx:   ctx,
		start: start,
		end:   end,
		algo:  algo,
		done:  done,
	})
	return done
}

// Pending counts queued requests plus the one awaiting delivery.
func (m *Manager) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := len(m.queue)
	if m.current != nil {
		n++
	}
	return n
}

// Update delivers the finished request, if any, then starts the next one.
// It reports whether a request was delivered.
func (m *Manager) Update() bool {
	m.mu.Lock()
	r, res := m.current, m.result
	m.current = nil
	m.result = pathfinding.Result{}
	m.mu.Unlock()

	if r == nil {
		return false
	}
	deliver(r, res)

	m.mu.Lock()
	m.tryProcessNext()
	m.mu.Unlock()
	return true
}

// Run calls Update every interval until ctx is done.
func (m *Manager) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			m.Update()
		}
	}
}

func (m *Manager) enqueue(r *pathRequest) {
	r.queued = time.Now()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, r)
	m.tryProcessNext()
}

// tryProcessNext must be called with m.mu held.
func (m *Manager) tryProcessNext() {
	defer func() { queueDepth.Set(float64(len(m.queue))) }()

	if m.current != nil || len(m.queue) == 0 {
		return
	}

	r := m.queue[0]
	m.queue[0] = nil
	m.queue = m.queue[1:]

	m.current = r
	m.result = m.search(r)
}

func (m *Manager) search(r *pathRequest) pathfinding.Result {
	algo := r.algo.String()
	_, span := tracer.Start(r.ctx, "request.Manager.search",
		trace.WithAttributes(
			attribute.String("algorithm", algo),
			attribute.Float64Slice("start", []float64{r.start.X, r.start.Y, r.start.Z}),
			attribute.Float64Slice("end", []float64{r.end.X, r.end.Y, r.end.Z}),
		),
	)
	defer span.End()

	began := time.Now()
	res := m.finder.FindPath(r.start, r.end, r.algo)
	searchDuration.WithLabelValues(algo).Observe(time.Since(began).Seconds())
	searchExpanded.WithLabelValues(algo).Observe(float64(res.Expanded))

	span.SetAttributes(
		attribute.Bool("success", res.Success),
		attribute.Int("cost", res.Cost),
		attribute.Int("expanded", res.Expanded),
		attribute.Int("waypoints", len(res.Waypoints)),
	)
	if !res.Success {
		span.RecordError(res.Err)
		span.SetStatus(codes.Error, "no path")
		log.Printf("PathRequestManager: %s search (%.2f, %.2f) -> (%.2f, %.2f) failed: %v",
			algo, r.start.X, r.start.Z, r.end.X, r.end.Z, res.Err)
	} else {
		span.SetStatus(codes.Ok, "path found")
	}
	return res
}

func deliver(r *pathRequest, res pathfinding.Result) {
	requestsTotal.WithLabelValues(r.algo.String(), outcome(res.Success)).Inc()
	requestWait.Observe(time.Since(r.queued).Seconds())

	if r.callback != nil {
		r.callback(res.Waypoints, res.Success)
	}
	if r.done != nil {
		r.done <- Response{Waypoints: res.Waypoints, Success: res.Success, Result: res}
		close(r.done)
	}
}
