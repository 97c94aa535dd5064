package monitoring

import (
	"context"
	"net/http"
	"runtime"
	"strings"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
)

const (
	LayerRepository = "repositories"
	LayerService    = "services"
	LayerDelivery   = "deliveries"
	LayerGateway    = "weavr"
	LayerUnknown    = "unknown"
)

type Monitor struct {
	ctx         context.Context
	segmentName string

	// layer marks where this monitor sits: repository, service, delivery
	// or the remote gateway
	layer string

	start time.Time

	segment *newrelic.Segment
}

type initOptions struct {
	layer       string
	segmentName string
}

type InitOption func(*initOptions)

func WithLayer(layer string) InitOption {
	return func(o *initOptions) {
		o.layer = layer
	}
}

func WithSegmentName(segmentName string) InitOption {
	return func(o *initOptions) {
		o.segmentName = segmentName
	}
}

// callerSegment derives the segment name and layer from the caller two
// frames up, so monitoring.New(ctx) works without arguments.
func callerSegment() (name, layer string) {
	pc, file, _, ok := runtime.Caller(2)
	if !ok {
		pc = 0
	}

	name = LayerUnknown
	if fn := runtime.FuncForPC(pc); fn != nil {
		name = getSegmentName(fn.Name())
	}

	switch {
	case strings.Contains(file, LayerRepository):
		layer = LayerRepository
	case strings.Contains(file, LayerService):
		layer = LayerService
	case strings.Contains(file, LayerDelivery):
		layer = LayerDelivery
	case strings.Contains(file, LayerGateway):
		layer = LayerGateway
	default:
		layer = LayerUnknown
	}

	return name, layer
}

func New(ctx context.Context, opts ...InitOption) *Monitor {
	fOpts := &initOptions{}
	for _, opt := range opts {
		opt(fOpts)
	}

	if fOpts.segmentName == "" {
		fOpts.segmentName, fOpts.layer = callerSegment()
	}

	segment := newrelic.FromContext(ctx).StartSegment(fOpts.segmentName)
	if segment != nil {
		segment.AddAttribute("layer", fOpts.layer)
	}

	return &Monitor{
		ctx:   ctx,
		layer: fOpts.layer,
		start: time.Now(),

		segmentName: fOpts.segmentName,
		segment:     segment,
	}
}

// NewMiddlewareRoundTripper instruments outbound HTTP calls; the nr txn is
// read from the request context.
func NewMiddlewareRoundTripper(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}

	return newrelic.NewRoundTripper(next)
}
