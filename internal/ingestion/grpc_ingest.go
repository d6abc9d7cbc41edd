package ingestion

import (
	"context"
	"fmt"

	"BeanLedger/internal/model"
)

// GRPCIngestService provides manual directive submission via gRPC. It is for
// admin operations and backfills, not for high-throughput ingestion (use
// NATS for that).
type GRPCIngestService struct {
	directiveChan chan<- model.Directive
}

func NewGRPCIngestService(directiveChan chan<- model.Directive) *GRPCIngestService {
	return &GRPCIngestService{directiveChan: directiveChan}
}

// SubmitDirective parses a wire JSON payload and queues it for booking.
// Returns the directive's kind for the caller's acknowledgement.
func (s *GRPCIngestService) SubmitDirective(ctx context.Context, payload []byte) (model.Kind, error) {
	if len(payload) == 0 {
		return 0, fmt.Errorf("empty payload")
	}

	d, err := ParseDirective(payload)
	if err != nil {
		return 0, err
	}

	select {
	case s.directiveChan <- d:
		return d.Body.Kind(), nil
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}
