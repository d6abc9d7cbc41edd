package ingestion

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/nats-io/nats.go/jetstream"

	"BeanLedger/internal/stream"
)

// OutboundPublisher publishes booked directives to NATS for downstream
// consumers (reporting, projections). Records are published after the
// booking stream emits them; subjects follow bean.ledger.booked.{kind}.
type OutboundPublisher struct {
	js        jetstream.JetStream
	inputChan <-chan stream.Booked
}

// bookedWire is the outbound envelope: the booked directive in wire JSON
// plus run/sequence identity and any booking error.
type bookedWire struct {
	RunID     string          `json:"run_id"`
	Sequence  int64           `json:"sequence"`
	Directive json.RawMessage `json:"directive"`
	Error     string          `json:"error,omitempty"`
}

func NewOutboundPublisher(js jetstream.JetStream, inputChan <-chan stream.Booked) *OutboundPublisher {
	return &OutboundPublisher{
		js:        js,
		inputChan: inputChan,
	}
}

// Run starts the outbound publisher loop.
func (op *OutboundPublisher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case rec, ok := <-op.inputChan:
			if !ok {
				return nil
			}

			if err := op.publish(ctx, rec); err != nil {
				log.Printf("WARN: outbound publish failed seq=%d: %v", rec.Sequence, err)
				// Non-fatal: downstream consumers can query Postgres directly
			}
		}
	}
}

func (op *OutboundPublisher) publish(ctx context.Context, rec stream.Booked) error {
	directive, err := EncodeDirective(rec.Directive)
	if err != nil {
		return fmt.Errorf("encode directive: %w", err)
	}

	wire := bookedWire{
		RunID:     rec.RunID.String(),
		Sequence:  rec.Sequence,
		Directive: directive,
	}
	if rec.Err != nil {
		wire.Error = rec.Err.Error()
	}

	data, err := json.Marshal(&wire)
	if err != nil {
		return fmt.Errorf("marshal booked record: %w", err)
	}

	subject := fmt.Sprintf("bean.ledger.booked.%s", rec.Directive.Body.Kind())
	_, err = op.js.Publish(ctx, subject, data)
	return err
}

// EnsureOutboundStream creates the outbound booked-directives stream.
func EnsureOutboundStream(ctx context.Context, js jetstream.JetStream) error {
	_, err := js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:      "BEAN_LEDGER_BOOKED",
		Subjects:  []string{"bean.ledger.booked.>"},
		Storage:   jetstream.FileStorage,
		Retention: jetstream.LimitsPolicy,
		MaxAge:    72 * time.Hour,
		Replicas:  1,
	})
	if err != nil {
		return fmt.Errorf("create outbound stream: %w", err)
	}
	log.Println("INFO: ensured outbound stream BEAN_LEDGER_BOOKED")
	return nil
}
