package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
)

// JetStreamConfig locates the stream and durable consumer.
type JetStreamConfig struct {
	URL      string
	Stream   string
	Subject  string
	Durable  string
	AckWait  time.Duration
	FetchMax time.Duration
	// DedupeWindow is how long the stream remembers message ids.
	DedupeWindow time.Duration
}

// Released messages wait releaseBase, doubling per delivery up to releaseMax.
const (
	releaseBase = time.Second
	releaseMax  = 30 * time.Second
)

// JetStream is a queue backed by a NATS JetStream work-queue stream, for
// deployments where ingest and workers do not share a database.
type JetStream struct {
	nc     *nats.Conn
	js     nats.JetStreamContext
	sub    *nats.Subscription
	cfg    JetStreamConfig
	logger *slog.Logger
}

// DialJetStream connects, provisions the stream if needed, and binds a
// durable pull consumer.
func DialJetStream(cfg JetStreamConfig, logger *slog.Logger) (*JetStream, error) {
	if cfg.Stream == "" {
		cfg.Stream = "HOOKRELAY_WORK"
	}
	if cfg.Subject == "" {
		cfg.Subject = "hookrelay.work"
	}
	if cfg.Durable == "" {
		cfg.Durable = "hookrelay-workers"
	}
	if cfg.AckWait <= 0 {
		cfg.AckWait = 2 * time.Minute
	}
	if cfg.FetchMax <= 0 {
		cfg.FetchMax = time.Second
	}
	if cfg.DedupeWindow <= 0 {
		cfg.DedupeWindow = 2 * time.Minute
	}
	if logger == nil {
		logger = slog.Default()
	}

	nc, err := nats.Connect(cfg.URL, nats.RetryOnFailedConnect(true), nats.MaxReconnects(-1))
	if err != nil {
		return nil, fmt.Errorf("connect to nats: %w", err)
	}
	js, err := nc.JetStream()
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("init jetstream: %w", err)
	}

	q := &JetStream{nc: nc, js: js, cfg: cfg, logger: logger.With("component", "queue", "backend", "nats")}
	if err := q.provision(); err != nil {
		nc.Close()
		return nil, err
	}

	sub, err := js.PullSubscribe(cfg.Subject, cfg.Durable,
		nats.BindStream(cfg.Stream),
		nats.AckExplicit(),
		nats.AckWait(cfg.AckWait),
	)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("pull subscribe: %w", err)
	}
	q.sub = sub
	return q, nil
}

func (q *JetStream) provision() error {
	_, err := q.js.StreamInfo(q.cfg.Stream)
	if err == nil {
		return nil
	}
	if !errors.Is(err, nats.ErrStreamNotFound) {
		return fmt.Errorf("stream info: %w", err)
	}
	_, err = q.js.AddStream(&nats.StreamConfig{
		Name:      q.cfg.Stream,
		Subjects:  []string{q.cfg.Subject},
		Storage:    nats.FileStorage,
		Retention:  nats.WorkQueuePolicy,
		Duplicates: q.cfg.DedupeWindow,
	})
	if err != nil {
		return fmt.Errorf("create stream: %w", err)
	}
	q.logger.Info("provisioned stream", "stream", q.cfg.Stream, "subject", q.cfg.Subject)
	return nil
}

// Enqueue publishes eventID and waits for the stream to persist it. The
// stream drops a second publish of the same event version inside the
// dedupe window.
func (q *JetStream) Enqueue(ctx context.Context, eventID, version string) error {
	if eventID == "" {
		return errors.New("event id is empty")
	}
	ack, err := q.js.Publish(q.cfg.Subject, []byte(eventID), nats.Context(ctx), nats.MsgId(messageID(eventID, version)))
	if err != nil {
		return fmt.Errorf("publish %s: %w", eventID, err)
	}
	if ack.Duplicate {
		q.logger.Debug("duplicate publish dropped", "event_id", eventID, "version", version)
	}
	return nil
}

func messageID(eventID, version string) string {
	if version == "" {
		return eventID
	}
	return eventID + ":" + version
}

// releaseDelay spaces out redeliveries of a message that keeps being released.
func releaseDelay(attempt int) time.Duration {
	d := releaseBase
	for i := 1; i < attempt && d < releaseMax; i++ {
		d *= 2
	}
	return min(d, releaseMax)
}

// Receive fetches one message, waiting at most FetchMax.
func (q *JetStream) Receive(ctx context.Context) (Delivery, error) {
	fctx, cancel := context.WithTimeout(ctx, q.cfg.FetchMax)
	defer cancel()

	msgs, err := q.sub.Fetch(1, nats.Context(fctx))
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if errors.Is(err, nats.ErrTimeout) || errors.Is(err, context.DeadlineExceeded) {
			return nil, nil
		}
		return nil, fmt.Errorf("fetch: %w", err)
	}
	if len(msgs) == 0 {
		return nil, nil
	}

	msg := msgs[0]
	attempt := 1
	if md, err := msg.Metadata(); err == nil {
		attempt = int(md.NumDelivered)
	}
	return &natsDelivery{msg: msg, attempt: attempt}, nil
}

// Close drains the connection, flushing pending acks.
func (q *JetStream) Close() {
	if err := q.nc.Drain(); err != nil {
		q.nc.Close()
	}
}

type natsDelivery struct {
	msg     *nats.Msg
	attempt int
}

func (d *natsDelivery) EventID() string { return string(d.msg.Data) }
func (d *natsDelivery) Attempt() int    { return d.attempt }

func (d *natsDelivery) Ack(ctx context.Context) error {
	return d.msg.AckSync(nats.Context(ctx))
}

func (d *natsDelivery) Release(context.Context) error {
	return d.msg.NakWithDelay(releaseDelay(d.attempt))
}
