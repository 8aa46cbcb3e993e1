package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/couchcryptid/weatherkit-collector/internal/config"
	"github.com/couchcryptid/weatherkit-collector/internal/domain"
)

// Writer produces messages to a Kafka topic.
// It implements pipeline.BatchLoader.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured sink topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaSinkTopic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireAll,
		BatchSize:    cfg.BatchSize,
		BatchTimeout: cfg.BatchFlushInterval,
	}
	return &Writer{writer: w, logger: logger}
}

// LoadBatch serializes and publishes reports to the sink topic in a single
// WriteMessages call. Reports for the same location and dataset share a key
// and so land on the same partition.
func (w *Writer) LoadBatch(ctx context.Context, reports []domain.Report) error {
	if len(reports) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, len(reports))
	for i := range reports {
		msg, err := serializeToMessage(reports[i])
		if err != nil {
			return err
		}
		msgs[i] = msg
	}
	if err := w.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("write reports: %w", err)
	}
	w.logger.Debug("reports written", "count", len(msgs), "topic", w.writer.Topic)
	return nil
}

// Close flushes pending messages and closes the writer.
func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals a Report into a Kafka message.
func serializeToMessage(r domain.Report) (kafkago.Message, error) {
	data, err := json.Marshal(r.Fields)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize %s report: %w", r.Dataset, err)
	}
	headers := []kafkago.Header{
		{Key: "dataset", Value: []byte(r.Dataset)},
		{Key: "location", Value: []byte(r.Location.Name)},
		{Key: "processed_at", Value: []byte(r.ProcessedAt.Format(time.RFC3339))},
	}
	if r.Place != "" {
		headers = append(headers, kafkago.Header{Key: "place", Value: []byte(r.Place)})
	}
	return kafkago.Message{
		Key:     []byte(r.Key()),
		Value:   data,
		Headers: headers,
	}, nil
}
