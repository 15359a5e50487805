package usecase

import "time"

// OutboxStatus — статус записи outbox.
type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

// OutboxEventType — тип события outbox.
type OutboxEventType string

const (
	OrderCreated OutboxEventType = "order_created"
)

// OutboxEvent — событие, записанное в одной транзакции с заказом
// и асинхронно доставляемое в Kafka воркером.
type OutboxEvent struct {
	ID          int64
	EventID     string // UUID
	EventType   OutboxEventType
	OrderID     string
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// WriteRawMessageReq — запрос на публикацию готового payload в Kafka.
type WriteRawMessageReq struct {
	OrderID string
	Payload []byte
}

func NewOutboxEvent(eventID string, eventType OutboxEventType, orderID string, payload []byte) *OutboxEvent {
	return &OutboxEvent{
		EventID:   eventID,
		EventType: eventType,
		OrderID:   orderID,
		Payload:   payload,
		Status:    Pending,
		CreatedAt: time.Now(),
	}
}

func NewWriteRawMessageReq(orderID string, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		OrderID: orderID,
		Payload: payload,
	}
}
