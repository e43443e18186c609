package kafka

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/IBM/sarama"
	log "github.com/sirupsen/logrus"
)

func noopHandler(context.Context, *sarama.ConsumerMessage) error { return nil }

type mockConsumerGroup struct {
	consumeFn func(context.Context, []string, sarama.ConsumerGroupHandler) error
	errorsCh  chan error
	closeFn   func() error
}

func (m *mockConsumerGroup) Consume(ctx context.Context, topics []string, handler sarama.ConsumerGroupHandler) error {
	if m.consumeFn != nil {
		return m.consumeFn(ctx, topics, handler)
	}
	return nil
}

func (m *mockConsumerGroup) Errors() <-chan error {
	return m.errorsCh
}

func (m *mockConsumerGroup) Close() error {
	if m.closeFn != nil {
		return m.closeFn()
	}
	if m.errorsCh != nil {
		close(m.errorsCh)
	}
	return nil
}

func (m *mockConsumerGroup) Pause(map[string][]int32)  {}
func (m *mockConsumerGroup) Resume(map[string][]int32) {}
func (m *mockConsumerGroup) PauseAll()                 {}
func (m *mockConsumerGroup) ResumeAll()                {}

type mockSession struct {
	ctx    context.Context
	marked []*sarama.ConsumerMessage
}

func (m *mockSession) Claims() map[string][]int32               { return nil }
func (m *mockSession) MemberID() string                         { return "member" }
func (m *mockSession) GenerationID() int32                      { return 1 }
func (m *mockSession) MarkOffset(string, int32, int64, string)  {}
func (m *mockSession) Commit()                                  {}
func (m *mockSession) ResetOffset(string, int32, int64, string) {}
func (m *mockSession) Context() context.Context                 { return m.ctx }
func (m *mockSession) MarkMessage(msg *sarama.ConsumerMessage, _ string) {
	m.marked = append(m.marked, msg)
}

type mockClaim struct {
	topic     string
	partition int32
	messages  chan *sarama.ConsumerMessage
}

func (m *mockClaim) Topic() string                            { return m.topic }
func (m *mockClaim) Partition() int32                         { return m.partition }
func (m *mockClaim) InitialOffset() int64                     { return 0 }
func (m *mockClaim) HighWaterMarkOffset() int64               { return 0 }
func (m *mockClaim) Messages() <-chan *sarama.ConsumerMessage { return m.messages }

func TestNewConsumerErrors(t *testing.T) {
	if _, err := NewConsumer([]string{"invalid-broker:9092"}, "group", []string{"topic"}, func(context.Context, *sarama.ConsumerMessage) error { return nil }); err == nil {
		t.Fatal("expected new consumer error")
	}
}

func TestConsumerStartStop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	consumeCalls := 0
	errorsCh := make(chan error, 1)
	group := &mockConsumerGroup{
		errorsCh: errorsCh,
		consumeFn: func(_ context.Context, _ []string, _ sarama.ConsumerGroupHandler) error {
			consumeCalls++
			cancel()
			return nil
		},
		closeFn: func() error {
			close(errorsCh)
			return nil
		},
	}

	consumer := newConsumer(group, []string{DefaultProductsReplyTopic}, noopHandler, log.WithField("test", "consumer"))

	errorsCh <- errors.New("background error")
	if err := consumer.Start(ctx); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if err := consumer.Stop(); err != nil {
		t.Fatalf("stop failed: %v", err)
	}
	if consumeCalls == 0 {
		t.Fatal("expected consume call")
	}
}

func TestConsumerStopError(t *testing.T) {
	errorsCh := make(chan error)
	group := &mockConsumerGroup{errorsCh: errorsCh, closeFn: func() error {
		close(errorsCh)
		return errors.New("close failed")
	}}
	consumer := newConsumer(group, nil, noopHandler, log.WithField("test", "stop"))
	if err := consumer.Stop(); err == nil {
		t.Fatal("expected stop error")
	}
}

func TestConsumerStopAfterGroupClosedWithLiveContext(t *testing.T) {
	// Контекст жив, а группа уже закрыта: Consume сразу возвращает ErrClosedConsumerGroup.
	var (
		mu     sync.Mutex
		closed bool
		calls  int
	)
	errorsCh := make(chan error)
	group := &mockConsumerGroup{
		errorsCh: errorsCh,
		consumeFn: func(ctx context.Context, _ []string, _ sarama.ConsumerGroupHandler) error {
			mu.Lock()
			calls++
			isClosed := closed
			mu.Unlock()
			if isClosed {
				return sarama.ErrClosedConsumerGroup
			}
			select {
			case <-ctx.Done():
			case <-time.After(5 * time.Millisecond):
			}
			return nil
		},
		closeFn: func() error {
			mu.Lock()
			closed = true
			mu.Unlock()
			close(errorsCh)
			return nil
		},
	}

	consumer := newConsumer(group, []string{DefaultProductsReplyTopic}, noopHandler, log.WithField("test", "closed-group"))
	if err := consumer.Start(context.Background()); err != nil {
		t.Fatalf("start failed: %v", err)
	}

	stopped := make(chan error, 1)
	go func() { stopped <- consumer.Stop() }()

	select {
	case err := <-stopped:
		if err != nil {
			t.Fatalf("stop failed: %v", err)
		}
	case <-time.After(time.Second):
		mu.Lock()
		defer mu.Unlock()
		t.Fatalf("Stop did not return, Consume called %d times", calls)
	}
}

func TestConsumerSetupMarksAssigned(t *testing.T) {
	consumer := newConsumer(&mockConsumerGroup{}, nil, noopHandler, log.WithField("test", "setup"))

	if err := consumer.CheckAssigned(context.Background()); !errors.Is(err, ErrConsumerNotAssigned) {
		t.Fatalf("expected ErrConsumerNotAssigned before setup, got %v", err)
	}
	select {
	case <-consumer.Assigned():
		t.Fatal("assigned must not be closed before setup")
	default:
	}

	session := &mockSession{ctx: context.Background()}
	if err := consumer.Setup(session); err != nil {
		t.Fatalf("setup should return nil: %v", err)
	}
	// повторная сессия после rebalance
	if err := consumer.Setup(session); err != nil {
		t.Fatalf("second setup should return nil: %v", err)
	}
	if err := consumer.Cleanup(session); err != nil {
		t.Fatalf("cleanup should return nil: %v", err)
	}

	select {
	case <-consumer.Assigned():
	default:
		t.Fatal("assigned must be closed after setup")
	}
	if err := consumer.CheckAssigned(context.Background()); err != nil {
		t.Fatalf("expected ready consumer, got %v", err)
	}
}

func TestConsumeClaim(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	consumer := newConsumer(&mockConsumerGroup{}, nil, noopHandler, log.WithField("test", "claim"))

	session := &mockSession{ctx: ctx}
	claim := &mockClaim{topic: "topic", partition: 0, messages: make(chan *sarama.ConsumerMessage, 2)}
	claim.messages <- &sarama.ConsumerMessage{Topic: "topic", Partition: 0, Offset: 1, Key: []byte("k"), Value: []byte("v")}
	close(claim.messages)

	if err := consumer.ConsumeClaim(session, claim); err != nil {
		t.Fatalf("ConsumeClaim failed: %v", err)
	}
	if len(session.marked) != 1 {
		t.Fatalf("expected one marked message, got %d", len(session.marked))
	}
}

func TestConsumeClaimFailedHandler(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	failing := func(context.Context, *sarama.ConsumerMessage) error { return errors.New("failed") }
	consumer := newConsumer(&mockConsumerGroup{}, nil, failing, log.WithField("test", "claim-fail"))

	session := &mockSession{ctx: ctx}
	claim := &mockClaim{topic: "topic", partition: 0, messages: make(chan *sarama.ConsumerMessage, 1)}
	claim.messages <- &sarama.ConsumerMessage{Topic: "topic", Partition: 0, Offset: 1, Key: []byte("k"), Value: []byte("v")}
	close(claim.messages)

	if err := consumer.ConsumeClaim(session, claim); err != nil {
		t.Fatalf("ConsumeClaim failed: %v", err)
	}
	if len(session.marked) != 0 {
		t.Fatalf("failed message should not be marked, got %d", len(session.marked))
	}
}

func TestConsumeClaimRoutesRepliesToProductClient(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client, mockProducer := newTestProductClient(t)
	consumer := newConsumer(&mockConsumerGroup{}, []string{DefaultProductsReplyTopic}, client.HandleReply, log.WithField("test", "claim-replies"))

	session := &mockSession{ctx: ctx}
	claim := &mockClaim{topic: DefaultProductsReplyTopic, messages: make(chan *sarama.ConsumerMessage, 1)}
	claim.messages <- replyMessage(t, "nobody-waits", ProductValidationReply{})
	close(claim.messages)

	if err := consumer.ConsumeClaim(session, claim); err != nil {
		t.Fatalf("ConsumeClaim failed: %v", err)
	}
	if len(session.marked) != 1 {
		t.Fatalf("late reply should be acknowledged, got %d marked", len(session.marked))
	}
	if err := mockProducer.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestConsumeClaimStopsOnContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	consumer := newConsumer(&mockConsumerGroup{}, nil, noopHandler, log.WithField("test", "claim-stop"))
	session := &mockSession{ctx: ctx}
	claim := &mockClaim{topic: "topic", partition: 0, messages: make(chan *sarama.ConsumerMessage)}

	done := make(chan struct{})
	go func() {
		_ = consumer.ConsumeClaim(session, claim)
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("ConsumeClaim did not stop after context cancellation")
	}
}
