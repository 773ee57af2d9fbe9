package solana

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gabapcia/blocktransfer/internal/chainstream"
	"github.com/gabapcia/blocktransfer/internal/pkg/logger"
	"github.com/gabapcia/blocktransfer/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/blocktransfer/internal/pkg/x/chflow"
	"github.com/gabapcia/blocktransfer/internal/transfer"
	"github.com/gorilla/websocket"
)

const (
	blockSubscribeMethod    = "blockSubscribe"
	blockNotificationMethod = "blockNotification"

	// subscribeRequestID identifies the single request sent on a connection.
	subscribeRequestID = 1
)

type (
	subscribeRequest struct {
		JSONRPC string `json:"jsonrpc"`
		ID      int    `json:"id"`
		Method  string `json:"method"`
		Params  []any  `json:"params"`
	}

	blockSubscribeConfig struct {
		Commitment                     transfer.Commitment `json:"commitment"`
		Encoding                       string              `json:"encoding"`
		TransactionDetails             string              `json:"transactionDetails"`
		ShowRewards                    bool                `json:"showRewards"`
		MaxSupportedTransactionVersion int                 `json:"maxSupportedTransactionVersion"`
	}

	subscribeResponse struct {
		ID     *int              `json:"id"`
		Result *uint64           `json:"result"`
		Error  *jsonrpc.RPCError `json:"error"`
	}

	// BlockNotificationMessage is a blockNotification frame.
	BlockNotificationMessage struct {
		Method string `json:"method"`
		Params struct {
			Subscription uint64 `json:"subscription"`
			Result       struct {
				Context struct {
					Slot uint64 `json:"slot"`
				} `json:"context"`
				Value struct {
					Slot uint64          `json:"slot"`
					Err  json.RawMessage `json:"err"`
				} `json:"value"`
			} `json:"result"`
		} `json:"params"`
	}
)

// decodeBlockEvent turns one frame into a stream element. Frames that are not
// well-formed block notifications become ErrStream elements.
func decodeBlockEvent(data []byte) chainstream.BlockEvent {
	var msg BlockNotificationMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return chainstream.BlockEvent{Err: fmt.Errorf("%w: decode frame: %w", chainstream.ErrStream, err)}
	}

	if msg.Method != blockNotificationMethod {
		return chainstream.BlockEvent{Err: fmt.Errorf("%w: unexpected method %q", chainstream.ErrStream, msg.Method)}
	}

	value := msg.Params.Result.Value
	if !isNull(value.Err) {
		return chainstream.BlockEvent{Err: fmt.Errorf("%w: slot %d: %s", chainstream.ErrStream, value.Slot, value.Err)}
	}

	return chainstream.BlockEvent{
		Notification: chainstream.BlockNotification{Slot: value.Slot},
	}
}

type subscriber struct {
	endpoint   string
	header     http.Header
	commitment transfer.Commitment
	dialer     *websocket.Dialer
	ackTimeout time.Duration
}

var _ chainstream.Subscriber = (*subscriber)(nil)

func (s *subscriber) Subscribe(ctx context.Context) (<-chan chainstream.BlockEvent, error) {
	conn, resp, err := s.dialer.DialContext(ctx, s.endpoint, s.header)
	if err != nil {
		if resp != nil {
			_ = resp.Body.Close()
			err = fmt.Errorf("%w (http status %d)", err, resp.StatusCode)
		}
		return nil, fmt.Errorf("%w: %w", chainstream.ErrConnection, err)
	}

	subscriptionID, err := s.subscribe(conn)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: %w", chainstream.ErrConnection, err)
	}

	logger.Debug(ctx, "block subscription acknowledged", "subscription.id", subscriptionID)

	eventsCh := make(chan chainstream.BlockEvent)
	readerDone := make(chan struct{})

	go s.read(ctx, conn, eventsCh, readerDone)
	go func() {
		select {
		case <-ctx.Done():
			closeMsg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
			_ = conn.WriteControl(websocket.CloseMessage, closeMsg, time.Now().Add(time.Second))
			_ = conn.Close()
		case <-readerDone:
		}
	}()

	return eventsCh, nil
}

// subscribe sends blockSubscribe and waits for the acknowledgement.
func (s *subscriber) subscribe(conn *websocket.Conn) (uint64, error) {
	req := subscribeRequest{
		JSONRPC: "2.0",
		ID:      subscribeRequestID,
		Method:  blockSubscribeMethod,
		Params: []any{
			"all",
			blockSubscribeConfig{
				Commitment:         s.commitment,
				Encoding:           "json",
				TransactionDetails: "none",
				ShowRewards:        false,
			},
		},
	}

	if err := conn.WriteJSON(req); err != nil {
		return 0, fmt.Errorf("send %s: %w", blockSubscribeMethod, err)
	}

	if err := conn.SetReadDeadline(time.Now().Add(s.ackTimeout)); err != nil {
		return 0, err
	}

	var ack subscribeResponse
	if err := conn.ReadJSON(&ack); err != nil {
		return 0, fmt.Errorf("read %s ack: %w", blockSubscribeMethod, err)
	}

	if ack.Error != nil {
		return 0, ack.Error
	}

	if ack.ID == nil || *ack.ID != subscribeRequestID || ack.Result == nil {
		return 0, errors.New("unexpected subscription ack")
	}

	if err := conn.SetReadDeadline(time.Time{}); err != nil {
		return 0, err
	}

	return *ack.Result, nil
}

// read forwards every frame until the connection fails or ctx is done. It
// owns eventsCh and closes it on return.
func (s *subscriber) read(ctx context.Context, conn *websocket.Conn, eventsCh chan<- chainstream.BlockEvent, done chan<- struct{}) {
	defer close(eventsCh)
	defer close(done)
	defer conn.Close()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() == nil {
				logger.Warn(ctx, "block subscription closed", "error", fmt.Errorf("%w: %w", chainstream.ErrStreamClosed, err))
			}
			return
		}

		if !chflow.Send(ctx, eventsCh, decodeBlockEvent(data)) {
			return
		}
	}
}

type config struct {
	dialer     *websocket.Dialer
	ackTimeout time.Duration
}

// SubscriberOption configures the block subscriber.
type SubscriberOption func(*config)

// WithDialer replaces the websocket dialer. Default: websocket.DefaultDialer.
func WithDialer(d *websocket.Dialer) SubscriberOption {
	return func(c *config) {
		c.dialer = d
	}
}

// WithAckTimeout bounds the wait for the subscription acknowledgement.
// Default: 10 seconds.
func WithAckTimeout(d time.Duration) SubscriberOption {
	return func(c *config) {
		c.ackTimeout = d
	}
}

// NewSubscriber creates a block subscriber for the wss endpoint. authToken is
// sent in the authHeader header of the upgrade request, never in a payload.
//
// blockSubscribe rejects the processed commitment, so anything below confirmed
// subscribes at confirmed.
func NewSubscriber(endpoint, authHeader, authToken string, commitment transfer.Commitment, opts ...SubscriberOption) *subscriber {
	cfg := config{
		dialer:     websocket.DefaultDialer,
		ackTimeout: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	header := make(http.Header)
	header.Set(authHeader, authToken)

	if !commitment.Reaches(transfer.CommitmentConfirmed) {
		commitment = transfer.CommitmentConfirmed
	}

	return &subscriber{
		endpoint:   endpoint,
		header:     header,
		commitment: commitment,
		dialer:     cfg.dialer,
		ackTimeout: cfg.ackTimeout,
	}
}
