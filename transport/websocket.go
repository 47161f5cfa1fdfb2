package transport

import (
	"context"
	"time"

	"github.com/gorilla/websocket"
	"github.com/jd3nn1s/ifuel"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultURL = "ws://localhost:7071/ifuel"

	handshakeTimeout = 5 * time.Second
)

// Callbacks are invoked from the goroutine running Start, in order.
type Callbacks struct {
	Connected    func()
	Sample       func(ifuel.RawSample)
	Disconnected func(error)
}

type Conn interface {
	ReadMessage() (messageType int, p []byte, err error)
	Close() error
}

// to allow testing
var dial = func(url string) (Conn, error) {
	dialer := websocket.Dialer{
		HandshakeTimeout: handshakeTimeout,
	}
	conn, _, err := dialer.Dial(url, nil)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// Client reads one JSON telemetry sample per websocket message.
type Client struct {
	URL string

	cb   Callbacks
	conn Conn
}

func NewClient(url string, cb Callbacks) *Client {
	return &Client{
		URL: url,
		cb:  cb,
	}
}

func (c *Client) Name() string {
	return "websocket"
}

func (c *Client) Open() error {
	conn, err := dial(c.URL)
	if err != nil {
		return errors.Wrapf(err, "unable to connect to %s", c.URL)
	}
	c.conn = conn
	log.WithField("url", c.URL).Info("telemetry connected")
	return nil
}

func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	conn := c.conn
	c.conn = nil
	return conn.Close()
}

func (c *Client) Start(ctx context.Context) error {
	if c.conn == nil {
		return errors.New("websocket not connected")
	}
	conn := c.conn
	if c.cb.Connected != nil {
		c.cb.Connected()
	}

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			if err := conn.Close(); err != nil {
				log.WithField("err", err).Warn("unable to close websocket after context")
			}
		case <-stop:
		}
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				err = ctx.Err()
			}
			log.WithField("err", err).Info("telemetry disconnected")
			if c.cb.Disconnected != nil {
				c.cb.Disconnected(err)
			}
			return errors.Wrap(err, "websocket read")
		}
		sample, err := ifuel.ParseSample(data)
		if err != nil {
			log.WithField("err", err).Warn("discarding telemetry message")
			ifuel.SamplesDiscarded.WithLabelValues("malformed").Inc()
			continue
		}
		if c.cb.Sample != nil {
			c.cb.Sample(sample)
		}
	}
}
