package feed

import (
	"context"
	"io"

	"aprsdecode/deviceid"
	"aprsdecode/packet"

	"github.com/charmbracelet/log"
)

// Client feeds decoded packets to the map UI.
type Client struct {
	reader *Reader
	conn   io.Closer
	logger *log.Logger
	ctx    context.Context
	cancel context.CancelFunc
}

// NewClient wraps src. Close closes src when it is an io.Closer.
func NewClient(ctx context.Context, src io.Reader, logger *log.Logger, devices *deviceid.Registry) *Client {
	ctx, cancel := context.WithCancel(ctx)
	c := &Client{
		reader: NewReader(src, logger, devices),
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}
	if closer, ok := src.(io.Closer); ok {
		c.conn = closer
	}
	return c
}

// Start begins the packet-reading loop. Packets whose header failed are
// dropped, everything else goes down packetChan. packetChan is closed when
// the input ends. This function should be run as a goroutine.
func (c *Client) Start(packetChan chan<- *packet.Packet) {
	results := make(chan Result)

	go func() {
		if err := c.reader.Run(c.ctx, results); err != nil && c.ctx.Err() == nil {
			c.logger.Error("packet input stopped", "err", err)
		}
	}()

	defer close(packetChan)
	for res := range results {
		if res.Err != nil {
			continue
		}
		select {
		case packetChan <- res.Packet:
		case <-c.ctx.Done():
			// Let Run observe the cancellation and close results.
			for range results {
			}
			return
		}
	}
}

// Stats returns the reader counters.
func (c *Client) Stats() Stats {
	return c.reader.Stats()
}

// Close stops the reader and closes the input.
func (c *Client) Close() {
	c.cancel()
	if c.conn != nil {
		c.conn.Close()
	}
}
