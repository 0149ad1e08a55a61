// Package feed turns a stream of TNC2 packet lines (a log file, stdin, or a
// pipe from a receiver) into decoded results.
package feed

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"aprsdecode/aprs"
	"aprsdecode/deviceid"
	"aprsdecode/packet"

	"github.com/charmbracelet/log"
)

// maxLineLen bounds a single input line. APRS-IS lines are at most 512 bytes,
// log files with prefixes can be a bit longer.
const maxLineLen = 64 * 1024

// Result is one input line after decoding. Err is set when the header could
// not be decoded; Message and Packet are then zero.
type Result struct {
	Line     string
	Received time.Time
	Message  aprs.Message
	Packet   *packet.Packet
	Err      error
}

// Stats counts what a Reader has seen so far.
type Stats struct {
	Lines   int
	Skipped int // blank and comment lines
	Decoded int
	Failed  int // fatal header errors
	ByKind  map[aprs.PayloadKind]int
}

// Reader decodes packets line by line.
type Reader struct {
	src     io.Reader
	logger  *log.Logger
	devices *deviceid.Registry
	now     func() time.Time

	mu    sync.Mutex
	stats Stats
}

// NewReader creates a Reader. devices may be nil to skip device lookup.
func NewReader(src io.Reader, logger *log.Logger, devices *deviceid.Registry) *Reader {
	return &Reader{
		src:     src,
		logger:  logger,
		devices: devices,
		now:     time.Now,
		stats:   Stats{ByKind: make(map[aprs.PayloadKind]int)},
	}
}

// Run reads until EOF or until ctx is done, sending one Result per packet
// line. It closes out before returning.
func (r *Reader) Run(ctx context.Context, out chan<- Result) error {
	defer close(out)

	scanner := bufio.NewScanner(r.src)
	scanner.Buffer(make([]byte, 0, 4096), maxLineLen)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := strings.TrimRight(scanner.Text(), "\r\n")
		res, ok := r.decodeLine(line)
		if !ok {
			continue
		}

		select {
		case out <- res:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read packets: %w", err)
	}
	return nil
}

// decodeLine returns false for lines that carry no packet.
func (r *Reader) decodeLine(line string) (Result, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stats.Lines++

	// Ignore comments and empty lines
	if strings.TrimSpace(line) == "" || line[0] == '#' {
		r.stats.Skipped++
		return Result{}, false
	}

	res := Result{Line: line, Received: r.now()}

	msg, err := aprs.Decode(line)
	if err != nil {
		r.stats.Failed++
		r.logger.Warn("header decode failed", "err", err)
		res.Err = err
		return res, true
	}

	pkt := packet.FromMessage(msg)
	if r.devices != nil {
		if d, ok := r.devices.Lookup(msg.To.Call); ok {
			pkt.Device = d.String()
		}
	}

	r.stats.Decoded++
	r.stats.ByKind[msg.Data.Kind()]++
	r.logger.Debug("decoded packet", "from", pkt.Callsign, "kind", msg.Data.Kind())

	res.Message = msg
	res.Packet = pkt
	return res, true
}

// Stats returns a snapshot of the counters.
func (r *Reader) Stats() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.stats
	s.ByKind = make(map[aprs.PayloadKind]int, len(r.stats.ByKind))
	for k, v := range r.stats.ByKind {
		s.ByKind[k] = v
	}
	return s
}
