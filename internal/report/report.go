// Package report prints the human-readable progress of a benchmark run.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/kailas-cloud/searchspeed/internal/bytesize"
	"github.com/kailas-cloud/searchspeed/internal/domain/search/result"
)

// Printer writes one line per benchmark step. Write errors are kept and
// returned by Err; later writes are skipped once one fails.
type Printer struct {
	w   io.Writer
	err error
}

// New creates a printer over w.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Err returns the first write error.
func (p *Printer) Err() error { return p.err }

func (p *Printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	if _, err := fmt.Fprintf(p.w, format, args...); err != nil {
		p.err = fmt.Errorf("write report: %w", err)
	}
}

// CorpusSize prints the blob size, e.g. "11.62 MB".
func (p *Printer) CorpusSize(n uint64) {
	p.printf("%s\n", bytesize.Format(n))
}

// Inserted prints "inserted".
func (p *Printer) Inserted() { p.printf("inserted\n") }

// TimerStarted prints "timer started".
func (p *Printer) TimerStarted() { p.printf("timer started\n") }

// Querying prints "querying...".
func (p *Printer) Querying() { p.printf("querying...\n") }

// Results prints the hit count, then one line per hit: its id and its fields as compact JSON.
func (p *Printer) Results(hits []result.Result) {
	p.printf("results: %s\n", humanize.Comma(int64(len(hits))))
	for i := range hits {
		fields, err := json.Marshal(hits[i].Fields())
		if err != nil {
			p.err = fmt.Errorf("encode hit %s: %w", hits[i].ID(), err)
			return
		}
		p.printf("%s %s\n", hits[i].ID(), fields)
	}
}

// TimerEnded prints "timer ended".
func (p *Printer) TimerEnded() { p.printf("timer ended\n") }

// Elapsed prints the duration as unrounded float seconds.
func (p *Printer) Elapsed(d time.Duration) {
	p.printf("elapsed time: %s\n", strconv.FormatFloat(d.Seconds(), 'f', -1, 64))
}
