// Package dataset turns a raw email event log into the monthly series
// the model is fitted on: filter to one sender's traffic towards one
// external address, aggregate payload sizes per calendar month, scale,
// and split chronologically.
package dataset

import (
	"encoding/csv"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	errs "github.com/mailstat/smgp/internal/errors"
)

// Event is one row of the raw log.
type Event struct {
	Time      time.Time
	Sender    string
	Recipient string
	// Payload size in bytes.
	Size float64
}

// Columns names the log's columns. The log's first record is the
// header and is used to locate them.
type Columns struct {
	Time      string
	Sender    string
	Recipient string
	Size      string
}

type columnIndex struct {
	time, sender, recipient, size int
}

func (c Columns) resolve(header []string) (columnIndex, error) {
	idx := columnIndex{-1, -1, -1, -1}
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case c.Time:
			idx.time = i
		case c.Sender:
			idx.sender = i
		case c.Recipient:
			idx.recipient = i
		case c.Size:
			idx.size = i
		}
	}
	for _, m := range []struct {
		name string
		at   int
	}{
		{c.Time, idx.time},
		{c.Sender, idx.sender},
		{c.Recipient, idx.recipient},
		{c.Size, idx.size},
	} {
		if m.at < 0 {
			return idx, errs.Data("column %q not found in header", m.name)
		}
	}
	return idx, nil
}

// Timestamp layouts accepted in the log, tried in order.
var timeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006 15:04:05",
	time.RFC3339,
}

func parseTime(s string) (time.Time, error) {
	var err error
	for _, layout := range timeLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// Load parses the event log. Unparseable records fail fast with a data
// error naming the offending line; nothing is skipped silently.
func Load(r io.Reader, cols Columns) ([]Event, error) {
	rd := csv.NewReader(r)
	header, err := rd.Read()
	if err != nil {
		return nil, errs.Data("empty input log: %v", err)
	}
	idx, err := cols.resolve(header)
	if err != nil {
		return nil, err
	}

	var events []Event
	for line := 2; ; line++ {
		record, err := rd.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errs.Data("line %d: %v", line, err)
		}
		t, err := parseTime(record[idx.time])
		if err != nil {
			return nil, errs.Data("line %d: bad timestamp %q: %v",
				line, record[idx.time], err)
		}
		size, err := strconv.ParseFloat(record[idx.size], 64)
		if err != nil {
			return nil, errs.Data("line %d: bad size %q: %v",
				line, record[idx.size], err)
		}
		events = append(events, Event{
			Time:      t,
			Sender:    record[idx.sender],
			Recipient: record[idx.recipient],
			Size:      size,
		})
	}
	if len(events) == 0 {
		return nil, errs.Data("input log has no records")
	}
	return events, nil
}

// Filter keeps events whose sender equals the flagged identity and
// whose recipient field contains the external address. A filter that
// matches nothing is a data error, never an empty model input.
func Filter(events []Event, sender, recipient string) ([]Event, error) {
	var kept []Event
	for _, e := range events {
		if e.Sender != sender {
			continue
		}
		if recipient != "" && !strings.Contains(e.Recipient, recipient) {
			continue
		}
		kept = append(kept, e)
	}
	if len(kept) == 0 {
		return nil, errs.Data("no events for sender %q, recipient %q",
			sender, recipient)
	}
	return kept, nil
}

// Observation is one monthly aggregate: a zero-based chronological
// month index and the summed payload size divided by the scale.
type Observation struct {
	Index int
	Month time.Time
	Value float64
}

// Monthly groups the events into calendar-month buckets, sums the
// payload sizes per bucket and scales them. Months with no events do
// not produce buckets; gaps are not imputed.
func Monthly(events []Event, scale float64) ([]Observation, error) {
	if scale <= 0 {
		return nil, errs.Configuration("scale must be positive, got %g", scale)
	}
	if len(events) == 0 {
		return nil, errs.Data("no events to aggregate")
	}
	sums := make(map[time.Time]float64)
	for _, e := range events {
		m := time.Date(e.Time.Year(), e.Time.Month(), 1, 0, 0, 0, 0, time.UTC)
		sums[m] += e.Size
	}
	months := make([]time.Time, 0, len(sums))
	for m := range sums {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	series := make([]Observation, len(months))
	for i, m := range months {
		series[i] = Observation{
			Index: i,
			Month: m,
			Value: sums[m] / scale,
		}
	}
	return series, nil
}

// Split partitions the ordered series into a contiguous training
// prefix and a contiguous test suffix, after discarding dropTail
// trailing buckets as unreliable. Train and test are disjoint and
// order-preserving; there is no shuffling.
type Split struct {
	Train []Observation
	Test  []Observation
}

// NewSplit validates the sizes against the series before any numerical
// work happens.
func NewSplit(series []Observation, trainSize, dropTail int) (*Split, error) {
	if trainSize <= 0 {
		return nil, errs.Configuration(
			"train size must be positive, got %d", trainSize)
	}
	if dropTail < 0 {
		return nil, errs.Configuration(
			"dropped tail must be non-negative, got %d", dropTail)
	}
	kept := len(series) - dropTail
	if kept < trainSize {
		return nil, errs.Configuration(
			"series has %d buckets; cannot train on %d and drop %d",
			len(series), trainSize, dropTail)
	}
	return &Split{
		Train: series[:trainSize],
		Test:  series[trainSize:kept],
	}, nil
}

// Inputs returns the month indices as model inputs.
func Inputs(series []Observation) []float64 {
	x := make([]float64, len(series))
	for i, o := range series {
		x[i] = float64(o.Index)
	}
	return x
}

// Values returns the scaled monthly sums as model outputs.
func Values(series []Observation) []float64 {
	y := make([]float64, len(series))
	for i, o := range series {
		y[i] = o.Value
	}
	return y
}
