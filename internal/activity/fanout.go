// Package activity combines several audit sinks into one notifier.
package activity

import (
	"context"
	"errors"
	"fmt"

	"cms_archiver/internal/domain"
)

// Sink receives activity entries.
type Sink interface {
	Log(ctx context.Context, entry domain.Activity) error
}

// Fanout delivers every entry to each sink in order. A failing sink does not
// stop delivery to the others.
type Fanout struct {
	sinks []namedSink
}

type namedSink struct {
	name string
	sink Sink
}

func NewFanout() *Fanout {
	return &Fanout{}
}

// Add registers sink under name; nil sinks are ignored.
func (f *Fanout) Add(name string, sink Sink) *Fanout {
	if sink != nil {
		f.sinks = append(f.sinks, namedSink{name: name, sink: sink})
	}
	return f
}

func (f *Fanout) Len() int {
	return len(f.sinks)
}

func (f *Fanout) Log(ctx context.Context, entry domain.Activity) error {
	var errs []error
	for _, s := range f.sinks {
		if err := s.sink.Log(ctx, entry); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", s.name, err))
		}
	}
	return errors.Join(errs...)
}
