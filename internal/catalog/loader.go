package catalog

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Loader fills an Index from a Source in the background.
type Loader struct {
	source Source
	index  *Index
}

func NewLoader(source Source, index *Index) *Loader {
	return &Loader{
		source: source,
		index:  index,
	}
}

// Load fetches the catalog and swaps it into the index.
// On failure the index keeps its previous contents and the error is returned.
func (l *Loader) Load(ctx context.Context) error {
	records, err := l.source.Records(ctx)
	if err != nil {
		return err
	}
	l.index.Load(records)
	logrus.WithField("exercises", len(records)).Infoln("exercise catalog loaded")
	return nil
}

// LoadAsync starts Load in a goroutine and returns a channel closed when it ends.
// Failures are logged and absorbed: search and generation keep working on
// whatever the index holds (an empty catalog at startup).
func (l *Loader) LoadAsync(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := l.Load(ctx); err != nil {
			logrus.Warnf("exercise catalog not loaded, continuing with %d exercises: %s", l.index.Len(), err)
		}
	}()
	return done
}
