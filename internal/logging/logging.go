// Package logging routes the process logger to a file so it never draws
// over the terminal UI.
package logging

import (
	"io"
	"os"

	"github.com/go-faster/errors"
	log "github.com/sirupsen/logrus"
)

// Setup points the standard logrus logger at path with the given level.
// An empty path discards log output. The returned closer releases the file.
func Setup(path, level string) (io.Closer, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrap(err, "parse log level")
	}
	log.SetLevel(lvl)
	log.SetFormatter(&log.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})

	if path == "" {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.Wrap(err, "open log file")
	}
	log.SetOutput(f)
	return f, nil
}
