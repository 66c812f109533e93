package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/klwxsrx/random-coffee-bot/pkg/log"
	"github.com/klwxsrx/random-coffee-bot/pkg/strings"
)

// document is a JSON file holding one value of T. The whole value is read
// once at open and rewritten on every flush, there is no partial update.
type document[T any] struct {
	path   string
	logger log.Logger
	Data   T
}

// openDocument loads the named document from dir, falling back to
// defaultValue when the file is missing or unreadable. The file name is the
// snake_case form of name with a .json extension.
func openDocument[T any](dir, name string, defaultValue T, logger log.Logger) *document[T] {
	doc := &document[T]{
		path:   filepath.Join(dir, strings.ToSnakeCase(name)+".json"),
		logger: logger.WithField("file", strings.ToSnakeCase(name)+".json"),
		Data:   defaultValue,
	}

	content, err := os.ReadFile(doc.path)
	if err != nil {
		if !os.IsNotExist(err) {
			doc.logger.WithError(err).Error(context.Background(), "failed to read data file, starting empty")
		}
		return doc
	}

	err = json.Unmarshal(content, &doc.Data)
	if err != nil {
		doc.logger.WithError(err).Error(context.Background(), "failed to decode data file, starting empty")
		doc.Data = defaultValue
	}

	return doc
}

// flush rewrites the file with the current data. A failed write is logged
// and swallowed: the in-memory state stays authoritative until the process
// restarts.
func (d *document[T]) flush(ctx context.Context) {
	content, err := json.MarshalIndent(d.Data, "", "  ")
	if err != nil {
		d.logger.WithError(err).Error(ctx, "failed to encode data file")
		return
	}

	err = os.WriteFile(d.path, content, 0o644)
	if err != nil {
		d.logger.WithError(err).Error(ctx, "failed to write data file")
	}
}

func ensureDataDir(dir string) error {
	err := os.MkdirAll(dir, 0o755)
	if err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	return nil
}
