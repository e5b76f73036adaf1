package history

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"
	"github.com/klauspost/compress/zstd"
)

// FileStore writes the list as zstd compressed JSON. Writes go to a temp
// file that is renamed over the target.
type FileStore struct {
	path    string
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

func NewFileStore(path string) (*FileStore, error) {
	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
	}
	decoder, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(0))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
	}
	return &FileStore{path: path, encoder: encoder, decoder: decoder}, nil
}

func (f *FileStore) Load(_ context.Context) ([]Entry, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	raw, err := f.decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return decode(raw)
}

func (f *FileStore) Save(_ context.Context, entries []Entry) error {
	jsonData, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	data := f.encoder.EncodeAll(jsonData, make([]byte, 0, len(jsonData)))

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return err
	}

	tmpFile := f.path + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	if _, err = file.Write(data); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, f.path)
}

func (f *FileStore) Close() {
	f.encoder.Close()
	f.decoder.Close()
}
