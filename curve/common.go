package curve

import (
	"context"
	"errors"
	"io/fs"

	"github.com/sgostarter/i/stg"
	"github.com/sgostarter/libeasygo/stg/fs/rawfs"
)

// NewFileStorage keeps one text file per key. Keys are resolved by storage;
// when storage is nil, a disk storage rooted at root is used.
func NewFileStorage(root string, storage stg.FileStorage, opts ...Option) *FileStorage {
	if storage == nil {
		storage = rawfs.NewFSStorage(root)
	}

	return &FileStorage{
		storage: storage,
		opts:    optionNew(opts...),
	}
}

type FileStorage struct {
	storage stg.FileStorage
	opts    *Options
}

func (stg *FileStorage) Load(_ context.Context, key string) (curves [][]Point, err error) {
	d, err := stg.storage.ReadFile(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = nil
		}

		return
	}

	curves, err = unmarshal(d, stg.opts)

	return
}

func (stg *FileStorage) Save(_ context.Context, key string, curves [][]Point) (err error) {
	err = stg.storage.WriteFile(key, marshal(curves, stg.opts))

	return
}
