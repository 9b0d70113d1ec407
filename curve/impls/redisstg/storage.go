package redisstg

import (
	"context"
	"errors"

	"github.com/go-redis/redis/v8"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libplotter/curve"
)

// NewStorage keeps each curve set as one redis string, in the same text
// format the file storage writes, under preKey + ":curves:" + key.
func NewStorage(preKey string, redisCli *redis.Client, logger l.Wrapper, opts ...curve.Option) curve.Storage {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "redisCurveStorage"))

	if redisCli == nil {
		logger.Fatal("no redis client")
	}

	return &storageImpl{
		logger:   logger,
		preKey:   preKey,
		redisCli: redisCli,
		opts:     opts,
	}
}

type storageImpl struct {
	logger   l.Wrapper
	preKey   string
	redisCli *redis.Client
	opts     []curve.Option
}

func (impl *storageImpl) curvesKey(key string) string {
	return impl.preKey + ":curves:" + key
}

func (impl *storageImpl) Load(ctx context.Context, key string) (curves [][]curve.Point, err error) {
	d, err := impl.redisCli.Get(ctx, impl.curvesKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = nil
		}

		return
	}

	curves, err = curve.Unmarshal(d, impl.opts...)
	if err != nil {
		impl.logger.WithFields(l.ErrorField(err), l.StringField("key", key)).Error("bad curves payload")
	}

	return
}

func (impl *storageImpl) Save(ctx context.Context, key string, curves [][]curve.Point) error {
	return impl.redisCli.Set(ctx, impl.curvesKey(key), curve.Marshal(curves, impl.opts...), 0).Err()
}
