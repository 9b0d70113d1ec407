package curve

import (
	"context"
	"fmt"

	"github.com/sgostarter/i/l"
)

// Collection is the ordered set of plotted curves sharing one Domain.
// Insertion order is the draw order and the save order. A Collection is
// driven by a single caller and is not safe for concurrent use.
type Collection struct {
	logger  l.Wrapper
	opts    *Options
	storage Storage

	domain *Domain
	curves []*Curve
}

// NewCollection starts an empty collection over domain. opts apply to
// MarshalText and UnmarshalText only: Save and Load encode through storage,
// which parses with the options it was built with, so a malformed-point
// handler for Load belongs on the storage.
func NewCollection(domain Domain, storage Storage, logger l.Wrapper, opts ...Option) *Collection {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "curveCollection"))

	c := &Collection{
		logger:  logger,
		opts:    optionNew(opts...),
		storage: storage,
		domain:  &Domain{},
	}

	*c.domain = domain

	if c.opts.onMalformed == nil {
		c.opts.onMalformed = func(err *ParseError) {
			c.logger.WithFields(l.ErrorField(err), l.IntField("line", err.Line)).Error("skip malformed point")
		}
	}

	return c
}

// AddCurve appends c. The same curve or function may be added any number of
// times.
func (c *Collection) AddCurve(curve *Curve) {
	if curve == nil {
		return
	}

	c.curves = append(c.curves, curve)
}

func (c *Collection) Clear() {
	c.curves = nil
}

// SetDomain replaces both ranges of the shared domain in place. Curves keep
// their points until the caller samples them again.
func (c *Collection) SetDomain(domain Domain) {
	*c.domain = domain
}

// Domain returns the shared domain. Changes made through the pointer are seen
// by every holder.
func (c *Collection) Domain() *Domain {
	return c.domain
}

func (c *Collection) Curves() []*Curve {
	return append([]*Curve(nil), c.curves...)
}

func (c *Collection) Len() int {
	return len(c.curves)
}

func (c *Collection) pointSets() [][]Point {
	ds := make([][]Point, 0, len(c.curves))

	for _, curve := range c.curves {
		ds = append(ds, curve.points)
	}

	return ds
}

// replace installs one point-only curve per point set, dropping the current
// curves first.
func (c *Collection) replace(ds [][]Point) {
	c.Clear()

	for _, points := range ds {
		c.curves = append(c.curves, &Curve{points: points})
	}
}

func (c *Collection) MarshalText() ([]byte, error) {
	return marshal(c.pointSets(), c.opts), nil
}

// UnmarshalText replaces the curves with the ones read from d. On error the
// collection is unchanged.
func (c *Collection) UnmarshalText(d []byte) error {
	ds, err := unmarshal(d, c.opts)
	if err != nil {
		return err
	}

	c.replace(ds)

	return nil
}

func (c *Collection) Save(ctx context.Context, key string) error {
	if c.storage == nil {
		return ErrNoStorage
	}

	err := c.storage.Save(ctx, key, c.pointSets())
	if err != nil {
		c.logger.WithFields(l.ErrorField(err), l.StringField("key", key)).Error("save curves failed")

		return fmt.Errorf("save %s: %w", key, err)
	}

	c.logger.WithFields(l.StringField("key", key), l.IntField("curves", len(c.curves))).Debug("curves saved")

	return nil
}

// Load replaces the curves with the ones stored under key. A key that holds
// nothing leaves the collection empty. On error the collection is unchanged.
func (c *Collection) Load(ctx context.Context, key string) error {
	if c.storage == nil {
		return ErrNoStorage
	}

	ds, err := c.storage.Load(ctx, key)
	if err != nil {
		c.logger.WithFields(l.ErrorField(err), l.StringField("key", key)).Error("load curves failed")

		return fmt.Errorf("load %s: %w", key, err)
	}

	c.replace(ds)

	c.logger.WithFields(l.StringField("key", key), l.IntField("curves", len(c.curves))).Debug("curves loaded")

	return nil
}
