// Package session keeps the view window and the function specs of the
// plotted curves in a JSON file, so a restarted grapher can rebuild and
// re-sample them.
package session

import (
	"fmt"
	"sync"

	"github.com/godruoyi/go-snowflake"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/i/stg"
	"github.com/sgostarter/libeasygo/stg/fs/rawfs"
	"github.com/sgostarter/libeasygo/stg/mwf"
	"github.com/sgostarter/libplotter/curve"
	"github.com/sgostarter/libplotter/fn"
)

type Entry struct {
	ID   uint64  `json:"id"`
	Spec fn.Spec `json:"spec"`
}

type State struct {
	Domain  *curve.Domain `json:"domain,omitempty"`
	Entries []Entry       `json:"entries,omitempty"`
}

func NewStore(fileName string, storage stg.FileStorage, logger l.Wrapper) *Store {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	if storage == nil {
		storage = rawfs.NewFSStorage("")
	}

	return &Store{
		logger: logger.WithFields(l.StringField(l.ClsKey, "sessionStore")),
		d: mwf.NewMemWithFile[State, mwf.Serial, mwf.Lock](State{},
			&mwf.JSONSerial{}, &sync.RWMutex{}, fileName, storage),
	}
}

type Store struct {
	logger l.Wrapper
	d      *mwf.MemWithFile[State, mwf.Serial, mwf.Lock]
}

func (s *Store) State() (state State) {
	s.d.Read(func(v State) {
		if v.Domain != nil {
			domain := *v.Domain
			state.Domain = &domain
		}

		state.Entries = append(state.Entries, v.Entries...)
	})

	return
}

func (s *Store) Domain() (domain curve.Domain, ok bool) {
	s.d.Read(func(v State) {
		if v.Domain != nil {
			domain, ok = *v.Domain, true
		}
	})

	return
}

func (s *Store) SetDomain(domain curve.Domain) error {
	if err := domain.Validate(); err != nil {
		return err
	}

	return s.d.Change(func(v State) (State, error) {
		v.Domain = &domain

		return v, nil
	})
}

func (s *Store) Entries() (entries []Entry) {
	s.d.Read(func(v State) {
		entries = append(entries, v.Entries...)
	})

	return
}

func (s *Store) Put(spec fn.Spec) (id uint64, err error) {
	if _, err = fn.Build(spec); err != nil {
		return
	}

	err = s.d.Change(func(v State) (State, error) {
		id = snowflake.ID()

		v.Entries = append(append([]Entry(nil), v.Entries...), Entry{ID: id, Spec: spec})

		return v, nil
	})

	return
}

func (s *Store) Remove(id uint64) error {
	return s.d.Change(func(v State) (newV State, err error) {
		newV = v
		newV.Entries = make([]Entry, 0, len(v.Entries))

		for _, entry := range v.Entries {
			if entry.ID != id {
				newV.Entries = append(newV.Entries, entry)
			}
		}

		if len(newV.Entries) == len(v.Entries) {
			err = fmt.Errorf("%w: entry %d", commerr.ErrNotFound, id)
		}

		return
	})
}

func (s *Store) Clear() error {
	return s.d.Change(func(v State) (State, error) {
		v.Entries = nil

		return v, nil
	})
}

// Snapshot replaces the stored state with the collection's domain and the
// specs of its function backed curves. Point only curves are not recorded.
func (s *Store) Snapshot(c *curve.Collection) error {
	domain := *c.Domain()
	entries := make([]Entry, 0, c.Len())

	for _, cur := range c.Curves() {
		if !cur.Resamplable() {
			continue
		}

		spec, ok := fn.SpecOf(cur.Function())
		if !ok {
			continue
		}

		entries = append(entries, Entry{ID: snowflake.ID(), Spec: spec})
	}

	err := s.d.Change(func(State) (State, error) {
		return State{Domain: &domain, Entries: entries}, nil
	})
	if err != nil {
		return err
	}

	s.logger.WithFields(l.IntField("entries", len(entries))).Debug("session saved")

	return nil
}

// Restore rebuilds the stored curves into c, sampled with sampler over the
// stored domain. It reports false and leaves c untouched when nothing was
// stored. Entries whose spec no longer builds are logged and skipped.
func (s *Store) Restore(c *curve.Collection, sampler curve.Sampler, numPoints int) (restored bool, err error) {
	state := s.State()
	if state.Domain == nil && len(state.Entries) == 0 {
		return
	}

	if state.Domain != nil {
		if err = state.Domain.Validate(); err != nil {
			return
		}

		c.SetDomain(*state.Domain)
	}

	c.Clear()

	for _, entry := range state.Entries {
		f, e := fn.Build(entry.Spec)
		if e != nil {
			s.logger.WithFields(l.ErrorField(e), l.UInt64Field("id", entry.ID)).Error("skip session entry")

			continue
		}

		cur := curve.NewCurve(f)
		cur.SampleWith(sampler, *c.Domain(), numPoints)
		c.AddCurve(cur)
	}

	restored = true

	return
}
