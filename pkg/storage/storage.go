// Package storage persists colors in a pebble database keyed by KSUID.
//
// Values are stored in packed form (a JSON array of the codec sequence), and
// every read goes back through the codec, so a damaged record is reported as
// a decode error instead of being returned as some other color.
package storage

import (
	"encoding/json"
	"sync"

	"github.com/cockroachdb/pebble"
	"github.com/pkg/errors"
	"github.com/segmentio/ksuid"

	"github.com/ssargent/chromapack/pkg/codec"
	"github.com/ssargent/chromapack/pkg/color"
)

// ErrNotFound is returned when no color is stored under an id.
var ErrNotFound = errors.New("color not found")

// Entry is a stored color with its id.
type Entry struct {
	ID     ksuid.KSUID          `json:"id"`
	Color  color.Color          `json:"color"`
	Packed codec.PackedSequence `json:"packed"`
}

// PaletteStore is a pebble-backed color store. It is safe for concurrent use.
type PaletteStore struct {
	db    *pebble.DB
	codec *codec.ColorCodec

	// writeMu serializes the existence check and write of Update and Delete.
	writeMu sync.Mutex
}

// NewPaletteStore opens (or creates) a store at path.
func NewPaletteStore(path string) (*PaletteStore, error) {
	return NewPaletteStoreWithOptions(path, &pebble.Options{})
}

// NewPaletteStoreWithOptions opens a store with explicit pebble options.
func NewPaletteStoreWithOptions(path string, opts *pebble.Options) (*PaletteStore, error) {
	db, err := pebble.Open(path, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "open palette store at %s", path)
	}
	return &PaletteStore{db: db, codec: codec.NewColorCodec()}, nil
}

// Create stores c under a new id.
func (s *PaletteStore) Create(c color.Color) (ksuid.KSUID, error) {
	data, err := s.encode(c)
	if err != nil {
		return ksuid.Nil, err
	}
	id := ksuid.New()
	if err := s.db.Set(id.Bytes(), data, pebble.Sync); err != nil {
		return ksuid.Nil, errors.Wrap(err, "write color")
	}
	return id, nil
}

// Read returns the color stored under id.
func (s *PaletteStore) Read(id ksuid.KSUID) (color.Color, error) {
	data, closer, err := s.db.Get(id.Bytes())
	if errors.Is(err, pebble.ErrNotFound) {
		return color.Color{}, ErrNotFound
	}
	if err != nil {
		return color.Color{}, errors.Wrapf(err, "read color %s", id)
	}
	defer closer.Close()

	return s.decode(id, data)
}

// Update replaces the color stored under id. It fails with ErrNotFound if
// id is absent, including when a concurrent Delete removed it first.
func (s *PaletteStore) Update(id ksuid.KSUID, c color.Color) error {
	data, err := s.encode(c)
	if err != nil {
		return err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if err := s.ensureExists(id); err != nil {
		return err
	}
	return errors.Wrapf(s.commit(func(b *pebble.Batch) error {
		return b.Set(id.Bytes(), data, nil)
	}), "update color %s", id)
}

// Delete removes the color stored under id.
func (s *PaletteStore) Delete(id ksuid.KSUID) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if err := s.ensureExists(id); err != nil {
		return err
	}
	return errors.Wrapf(s.commit(func(b *pebble.Batch) error {
		return b.Delete(id.Bytes(), nil)
	}), "delete color %s", id)
}

// commit applies fill's writes as one synced batch.
func (s *PaletteStore) commit(fill func(*pebble.Batch) error) error {
	b := s.db.NewBatch()
	defer b.Close()
	if err := fill(b); err != nil {
		return err
	}
	return b.Commit(pebble.Sync)
}

// List returns every stored color in id order. KSUIDs sort by creation
// time at one-second resolution.
func (s *PaletteStore) List() ([]Entry, error) {
	iter, err := s.db.NewIter(nil)
	if err != nil {
		return nil, errors.Wrap(err, "list colors")
	}
	defer iter.Close()

	var entries []Entry
	for iter.First(); iter.Valid(); iter.Next() {
		id, err := ksuid.FromBytes(iter.Key())
		if err != nil {
			return nil, errors.Wrapf(err, "invalid key %x", iter.Key())
		}
		c, err := s.decode(id, iter.Value())
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{ID: id, Color: c, Packed: s.codec.Pack(c)})
	}
	if err := iter.Error(); err != nil {
		return nil, errors.Wrap(err, "list colors")
	}
	return entries, nil
}

// Close flushes and closes the underlying database.
func (s *PaletteStore) Close() error {
	return s.db.Close()
}

func (s *PaletteStore) ensureExists(id ksuid.KSUID) error {
	_, closer, err := s.db.Get(id.Bytes())
	if errors.Is(err, pebble.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return errors.Wrapf(err, "read color %s", id)
	}
	return closer.Close()
}

func (s *PaletteStore) encode(c color.Color) ([]byte, error) {
	if !c.Valid() {
		return nil, errors.New("cannot store unset color")
	}
	data, err := json.Marshal(s.codec.Pack(c))
	return data, errors.Wrap(err, "encode color")
}

func (s *PaletteStore) decode(id ksuid.KSUID, data []byte) (color.Color, error) {
	var seq []int
	if err := json.Unmarshal(data, &seq); err != nil {
		return color.Color{}, errors.Wrapf(err, "corrupt record %s", id)
	}
	c, err := s.codec.Unpack(seq)
	if err != nil {
		return color.Color{}, errors.Wrapf(err, "corrupt record %s", id)
	}
	return c, nil
}
