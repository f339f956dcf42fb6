// Package table is the tabular I/O adapter: it loads a spreadsheet or CSV
// backing file whole into a gota DataFrame, writes it back whole, and
// evaluates row predicates against it. Every tool call runs a full
// read-modify-write cycle through a Store; nothing is cached between calls.
package table

import (
	"github.com/go-gota/gota/dataframe"
)

// Store binds the backing-file path, fixed for the server's lifetime, to
// the codec for its format.
type Store struct {
	path  string
	codec Codec
}

// NewStore builds a Store for the given path, inferring the codec from the
// file extension.
func NewStore(path string) (*Store, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	codec, err := NewCodec(format)
	if err != nil {
		return nil, err
	}
	return &Store{path: path, codec: codec}, nil
}

// Path returns the backing-file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the backing file whole. Row positions are only meaningful
// relative to this load.
func (s *Store) Load() (dataframe.DataFrame, error) {
	return s.codec.Read(s.path)
}

// Save rewrites the backing file whole. There is no atomic swap: a failed
// write leaves the file however far the codec got.
func (s *Store) Save(df dataframe.DataFrame) error {
	return s.codec.Write(df, s.path)
}
