// Package store provides the shell's persistent command history.
package store

import (
	"errors"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

// ErrNoMatchingCmd is the error returned when a command query completes
// with no result.
var ErrNoMatchingCmd = errors.New("no matching command line")

// Cmd is an entry in the command history.
type Cmd struct {
	Text string
	Seq  int
}

// Store is the interface to the history storage.
type Store interface {
	NextCmdSeq() (int, error)
	AddCmd(text string) (int, error)
	Cmd(seq int) (string, error)
	CmdsWithSeq(from, upto int) ([]Cmd, error)
	IterateCmds(from, upto int, f func(Cmd)) error
	Close() error
}

var initDB = map[string]func(*bolt.Tx) error{}

type dbStore struct {
	db *bolt.DB
}

// NewStore opens a Store backed by the bolt database at dbname, creating
// it if it does not exist.
func NewStore(dbname string) (Store, error) {
	db, err := bolt.Open(dbname, 0644, &bolt.Options{
		Timeout: time.Second,
	})
	if err != nil {
		return nil, err
	}
	st := &dbStore{db: db}
	err = db.Update(func(tx *bolt.Tx) error {
		for name, fn := range initDB {
			if err := fn(tx); err != nil {
				return fmt.Errorf("failed to %s: %v", name, err)
			}
		}
		return nil
	})
	if err != nil {
		st.Close()
		return nil, err
	}
	return st, nil
}

func (s *dbStore) Close() error {
	return s.db.Close()
}
