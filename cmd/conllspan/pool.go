package main

import (
	"errors"
	"fmt"

	"github.com/revelaction/conllspan/storage/sqlite/zombiezen"
	"zombiezen.com/go/sqlite/sqlitex"
)

// Pool keeps one SQLite pool per repository path for the life of a command.
type Pool struct {
	pools map[string]*sqlitex.Pool
}

// Open returns the pool of the repository at path, opening it on first use.
func (p *Pool) Open(path string) (*sqlitex.Pool, error) {
	if pool, ok := p.pools[path]; ok {
		return pool, nil
	}

	pool, err := zombiezen.NewPool(path)
	if err != nil {
		return nil, err
	}

	if p.pools == nil {
		p.pools = make(map[string]*sqlitex.Pool)
	}
	p.pools[path] = pool
	return pool, nil
}

func (p *Pool) Close() error {
	var errs []error
	for path, pool := range p.pools {
		if err := pool.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing %s: %w", path, err))
		}
	}
	p.pools = nil
	return errors.Join(errs...)
}
