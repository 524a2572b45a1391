package service

import (
	"sync/atomic"

	"github.com/rs/zerolog"

	"sku-mapper/internal/skumap/model"
)

// Store держит текущий снимок каталога. Reload подменяет снимок целиком,
// читатели продолжают работать со старым до конца своего вызова.
type Store struct {
	path    string
	log     zerolog.Logger
	current atomic.Pointer[Catalog]
}

// NewStore сразу загружает каталог из path (с фолбэком на демо-таблицу).
func NewStore(path string, logger zerolog.Logger) *Store {
	s := &Store{path: path, log: logger}
	s.current.Store(LoadCatalog(path, logger))
	return s
}

func (s *Store) Current() *Catalog { return s.current.Load() }

// Reload перечитывает файл и публикует новый снимок.
func (s *Store) Reload() *Catalog {
	c := LoadCatalog(s.path, s.log)
	s.current.Store(c)
	return c
}

// Resolver над текущим снимком.
func (s *Store) Resolver() *Resolver { return NewResolver(s.Current(), s.log) }

func (s *Store) Resolve(req model.Request) model.Result {
	return s.Resolver().Resolve(req)
}
