package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/programmer-santosh-main/thapaelectronics/core/kvstore"
	entity "github.com/programmer-santosh-main/thapaelectronics/model/entity"
)

// Repository is the gorm-backed kvstore.Store. One row per session key,
// upserted wholesale on every mutation (last writer wins).
type Repository struct {
	db   *gorm.DB
	subs subscriptions
}

var _ kvstore.Store = (*Repository)(nil)

func NewRepository(db *gorm.DB) (*Repository, error) {
	if err := db.AutoMigrate(&entity.SessionValue{}); err != nil {
		return nil, err
	}
	return &Repository{db: db}, nil
}

func (r *Repository) Get(ctx context.Context, key string, out interface{}) (bool, error) {
	var row entity.SessionValue
	err := r.db.WithContext(ctx).Where("store_key = ?", key).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(row.Value, out); err != nil {
		return false, err
	}
	return true, nil
}

func (r *Repository) Set(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	var row entity.SessionValue
	err = r.db.WithContext(ctx).Where("store_key = ?", key).First(&row).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		row = entity.SessionValue{Key: key, Value: datatypes.JSON(raw)}
		err = r.db.WithContext(ctx).Create(&row).Error
	case err == nil:
		row.Value = datatypes.JSON(raw)
		err = r.db.WithContext(ctx).Save(&row).Error
	}
	if err != nil {
		return err
	}
	r.subs.notify(key)
	return nil
}

func (r *Repository) Delete(ctx context.Context, key string) error {
	if err := r.db.WithContext(ctx).Where("store_key = ?", key).Delete(&entity.SessionValue{}).Error; err != nil {
		return err
	}
	r.subs.notify(key)
	return nil
}

func (r *Repository) Subscribe(fn func(key string)) func() {
	return r.subs.add(fn)
}

// subscriptions is a small local fan-out; notifications are process-local.
type subscriptions struct {
	mu   sync.Mutex
	fns  map[int]func(string)
	next int
}

func (s *subscriptions) add(fn func(string)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fns == nil {
		s.fns = make(map[int]func(string))
	}
	id := s.next
	s.next++
	s.fns[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.fns, id)
	}
}

func (s *subscriptions) notify(key string) {
	s.mu.Lock()
	fns := make([]func(string), 0, len(s.fns))
	for _, fn := range s.fns {
		fns = append(fns, fn)
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn(key)
	}
}
