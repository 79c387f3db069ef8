// Package store persists column configuration as one JSON blob per category.
package store

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/pkg/errors"

	nt "colonnade/entity"
)

// Category names a blob in the medium; each maps storage keys to facet values.
type Category string

const (
	WidthCategory      Category = "TABLE_COL_WIDTH_CONFIG"
	HeaderCategory     Category = "TABLE_HEADER_CONFIG"
	HeaderSortCategory Category = "TABLE_HEADER_SORT_CONFIG"
	PageSizeCategory   Category = "pageSizeKey"
)

// DefaultKey is the storage key used when the caller does not supply one.
const DefaultKey = "table-columns-width"

// Medium specifies a synchronous, string valued item store.
type Medium interface {
	// GetItem returns the item stored under name, ok is false when absent
	GetItem(name string) (value string, ok bool, err error)
	// SetItem replaces the item stored under name
	SetItem(name, value string) (err error)
}

// Port is the persistence capability handed to reconciler and controllers.
type Port interface {
	// Get returns the value under key in category, or dflt
	Get(category Category, key string, dflt any) any
	// Set stores value under key in category
	Set(category Category, key string, value any)
}

// Adapter implements Port over a Medium.
// Failures never propagate; reads fall back to the caller's default and
// writes are logged and dropped.
type Adapter struct {
	medium Medium
	mu     sync.Mutex

	ctx    context.Context
	logger nt.Logger
}

func New(ctx context.Context, medium Medium, lgr nt.Logger) *Adapter {

	if lgr == nil {
		lgr = nt.Discard
	}

	return &Adapter{
		medium: medium,
		ctx:    ctx,
		logger: lgr,
	}
}

// Get returns the value stored under key in category.
// A missing or malformed blob, or a missing key, yields dflt.
func (adp *Adapter) Get(category Category, key string, dflt any) any {

	adp.mu.Lock()
	defer adp.mu.Unlock()

	data, err := adp.fetch(category)
	if err != nil {
		adp.logger.Error(adp.ctx, "failed to get config", err, "category", category)
		return dflt
	}

	blob, err := decode(category, data)
	if err != nil {
		adp.logger.Error(adp.ctx, "ignoring malformed config", err, "category", category)
		return dflt
	}

	val, ok := blob[key]
	if !ok || val == nil {
		return dflt
	}
	return val
}

// Set stores value under key in category, rewriting the whole blob.
// An empty key is ignored and a malformed blob is replaced.
func (adp *Adapter) Set(category Category, key string, value any) {

	if key == "" {
		return
	}

	adp.mu.Lock()
	defer adp.mu.Unlock()

	data, err := adp.fetch(category)
	if err != nil {
		adp.logger.Error(adp.ctx, "failed to get config for update", err, "category", category)
		return
	}

	blob, err := decode(category, data)
	if err != nil {
		adp.logger.Error(adp.ctx, "replacing malformed config", err, "category", category)
		blob = map[string]any{}
	}
	blob[key] = value

	err = adp.store(category, blob)
	if err != nil {
		adp.logger.Error(adp.ctx, "failed to set config", err, "category", category, "key", key)
	}
}

// unexported

func (adp *Adapter) fetch(category Category) (data string, err error) {

	data, ok, err := adp.medium.GetItem(string(category))
	if err != nil {
		err = errors.Wrapf(err, "failed to get item %s", category)
		return
	}
	if !ok {
		data = ""
	}
	return
}

func (adp *Adapter) store(category Category, blob map[string]any) (err error) {

	data, err := json.Marshal(blob)
	if err != nil {
		err = errors.Wrapf(err, "failed to marshal %s", category)
		return
	}

	err = adp.medium.SetItem(string(category), string(data))
	err = errors.Wrapf(err, "failed to set item %s", category)
	return
}

// decode parses a category blob, an empty blob decodes to an empty object
func decode(category Category, data string) (blob map[string]any, err error) {

	blob = map[string]any{}
	if data == "" {
		return
	}

	var decoded any
	err = json.Unmarshal([]byte(data), &decoded)
	if err != nil {
		err = errors.Wrapf(err, "failed to unmarshal %s", category)
		return
	}

	obj, ok := decoded.(map[string]any)
	if !ok {
		err = errors.Errorf("%s holds %T rather than an object", category, decoded)
		return
	}

	blob = obj
	return
}
