package voice

import (
	"voice-ecommerce-be/internal/model"
)

// State remembers what a single voice session last showed, so follow-up
// utterances like "the second one" can be resolved. It is owned by exactly one
// bridge and mutated only from that bridge's upstream event loop, which makes
// it single-writer/single-reader by construction; no locking needed.
type State struct {
	lastProducts []model.Product
	lastFilters  map[string]interface{}
}

func NewState() *State {
	return &State{lastFilters: map[string]interface{}{}}
}

// SetProducts replaces the remembered result set wholesale. Every successful
// search overwrites prior context; nothing is merged.
func (s *State) SetProducts(products []model.Product, filters map[string]interface{}) {
	s.lastProducts = products
	s.lastFilters = filters
}

func (s *State) LastProducts() []model.Product {
	return s.lastProducts
}

func (s *State) LastFilters() map[string]interface{} {
	return s.lastFilters
}

func (s *State) Clear() {
	s.lastProducts = nil
	s.lastFilters = map[string]interface{}{}
}
