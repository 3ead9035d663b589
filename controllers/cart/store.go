package cartControllers

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/raushkum4590/foodify/models"
)

// Persistence is the storage port for cart snapshots: one opaque blob per
// key, overwritten wholesale. Load returns nil for an unknown key.
type Persistence interface {
	Load(key string) ([]byte, error)
	Save(key string, blob []byte) error
}

// Store holds the line items of one cart and keeps the persisted snapshot in
// sync. Invariants: at most one line per item ID, quantity always >= 1,
// removal (not zero quantity) represents deletion.
type Store struct {
	key   string
	p     Persistence
	mu    sync.Mutex
	items []models.CartLineItem
}

// NewStore loads the snapshot for key. A missing or corrupt blob is treated
// as an empty cart; parse failures are swallowed, not propagated.
func NewStore(key string, p Persistence) *Store {
	s := &Store{key: key, p: p}
	blob, err := p.Load(key)
	if err != nil {
		log.Println("cart load failed, starting empty:", err)
		return s
	}
	if len(blob) == 0 {
		return s
	}
	if err := json.Unmarshal(blob, &s.items); err != nil {
		log.Println("cart snapshot corrupt, starting empty:", err)
		s.items = nil
	}
	return s
}

// Add appends a new line item, or merges into the existing line with the
// same ID by accumulating quantity. qty below 1 is clamped to 1.
func (s *Store) Add(item models.CartLineItem, qty int) {
	if qty < 1 {
		qty = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i].Quantity += qty
			s.persist()
			return
		}
	}
	item.Quantity = qty
	s.items = append(s.items, item)
	s.persist()
}

// SetQuantity sets a line's quantity. Zero removes the line entirely;
// anything else is floored at 1.
func (s *Store) SetQuantity(id string, qty int) {
	if qty == 0 {
		s.Remove(id)
		return
	}
	if qty < 1 {
		qty = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = qty
			break
		}
	}
	s.persist()
}

// Remove deletes the line item unconditionally.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.items[:0]
	for _, it := range s.items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	s.items = kept
	s.persist()
}

// Clear empties the cart, e.g. after successful order placement.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.persist()
}

// Items returns a copy of the current line items in insertion order.
func (s *Store) Items() []models.CartLineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.CartLineItem, len(s.items))
	copy(out, s.items)
	return out
}

// Total is the sum of price*quantity over all lines, in the item currency.
func (s *Store) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total float64
	for _, it := range s.items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

// persist writes the full snapshot. Fire and forget: a failed write loses at
// most the in-flight mutation, matching local-storage semantics.
// Callers must hold s.mu.
func (s *Store) persist() {
	blob, err := json.Marshal(s.items)
	if err != nil {
		log.Println("cart snapshot marshal failed:", err)
		return
	}
	if err := s.p.Save(s.key, blob); err != nil {
		log.Println("cart snapshot save failed:", err)
	}
}

// MergeInto folds every line of src into dst (quantities accumulate) and
// clears src. Used when a guest signs in and their cart follows them.
func MergeInto(dst, src *Store) bool {
	items := src.Items()
	if len(items) == 0 {
		return false
	}
	for _, it := range items {
		dst.Add(it, it.Quantity)
	}
	src.Clear()
	return true
}
