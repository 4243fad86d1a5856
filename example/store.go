package main

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// Order is a submitted order line.
type Order struct {
	ID        string
	Customer  string
	Price     float64
	Delivery  string
	Draft     bool
	CreatedAt time.Time
}

// Store is an in-memory order store.
type Store struct {
	mu     sync.RWMutex
	orders map[string]*Order
	nextID int
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		orders: make(map[string]*Order),
		nextID: 1,
	}
}

// Add stores a new order and returns its ID.
func (s *Store) Add(customer string, price float64, delivery string, draft bool) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := fmt.Sprintf("order-%d", s.nextID)
	s.nextID++

	s.orders[id] = &Order{
		ID:        id,
		Customer:  customer,
		Price:     price,
		Delivery:  delivery,
		Draft:     draft,
		CreatedAt: time.Now(),
	}
	return id
}

// Get returns an order by ID.
func (s *Store) Get(id string) *Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.orders[id]
}

// List returns all orders, oldest first.
func (s *Store) List() []*Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*Order, 0, len(s.orders))
	for _, o := range s.orders {
		result = append(result, o)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt) ||
			(result[i].CreatedAt.Equal(result[j].CreatedAt) && result[i].ID < result[j].ID)
	})
	return result
}
