package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
)

// MemoryStore implements Store on an in-process map. It exists so the service
// layer can run and be tested without a network; semantics mirror DynamoStore:
// set mutations are idempotent, mutations on a missing document create it,
// deletes of missing documents are no-ops.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string]map[string]map[string]interface{}
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]map[string]map[string]interface{})}
}

// toDoc deep-copies an arbitrary document into a map through JSON, so callers
// never share memory with the store.
func toDoc(doc interface{}) (map[string]interface{}, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	out := make(map[string]interface{})
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	return out, nil
}

func fromDoc(doc map[string]interface{}, out interface{}) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode document: %w", err)
	}
	return nil
}

func (ms *MemoryStore) collection(name string) map[string]map[string]interface{} {
	if ms.data[name] == nil {
		ms.data[name] = make(map[string]map[string]interface{})
	}
	return ms.data[name]
}

func (ms *MemoryStore) Get(ctx context.Context, collection, id string, out interface{}) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	doc, ok := ms.collection(collection)[id]
	if !ok {
		return ErrNotFound
	}
	return fromDoc(doc, out)
}

func (ms *MemoryStore) Put(ctx context.Context, collection, id string, doc interface{}) error {
	encoded, err := toDoc(doc)
	if err != nil {
		return err
	}
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.collection(collection)[id] = encoded
	return nil
}

func (ms *MemoryStore) Delete(ctx context.Context, collection, id string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	delete(ms.collection(collection), id)
	return nil
}

func (ms *MemoryStore) AddToSet(ctx context.Context, collection, id, field, value string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.applySetOp(SetOp{Collection: collection, ID: id, Field: field, Value: value})
	return nil
}

func (ms *MemoryStore) RemoveFromSet(ctx context.Context, collection, id, field, value string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.applySetOp(SetOp{Collection: collection, ID: id, Field: field, Value: value, Remove: true})
	return nil
}

// ApplySetOps applies all ops under one lock, matching the transactional
// all-or-nothing behavior of the DynamoDB implementation.
func (ms *MemoryStore) ApplySetOps(ctx context.Context, ops ...SetOp) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	for _, op := range ops {
		ms.applySetOp(op)
	}
	return nil
}

func (ms *MemoryStore) applySetOp(op SetOp) {
	coll := ms.collection(op.Collection)
	doc, ok := coll[op.ID]
	if !ok {
		doc = make(map[string]interface{})
		coll[op.ID] = doc
	}
	members, _ := doc[op.Field].([]interface{})
	idx := -1
	for i, m := range members {
		if s, ok := m.(string); ok && s == op.Value {
			idx = i
			break
		}
	}
	if op.Remove {
		if idx >= 0 {
			doc[op.Field] = append(members[:idx], members[idx+1:]...)
		}
		return
	}
	if idx < 0 {
		doc[op.Field] = append(members, op.Value)
	}
}

func (ms *MemoryStore) AppendToList(ctx context.Context, collection, id, field string, value interface{}) error {
	encoded, err := toDoc(value)
	if err != nil {
		return err
	}
	ms.mu.Lock()
	defer ms.mu.Unlock()
	coll := ms.collection(collection)
	doc, ok := coll[id]
	if !ok {
		doc = make(map[string]interface{})
		coll[id] = doc
	}
	members, _ := doc[field].([]interface{})
	doc[field] = append(members, encoded)
	return nil
}

func (ms *MemoryStore) UpdateFields(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	coll := ms.collection(collection)
	doc, ok := coll[id]
	if !ok {
		doc = make(map[string]interface{})
		coll[id] = doc
	}
	for k, v := range fields {
		doc[k] = v
	}
	return nil
}

func (ms *MemoryStore) Query(ctx context.Context, collection string, q Query, out interface{}) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	var matched []map[string]interface{}
	for _, doc := range ms.collection(collection) {
		if matchesQuery(doc, q) {
			matched = append(matched, doc)
		}
	}

	if q.OrderBy != "" {
		sort.SliceStable(matched, func(a, b int) bool {
			va, _ := matched[a][q.OrderBy].(string)
			vb, _ := matched[b][q.OrderBy].(string)
			if q.Descending {
				return va > vb
			}
			return va < vb
		})
	}
	if q.Limit > 0 && len(matched) > q.Limit {
		matched = matched[:q.Limit]
	}

	raw, err := json.Marshal(matched)
	if err != nil {
		return fmt.Errorf("failed to encode query result: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode query result: %w", err)
	}
	return nil
}

func matchesQuery(doc map[string]interface{}, q Query) bool {
	for field, want := range q.Equals {
		got, _ := doc[field].(string)
		if got != want {
			return false
		}
	}
	for field, want := range q.Contains {
		members, _ := doc[field].([]interface{})
		found := false
		for _, m := range members {
			if s, ok := m.(string); ok && s == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if q.Range != nil {
		got, _ := doc[q.Range.Field].(string)
		if !(got > q.Range.After) {
			return false
		}
	}
	return true
}
