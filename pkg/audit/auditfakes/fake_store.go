// Package auditfakes provides in-memory test doubles for the audit package.
package auditfakes

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/hatchdotlol/passcheck/pkg/audit"
)

type FakeStore struct {
	mu      sync.Mutex
	records []audit.Record

	InsertStub func(ctx context.Context, rec audit.Record) error
	RecentStub func(ctx context.Context, limit int) ([]audit.Record, error)

	insertCalls int
	recentCalls int
}

func (f *FakeStore) Insert(ctx context.Context, rec audit.Record) error {
	f.mu.Lock()
	f.insertCalls++
	stub := f.InsertStub
	f.mu.Unlock()

	if stub != nil {
		if err := stub(ctx, rec); err != nil {
			return err
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = append(f.records, rec)
	return nil
}

func (f *FakeStore) Recent(ctx context.Context, limit int) ([]audit.Record, error) {
	f.mu.Lock()
	f.recentCalls++
	stub := f.RecentStub
	out := slices.Clone(f.records)
	f.mu.Unlock()

	if stub != nil {
		return stub(ctx, limit)
	}

	slices.Reverse(out)
	return out[:min(len(out), limit)], nil
}

func (f *FakeStore) Records() []audit.Record {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.records)
}

func (f *FakeStore) InsertCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.insertCalls
}

func (f *FakeStore) RecentCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.recentCalls
}

type FakeBucket struct {
	mu      sync.Mutex
	objects map[string][]byte

	PutErr error
}

func (b *FakeBucket) Put(_ context.Context, key string, body []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.PutErr != nil {
		return b.PutErr
	}
	if b.objects == nil {
		b.objects = map[string][]byte{}
	}
	b.objects[key] = slices.Clone(body)
	return nil
}

func (b *FakeBucket) List(_ context.Context, prefix string) ([]string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	var keys []string
	for k := range b.objects {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

func (b *FakeBucket) Get(_ context.Context, key string) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	body, ok := b.objects[key]
	if !ok {
		return nil, fmt.Errorf("no such key: %s", key)
	}
	return slices.Clone(body), nil
}

func (b *FakeBucket) Object(key string) ([]byte, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	body, ok := b.objects[key]
	return body, ok
}
