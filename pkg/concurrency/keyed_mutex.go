// Package concurrency 키 단위 잠금 등 동시성 제어 도구를 제공합니다.
package concurrency

import "sync"

// KeyedMutex 키마다 독립된 뮤텍스를 제공합니다.
//
// 같은 키에 대한 작업만 직렬화하고 서로 다른 키는 병렬로 진행됩니다.
// 잠금을 기다리거나 보유 중인 고루틴이 없으면 해당 키의 항목을 제거하여 메모리가 누적되지 않습니다.
type KeyedMutex[K comparable] struct {
	mu      sync.Mutex
	entries map[K]*keyedEntry
}

type keyedEntry struct {
	mu       sync.Mutex
	refCount int
}

// NewKeyedMutex 새로운 KeyedMutex를 생성합니다.
func NewKeyedMutex[K comparable]() *KeyedMutex[K] {
	return &KeyedMutex[K]{
		entries: make(map[K]*keyedEntry),
	}
}

// Lock 키에 대한 잠금을 획득할 때까지 대기합니다.
func (km *KeyedMutex[K]) Lock(key K) {
	km.mu.Lock()
	e, ok := km.entries[key]
	if !ok {
		e = &keyedEntry{}
		km.entries[key] = e
	}
	e.refCount++
	km.mu.Unlock()

	e.mu.Lock()
}

// TryLock 대기 없이 잠금을 시도하고 성공 여부를 반환합니다.
func (km *KeyedMutex[K]) TryLock(key K) bool {
	km.mu.Lock()
	defer km.mu.Unlock()

	e, ok := km.entries[key]
	if !ok {
		e = &keyedEntry{}
		km.entries[key] = e
	}

	if !e.mu.TryLock() {
		if !ok {
			delete(km.entries, key)
		}
		return false
	}

	e.refCount++
	return true
}

// Unlock 키에 대한 잠금을 해제합니다. 잠기지 않은 키를 해제하면 panic이 발생합니다.
func (km *KeyedMutex[K]) Unlock(key K) {
	km.mu.Lock()
	defer km.mu.Unlock()

	e, ok := km.entries[key]
	if !ok {
		panic("잠기지 않은 KeyedMutex의 잠금 해제 시도")
	}

	e.mu.Unlock()

	e.refCount--
	if e.refCount <= 0 {
		delete(km.entries, key)
	}
}

// WithLock 키에 대한 잠금을 보유한 상태로 fn을 실행합니다.
func (km *KeyedMutex[K]) WithLock(key K, fn func() error) error {
	km.Lock(key)
	defer km.Unlock(key)

	return fn()
}

// Len 현재 추적 중인 키의 개수를 반환합니다.
func (km *KeyedMutex[K]) Len() int {
	km.mu.Lock()
	defer km.mu.Unlock()

	return len(km.entries)
}
