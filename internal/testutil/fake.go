package testutil

import (
	"calmind/internal/notify"
	"calmind/store"
)

// KV is an in-memory store for tests. Setting Err makes every
// operation fail with it.
type KV struct {
	Data map[string][]byte
	Err  error
}

// NewKV returns an empty in-memory store.
func NewKV() *KV {
	return &KV{Data: make(map[string][]byte)}
}

func (k *KV) Get(key string) ([]byte, error) {
	if k.Err != nil {
		return nil, store.ErrStorageUnavailable.Wrap(k.Err)
	}

	return k.Data[key], nil
}

func (k *KV) Set(key string, value []byte) error {
	if k.Err != nil {
		return store.ErrStorageUnavailable.Wrap(k.Err)
	}

	k.Data[key] = value

	return nil
}

func (k *KV) Remove(key string) error {
	if k.Err != nil {
		return store.ErrStorageUnavailable.Wrap(k.Err)
	}

	delete(k.Data, key)

	return nil
}

// Notifier records delivered notifications.
type Notifier struct {
	Messages []string
}

func (n *Notifier) Notify(_ notify.Kind, message, _ string) {
	n.Messages = append(n.Messages, message)
}
