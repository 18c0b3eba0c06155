package testutil

import "errors"

// FailingKV is a store.KV whose writes always fail, for exercising the
// fire-and-forget persistence path.
type FailingKV struct {
	// Writes counts attempted Set calls.
	Writes int
}

var errStoreDown = errors.New("store unavailable")

func (f *FailingKV) Get(key string, v any) (bool, error) {
	return false, nil
}

func (f *FailingKV) Set(key string, v any) error {
	f.Writes++
	return errStoreDown
}

func (f *FailingKV) Delete(key string) error {
	return errStoreDown
}
