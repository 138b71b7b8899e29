//go:build windows

package mempool

import "errors"

var errNotSupported = errors.New("mempool: anonymous mappings are not supported on windows")

func mapAnon(size int) ([]byte, error) {
	return nil, errNotSupported
}

func unmapAnon(data []byte) error {
	return nil
}
