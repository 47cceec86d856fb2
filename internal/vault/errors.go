package vault

import "errors"

// ErrDuplicateKey indicates an Add without overwrite onto an existing key.
var ErrDuplicateKey = errors.New("vault: file already exists")

// ErrNotFound indicates a lookup or delete on a key that is not in the store.
var ErrNotFound = errors.New("vault: file does not exist")
