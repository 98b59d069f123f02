package multiton

import "errors"

// ErrInstanceExists is returned by Register when the key is already taken.
var ErrInstanceExists = errors.New("instance for this multiton key already constructed")
