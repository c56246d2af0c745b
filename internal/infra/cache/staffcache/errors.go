package staffcache

import "errors"

// ErrInvalidate возвращается, если не удалось удалить запись из кеша
var ErrInvalidate = errors.New("staffcache: failed to invalidate roster")
