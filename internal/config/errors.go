package config

import "errors"

// ErrLoadingConfig wraps every failure returned by the aggregate loaders,
// so callers can tell configuration errors apart from other startup errors.
var ErrLoadingConfig = errors.New("error loading config")
