package config

import "errors"

var ErrNegativeTTL = errors.New("negative ttl")
