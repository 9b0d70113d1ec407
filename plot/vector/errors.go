package vector

import "errors"

var ErrUnsupportedFormat = errors.New("unsupported vector format")
