package simmetrics

import "errors"

// ErrUnsupportedMetric is returned by New for an unknown metric type.
var ErrUnsupportedMetric = errors.New("unsupported metric type")
