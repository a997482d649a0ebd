package cluster

import "errors"

// ErrValueOutOfRange indicates Compactify was called with an upperBound
// smaller than some value actually stored in the Clustering.
var ErrValueOutOfRange = errors.New("cluster: value exceeds upperBound")
