// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package tree implements a D-dimensional region-octree over a static batch
// of particles, rebuilt in bulk per snapshot and queried with range
// ("neighbor search") queries under plain or periodic (toroidal) boundary
// conditions, in gather or symmetric-interaction mode.
//
// The tree owns a fixed-capacity particle buffer, a cell recycle pool
// reused across rebuilds, and a threaded traversal structure that lets a
// range query walk the tree without recursion state beyond the call stack
// of Go itself. There is no incremental update: UpdateTree always performs
// a full rebuild over the currently active bodies.
package tree
