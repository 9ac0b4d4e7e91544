// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package geom provides the small set of geometric primitives the nstree
// spatial index needs: squared Euclidean distance, axis-aligned
// box/sphere overlap tests, and the minimum-image distance used for
// periodic (toroidal) boundary conditions.
package geom
