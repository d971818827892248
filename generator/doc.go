// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package generator - build a set of tables from one start point set
//
// one start point set is drawn for the whole run and shared read
// only by every table; table N uses a rotation of N bits as its
// reduction function and is written as N.txt
//
// table ids start at 1 so the identity reduction (rotation 0) is not
// used by any table
package generator
