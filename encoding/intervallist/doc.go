// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package intervallist reads and writes the text form of interval lists:
// comma-separated "<start>-<end>" entries such as "10-19, 31-100".
package intervallist
