// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"fmt"
	"io"

	formatter "github.com/onsi/ginkgo/v2/formatter"
)

// Outf writes colorized output to stdout.
//
// e.g.,
//
//	Outf("{{green}}{{bold}}class data{{/}} %s\n", id)
//
// ref.
// https://github.com/onsi/ginkgo/blob/v2.0.0/formatter/formatter.go#L52-L73
func Outf(format string, args ...interface{}) {
	Fprintf(formatter.ColorableStdOut, format, args...)
}

// Fprintf is [Outf] with an explicit writer.
func Fprintf(w io.Writer, format string, args ...interface{}) {
	fmt.Fprint(w, formatter.F(format, args...))
}
