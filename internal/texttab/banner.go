// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package texttab

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Banner writes title centered between two rules of ch, all width
// characters wide. When the title can't be centered exactly, the
// extra space goes on the right, where it is dropped. An empty title
// leaves a blank line.
func Banner(w io.Writer, title string, width int, ch rune) error {
	rule := strings.Repeat(string(ch), width)
	pad := (width - utf8.RuneCountInString(title)) / 2
	if pad < 0 || title == "" {
		pad = 0
	}
	_, err := fmt.Fprintf(w, "%s\n%*s%s\n%s\n", rule, pad, "", title, rule)
	return err
}
