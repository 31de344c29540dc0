// SPDX-License-Identifier: MIT
package batch

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// maxLineSize bounds a single line when reading sources by line.
const maxLineSize = 4 * 1024 * 1024

// ReadSources reads the Source(s) held by r.
//
// With byLine, each non-blank line is a Source named `name:line`; otherwise r is a single Source.
func ReadSources(name string, r io.Reader, byLine bool) (sources []Source, err error) {
	if !byLine {
		var data []byte
		if data, err = io.ReadAll(r); err != nil {
			err = fmt.Errorf("read %s: %w", name, err)
			return
		}

		sources = []Source{{Name: name, Text: string(data)}}
		return
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)

	for line := 1; scanner.Scan(); line++ {
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}

		sources = append(sources, Source{Name: fmt.Sprintf("%s:%d", name, line), Text: text})
	}
	if err = scanner.Err(); err != nil {
		err = fmt.Errorf("read %s: %w", name, err)
	}

	return
}
