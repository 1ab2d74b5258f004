// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package source

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
)

// longest line accepted in a text source
const maxLineSize = 16 * 1024 * 1024

// Text - a plain text file, one "key value" record per line
//
// blank lines and lines starting with '#' are skipped, the key ends
// at the first space or tab and the rest of the line with leading
// spaces removed is the value
type Text struct {
	file *os.File
}

// OpenText - open a text source
func OpenText(path string) (*Text, error) {
	f, err := os.Open(path)
	if nil != err {
		return nil, err
	}
	return &Text{file: f}, nil
}

// Each - call f for each record from the start of the file
func (t *Text) Each(f func(key []byte, value []byte) error) error {
	if _, err := t.file.Seek(0, 0); nil != err {
		return err
	}

	scanner := bufio.NewScanner(t.file)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber += 1
		line := bytes.TrimSpace(scanner.Bytes())
		if 0 == len(line) || '#' == line[0] {
			continue
		}
		key, value := splitRecord(line)
		if err := f(key, value); nil != err {
			return fmt.Errorf("line: %d: %w", lineNumber, err)
		}
	}
	return scanner.Err()
}

// Close - close the underlying file
func (t *Text) Close() error {
	return t.file.Close()
}

func splitRecord(line []byte) ([]byte, []byte) {
	n := bytes.IndexAny(line, " \t")
	if n < 0 {
		return line, []byte{}
	}
	return line[:n], bytes.TrimLeft(line[n:], " \t")
}
