//
// Copyright © 2015 Charles E. Vejnar
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

package feature

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// OpenMapping reads a two column tabulated file (old name, new name).
// Empty lines and lines starting with # are skipped.
func OpenMapping(mpath string) (map[string]string, error) {
	m := make(map[string]string)

	mfos, err := os.Open(mpath)
	if err != nil {
		return m, err
	}
	defer mfos.Close()

	var n int
	tscanner := bufio.NewScanner(mfos)
	for tscanner.Scan() {
		n++
		line := tscanner.Text()
		if len(line) == 0 || IsComment(line) {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			return m, fmt.Errorf("Mapping %s line %d: expected 2 columns", mpath, n)
		}
		m[fields[0]] = fields[1]
	}
	if err := tscanner.Err(); err != nil {
		return m, err
	}
	return m, nil
}

func MapName(name string, m map[string]string) string {
	if nn, ok := m[name]; ok {
		return nn
	}
	return name
}
