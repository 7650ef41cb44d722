//
// Copyright (C) 2015-2021 Charles E. Vejnar
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"git.sr.ht/~vejnar/Intergenic/lib/intergenic"
)

type Report struct {
	Input string `json:"input"`
	intergenic.Stats
}

func WriteReport(pathReport string, pathInput string, stats intergenic.Stats) error {
	report, err := json.MarshalIndent(Report{Input: pathInput, Stats: stats}, "", "  ")
	if err != nil {
		return err
	}
	if pathReport != "-" {
		f, err := os.Create(pathReport)
		if err != nil {
			return err
		}
		if _, err = f.Write(report); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}
	fmt.Fprintln(os.Stderr, string(report))
	return nil
}
