// Copyright 2026 gorse Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dataset

import (
	"sort"

	"github.com/samber/lo"
)

// FreqDict encodes class names to consecutive ids and counts their occurrences.
// Names are sorted before encoding, so ids follow the lexical order of names.
type FreqDict struct {
	si  map[string]int
	is  []string
	cnt []int
}

func NewFreqDict(names ...string) (d *FreqDict) {
	is := lo.Uniq(names)
	sort.Strings(is)
	d = &FreqDict{map[string]int{}, is, make([]int, len(is))}
	for i, s := range is {
		d.si[s] = i
	}
	return
}

func (d *FreqDict) Count() int {
	return len(d.is)
}

// Id returns the id of a name and counts it. Unknown names are appended.
func (d *FreqDict) Id(s string) (y int) {
	y = d.NotCount(s)
	d.cnt[y]++
	return
}

func (d *FreqDict) NotCount(s string) (y int) {
	if y, ok := d.si[s]; ok {
		return y
	}

	y = len(d.is)
	d.si[s] = y
	d.is = append(d.is, s)
	d.cnt = append(d.cnt, 0)
	return
}

// Lookup returns the id of a name without counting it.
func (d *FreqDict) Lookup(s string) (int, bool) {
	y, ok := d.si[s]
	return y, ok
}

func (d *FreqDict) String(id int) (s string, ok bool) {
	if id < 0 || id >= len(d.is) {
		return "", false
	}
	return d.is[id], true
}

func (d *FreqDict) Freq(id int) int {
	if id < 0 || id >= len(d.cnt) {
		return 0
	}
	return d.cnt[id]
}
