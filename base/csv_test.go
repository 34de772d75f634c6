// Copyright 2021 gorse Project Authors
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

package base

import (
	"strings"
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
)

func TestEscape(t *testing.T) {
	assert.Equal(t, "123", Escape("123", ','))
	assert.Equal(t, "\"\"\"123\"\"\"", Escape("\"123\"", ','))
	assert.Equal(t, "\"1,2,3\"", Escape("1,2,3", ','))
	assert.Equal(t, "1,2,3", Escape("1,2,3", '\t'))
	assert.Equal(t, "\"1\t2\"", Escape("1\t2", '\t'))
	assert.Equal(t, "\"\"\",\"\"\"", Escape("\",\"", ','))
	assert.Equal(t, "\"1\r\n2\r\n3\"", Escape("1\r\n2\r\n3", ','))
}

func splitLines(t *testing.T, text string, sep rune) [][]string {
	lines := make([][]string, 0)
	err := ReadLines(strings.NewReader(text), sep, func(i int, fields []string) error {
		assert.Equal(t, len(lines), i)
		lines = append(lines, fields)
		return nil
	})
	assert.NoError(t, err)
	return lines
}

func TestReadLines(t *testing.T) {
	assert.Equal(t, [][]string{{"1", "2", "3"}, {"4", "5", "6"}},
		splitLines(t, "1,2,3\r\n4,5,6\r\n", ','))
	assert.Equal(t, [][]string{{"1", "2", "3"}, {"4", "5", "6"}},
		splitLines(t, "1\t2\t3\n\n  \n4\t5\t6", '\t'))
	assert.Equal(t, [][]string{{"1,2", "3,4", "5,6"}, {"2,3", "4,6", "6,9"}},
		splitLines(t, "\"1,2\",\"3,4\",\"5,6\"\r\n\"2,3\",\"4,6\",\"6,9\"", ','))
	assert.Equal(t, [][]string{{"\"1,2\",\"3,4\",\"5,6\""}, {"\"2,3\",\"4,6\",\"6,9\""}},
		splitLines(t, "\"\"\"1,2\"\",\"\"3,4\"\",\"\"5,6\"\"\"\r\n\"\"\"2,3\"\",\"\"4,6\"\",\"\"6,9\"\"\"", ','))
	assert.Equal(t, [][]string{{"1\r\n2", "3\r\n4", "5\r\n6"}, {"2\r\n3", "4\r\n6", "6\r\n9"}},
		splitLines(t, "\"1\r\n2\",\"3\r\n4\",\"5\r\n6\"\r\n\"2\r\n3\",\"4\r\n6\",\"6\r\n9\"", ','))
}

func TestReadLinesLongLine(t *testing.T) {
	long := strings.Repeat("x", 1<<20)
	assert.Equal(t, [][]string{{"1", long}, {"2", "y"}},
		splitLines(t, "1,"+long+"\n2,y\n", ','))
}

func TestReadLinesStop(t *testing.T) {
	stop := errors.New("stop")
	lines := make([][]string, 0)
	err := ReadLines(strings.NewReader("1,2,3\r\n4,5,6\r\nSTOP\r\n7,8,9"), ',', func(i int, fields []string) error {
		lines = append(lines, fields)
		if fields[0] == "STOP" {
			return stop
		}
		return nil
	})
	assert.True(t, errors.Is(err, stop))
	assert.Equal(t, [][]string{{"1", "2", "3"}, {"4", "5", "6"}, {"STOP"}}, lines)
}

func TestReadLinesUnterminated(t *testing.T) {
	err := ReadLines(strings.NewReader("1,\"2\n3"), ',', func(int, []string) error { return nil })
	assert.Error(t, err)
}
