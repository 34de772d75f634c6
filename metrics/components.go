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

package metrics

import (
	"fmt"
	"sort"

	"github.com/bits-and-blooms/bitset"
	"modernc.org/sortutil"
)

// Component is a per-class count obtained by treating one class as positive
// and all other classes as negative.
type Component int

const (
	// TP counts positions where both the prediction and the ground truth equal the class.
	TP Component = iota
	// FP counts positions where the prediction equals the class but the ground truth doesn't.
	FP
	// FN counts positions where the ground truth equals the class but the prediction doesn't.
	FN
	// Support counts positions where the ground truth equals the class.
	Support
)

func (c Component) String() string {
	switch c {
	case TP:
		return "TP"
	case FP:
		return "FP"
	case FN:
		return "FN"
	case Support:
		return "Support"
	default:
		return fmt.Sprintf("Component(%d)", int(c))
	}
}

// Classes returns the sorted distinct labels appearing in either vector.
func Classes(yTrue, yPred []float64) []float64 {
	classes := make([]float64, 0, len(yTrue)+len(yPred))
	classes = append(classes, yTrue...)
	classes = append(classes, yPred...)
	n := sortutil.Dedupe(sort.Float64Slice(classes))
	return classes[:n]
}

// CountComponents counts the requested components for each class. The result is
// indexed by [class][component], in the order of classes and components.
func CountComponents(yTrue, yPred, classes []float64, components ...Component) [][]int {
	trueMasks := classMasks(yTrue, classes)
	predMasks := classMasks(yPred, classes)
	table := make([][]int, len(classes))
	for i := range classes {
		tp := int(predMasks[i].IntersectionCardinality(trueMasks[i]))
		table[i] = make([]int, len(components))
		for j, component := range components {
			switch component {
			case TP:
				table[i][j] = tp
			case FP:
				table[i][j] = int(predMasks[i].Count()) - tp
			case FN:
				table[i][j] = int(trueMasks[i].Count()) - tp
			case Support:
				table[i][j] = int(trueMasks[i].Count())
			default:
				panic(fmt.Sprintf("unknown component %v", component))
			}
		}
	}
	return table
}

// classMasks marks the positions of each class in a vector.
func classMasks(vector, classes []float64) []*bitset.BitSet {
	index := make(map[float64]int, len(classes))
	for i, class := range classes {
		index[class] = i
	}
	masks := make([]*bitset.BitSet, len(classes))
	for i := range masks {
		masks[i] = bitset.New(uint(len(vector)))
	}
	for i, value := range vector {
		if j, exist := index[value]; exist {
			masks[j].Set(uint(i))
		}
	}
	return masks
}
