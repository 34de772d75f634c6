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

/*

Package metrics provides evaluation metrics for classification and regression.

Every metric takes a pair of label vectors: the ground truth and the predictions. A label
vector could be any slice of numbers (or numeric strings), a nested slice with one singleton
axis, or a gonum matrix with one row or one column.

	* Classification metrics include: Accuracy, Precision, Recall, F1
	* Regression metrics include: MeanSquaredError, RootMeanSquaredError, MeanAbsoluteError, R2

Precision, recall and F1 support five averaging modes: Binary, Micro, Macro, Weighted and None.

*/
package metrics
