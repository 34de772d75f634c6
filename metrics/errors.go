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

import "github.com/juju/errors"

const (
	// ErrConversion is returned if an input could not be converted to a numeric vector.
	ErrConversion = errors.ConstError("conversion error")
	// ErrShape is returned if an input is not one-dimensional, or the lengths of two vectors differ.
	ErrShape = errors.ConstError("shape error")
	// ErrInvalidParameter is returned if an averaging mode is not recognized.
	ErrInvalidParameter = errors.ConstError("invalid parameter")
	// ErrType is returned if an averaging mode is neither a string nor nil.
	ErrType = errors.ConstError("type error")
	// ErrDomain is returned if a metric is mathematically undefined for the inputs.
	ErrDomain = errors.ConstError("domain error")
)

func conversionErrorf(format string, args ...any) error {
	return errors.WithType(errors.Errorf(format, args...), ErrConversion)
}

func shapeErrorf(format string, args ...any) error {
	return errors.WithType(errors.Errorf(format, args...), ErrShape)
}

func domainErrorf(format string, args ...any) error {
	return errors.WithType(errors.Errorf(format, args...), ErrDomain)
}
