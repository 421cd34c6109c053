// Copyright 2026 Someniak
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package main

import (
	"fmt"
	"time"
)

// MissingColumnError indicates a required column is absent from an input file.
// Fatal: aggregating or correlating on a missing column has no meaning.
type MissingColumnError struct {
	Path   string
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing required column %q in %s", e.Column, e.Path)
}

// EmptyInputError indicates a consumption series has zero records.
// Fatal: no baseline can be computed from an empty series.
type EmptyInputError struct {
	Series string
	Path   string
}

func (e *EmptyInputError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s series is empty (source %s)", e.Series, e.Path)
	}
	return fmt.Sprintf("%s series is empty", e.Series)
}

// DuplicateDateError indicates a consumption series carries the same date
// twice. Duplicates are a caller error, not something to silently deduplicate.
type DuplicateDateError struct {
	Series string
	Date   time.Time
}

func (e *DuplicateDateError) Error() string {
	return fmt.Sprintf("duplicate date %s in %s series", e.Date.Format(isoDateLayout), e.Series)
}

// LoaderError represents a file read or parse failure
type LoaderError struct {
	Path string
	Line int
	Err  error
}

func (e *LoaderError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("failed to load %s (line %d): %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("failed to load %s: %v", e.Path, e.Err)
}

func (e *LoaderError) Unwrap() error {
	return e.Err
}

// StorageError represents a storage operation error
type StorageError struct {
	Operation string
	Path      string
	Err       error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error during %s at %s: %v", e.Operation, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
