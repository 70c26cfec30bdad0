/*
 * Copyright 2016 ThoughtWorks, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package upload

import (
	"strings"

	"github.com/javierprovecho/google-storage-plugin/macro"
	"github.com/javierprovecho/google-storage-plugin/storage"
)

type ValidationKind int

const (
	ValidationOK ValidationKind = iota
	ValidationError
)

// ValidationResult is the outcome of checking a setting before any build runs.
type ValidationResult struct {
	Kind    ValidationKind
	Message string
}

func OK() ValidationResult {
	return ValidationResult{Kind: ValidationOK}
}

func Invalid(msg string) ValidationResult {
	return ValidationResult{Kind: ValidationError, Message: msg}
}

func (v ValidationResult) IsOK() bool {
	return v.Kind == ValidationOK
}

func (v ValidationResult) String() string {
	if v.IsOK() {
		return "OK"
	}
	return "ERROR: " + v.Message
}

// ValidateGlob checks a glob setting with the built-in variables replaced by
// sample values. Neither the Ant syntax nor whether the glob is relative is
// checked here: both need a filesystem and are left to the build.
func ValidateGlob(raw string) ValidationResult {
	resolved := macro.ResolveBuiltin(raw)
	if resolved == "" {
		return Invalid(msgEmptyGlob)
	}
	if strings.Contains(resolved, "$") {
		return Invalid(msgBadGlobChar("$", msgDollarSuggest))
	}
	return OK()
}

// ValidateBucket checks a bucket URI setting, e.g. gs://bucket/prefix.
func ValidateBucket(raw string) ValidationResult {
	if strings.TrimSpace(raw) == "" {
		return Invalid(msgEmptyBucket)
	}
	if strings.Contains(raw, "$") {
		return Invalid(msgBadBucketChar("$", msgDollarSuggest))
	}
	if _, err := storage.ParseURI(raw); err != nil {
		return Invalid(msgBadBucket + ": " + err.Error())
	}
	return OK()
}
