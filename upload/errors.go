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
	"fmt"
	"strings"
)

// UploadError aborts a single upload step. The build itself carries on.
type UploadError struct {
	msg   string
	cause error
}

func NewUploadError(msg string, cause error) *UploadError {
	return &UploadError{msg: msg, cause: cause}
}

func (e *UploadError) Error() string {
	if e.cause == nil {
		return e.msg
	}
	return e.msg + ": " + e.cause.Error()
}

// Cause returns the underlying failure, see github.com/pkg/errors.Cause.
func (e *UploadError) Cause() error {
	return e.cause
}

func (e *UploadError) Unwrap() error {
	return e.cause
}

// UnresolvedVariableError reports a glob that still holds a variable marker
// after substitution with the build environment.
type UnresolvedVariableError struct {
	Pattern string
	Names   []string
}

func (e *UnresolvedVariableError) Error() string {
	if len(e.Names) == 0 {
		return fmt.Sprintf("glob %q contains an unresolved variable marker '$'", e.Pattern)
	}
	return fmt.Sprintf("glob %q references undefined variables: %v", e.Pattern, strings.Join(e.Names, ", "))
}
