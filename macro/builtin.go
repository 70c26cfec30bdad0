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

package macro

import "sort"

// builtins are the variables every build defines. The values are samples
// used only to check a setting before any build has run.
var builtins = map[string]string{
	"BUILD_NUMBER":       "42",
	"BUILD_ID":           "42",
	"BUILD_DISPLAY_NAME": "#42",
	"BUILD_TAG":          "ci-job-42",
	"BUILD_URL":          "http://ci.example.com/job/job/42/",
	"JOB_NAME":           "job",
	"JOB_BASE_NAME":      "job",
	"JOB_URL":            "http://ci.example.com/job/job/",
	"EXECUTOR_NUMBER":    "0",
	"NODE_NAME":          "agent",
	"WORKSPACE":          "/workspace",
}

// ResolveBuiltin substitutes the built-in build variables with sample
// values. Any other reference is left in place.
func ResolveBuiltin(template string) string {
	return Substitute(template, builtins)
}

// Builtins returns the names of the built-in build variables, sorted.
func Builtins() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
