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

package macro_test

import (
	"testing"

	. "github.com/javierprovecho/google-storage-plugin/macro"
	"github.com/stretchr/testify/assert"
)

func TestSubstitute(t *testing.T) {
	env := map[string]string{
		"BUILD_NUMBER": "7",
		"JOB_NAME":     "nightly",
		"dotted.name":  "d",
	}
	var tests = []struct {
		template string
		expected string
	}{
		{"**/*.jar", "**/*.jar"},
		{"out/$BUILD_NUMBER/*.log", "out/7/*.log"},
		{"out/${BUILD_NUMBER}/*.log", "out/7/*.log"},
		{"$JOB_NAME-$BUILD_NUMBER.tgz", "nightly-7.tgz"},
		{"${dotted.name}/x", "d/x"},
		{"build-$UNRESOLVED.txt", "build-$UNRESOLVED.txt"},
		{"build-${UNRESOLVED}.txt", "build-${UNRESOLVED}.txt"},
		{"cost$", "cost$"},
		{"", ""},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, Substitute(test.template, env), test.template)
	}
}

func TestSubstituteDoesNotExpandValues(t *testing.T) {
	env := map[string]string{"A": "$B", "B": "b"}
	assert.Equal(t, "$B/b", Substitute("$A/$B", env))
}

func TestSubstituteNilEnv(t *testing.T) {
	assert.Equal(t, "$A/*.txt", Substitute("$A/*.txt", nil))
}

func TestReferences(t *testing.T) {
	assert.Equal(t, []string{"A", "B"}, References("$A/${B}/$A"))
	assert.Nil(t, References("plain/*.txt"))
}

func TestResolveBuiltin(t *testing.T) {
	assert.Equal(t, "logs/42/job.txt", ResolveBuiltin("logs/$BUILD_NUMBER/${JOB_NAME}.txt"))
	assert.Equal(t, "logs/$CUSTOM/*.txt", ResolveBuiltin("logs/$CUSTOM/*.txt"))
	for _, name := range Builtins() {
		assert.NotContains(t, ResolveBuiltin("$"+name), "$", name)
	}
}
