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

// Package macro expands $NAME and ${NAME} references in build settings.
package macro

import (
	"regexp"
	"strings"
)

var reference = regexp.MustCompile(`\$([A-Za-z0-9_]+|\{[A-Za-z0-9_.]+\})`)

// Substitute replaces every variable reference in template with its value
// from env. References without a value are left verbatim, so a caller that
// needs every reference resolved has to check the result itself.
func Substitute(template string, env map[string]string) string {
	if !strings.Contains(template, "$") {
		return template
	}
	return reference.ReplaceAllStringFunc(template, func(ref string) string {
		if value, ok := env[Name(ref)]; ok {
			return value
		}
		return ref
	})
}

// Name returns the variable name of a reference, "$FOO" and "${FOO}" both give "FOO".
func Name(ref string) string {
	name := strings.TrimPrefix(ref, "$")
	if strings.HasPrefix(name, "{") && strings.HasSuffix(name, "}") {
		name = name[1 : len(name)-1]
	}
	return name
}

// References lists the variable names referenced by template, in order of
// appearance and without duplicates.
func References(template string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, ref := range reference.FindAllString(template, -1) {
		name := Name(ref)
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}
