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

package stream

import (
	"io"
	"sort"
	"strings"
)

const Mask = "********"

// SubstituteWriter replaces every occurrence of a substitution key in what
// is written through it. Write reports len(out) on success since the
// substituted text may differ in size.
type SubstituteWriter struct {
	io.Writer
	Substitutions map[string]string
}

func NewSubstituteWriter(writer io.Writer) *SubstituteWriter {
	return &SubstituteWriter{writer, make(map[string]string)}
}

// Mask hides secret in everything written from now on. Empty values are
// ignored.
func (w *SubstituteWriter) Mask(secret string) {
	if secret == "" {
		return
	}
	w.Substitutions[secret] = Mask
}

func (w *SubstituteWriter) Write(out []byte) (int, error) {
	if len(w.Substitutions) == 0 {
		return w.Writer.Write(out)
	}
	keys := make([]string, 0, len(w.Substitutions))
	for k := range w.Substitutions {
		keys = append(keys, k)
	}
	// longest first, so a secret containing another one is masked whole
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	pairs := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		pairs = append(pairs, k, w.Substitutions[k])
	}
	str := strings.NewReplacer(pairs...).Replace(string(out))

	_, err := w.Writer.Write([]byte(str))
	return len(out), err
}
