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
	"bytes"
	"io"
)

// PrefixWriter starts every line written through it with Prefix. The prefix
// of a line is only written once the line has content or a line break, so a
// trailing newline does not leave a dangling prefix behind.
type PrefixWriter struct {
	io.Writer
	Prefix    []byte
	lineStart bool
}

func NewPrefixWriter(writer io.Writer, prefix string) *PrefixWriter {
	return &PrefixWriter{Writer: writer, Prefix: []byte(prefix), lineStart: true}
}

func (w *PrefixWriter) Write(out []byte) (int, error) {
	written := 0
	for len(out) > 0 {
		if w.lineStart {
			if _, err := w.Writer.Write(w.Prefix); err != nil {
				return written, err
			}
			w.lineStart = false
		}
		line := out
		if i := bytes.IndexByte(out, '\n'); i >= 0 {
			line = out[:i+1]
			w.lineStart = true
		}
		n, err := w.Writer.Write(line)
		written += n
		if err != nil {
			return written, err
		}
		out = out[len(line):]
	}
	return written, nil
}
