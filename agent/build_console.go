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

package agent

import (
	"io"
	"sync"

	"github.com/javierprovecho/google-storage-plugin/stream"
)

const errorMarker = "ERROR: "

// BuildConsole is the build output an upload step reports to. Every line
// starts with the module prefix and masked values never reach the output.
type BuildConsole struct {
	mu  sync.Mutex
	out *stream.SubstituteWriter
}

func MakeBuildConsole(w io.Writer, prefix string) *BuildConsole {
	return &BuildConsole{out: stream.NewSubstituteWriter(stream.NewPrefixWriter(w, prefix))}
}

// Mask hides the given values in every later console line.
func (console *BuildConsole) Mask(values ...string) {
	console.mu.Lock()
	defer console.mu.Unlock()
	for _, v := range values {
		console.out.Mask(v)
	}
}

func (console *BuildConsole) Info(msg string) {
	console.writeLn("", msg)
}

func (console *BuildConsole) Error(msg string) {
	console.writeLn(errorMarker, msg)
}

func (console *BuildConsole) writeLn(marker, msg string) {
	console.mu.Lock()
	defer console.mu.Unlock()
	LogDebug("BuildConsole: %v%v", marker, msg)
	if _, err := console.out.Write([]byte(marker + msg + "\n")); err != nil {
		logger.WithError(err).Error("build console write failed")
	}
}
