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

package protocol

import (
	"strings"
)

const (
	BuildPassed    = "Passed"
	BuildFailed    = "Failed"
	BuildCancelled = "Cancelled"

	EnvBuildId   = "BUILD_ID"
	EnvWorkspace = "WORKSPACE"
)

// Build is the part of a running build an upload step gets to see.
type Build struct {
	BuildId   string
	Workspace string
	Result    string
	Envs      map[string]string
}

func NewBuild(id, workspace string) *Build {
	return &Build{
		BuildId:   id,
		Workspace: workspace,
		Result:    BuildPassed,
		Envs:      make(map[string]string),
	}
}

func (b *Build) Setenv(name, value string) *Build {
	if b.Envs == nil {
		b.Envs = make(map[string]string)
	}
	b.Envs[name] = value
	return b
}

func (b *Build) SetEnvs(envs map[string]string) *Build {
	for k, v := range envs {
		b.Setenv(k, v)
	}
	return b
}

func (b *Build) SetResult(result string) *Build {
	b.Result = result
	return b
}

func (b *Build) Passed() bool {
	return b.Result == "" || strings.EqualFold(b.Result, BuildPassed)
}

// Environment returns a copy of the build variables, with BUILD_ID and
// WORKSPACE filled in from the build unless they were exported explicitly.
func (b *Build) Environment() map[string]string {
	env := make(map[string]string, len(b.Envs)+2)
	if b.BuildId != "" {
		env[EnvBuildId] = b.BuildId
	}
	if b.Workspace != "" {
		env[EnvWorkspace] = b.Workspace
	}
	for k, v := range b.Envs {
		env[k] = v
	}
	return env
}

// ParseEnv turns KEY=VALUE pairs into a map. Pairs without '=' get an empty value.
func ParseEnv(pairs []string) map[string]string {
	env := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		kv := strings.SplitN(pair, "=", 2)
		if kv[0] == "" {
			continue
		}
		if len(kv) == 2 {
			env[kv[0]] = kv[1]
		} else {
			env[kv[0]] = ""
		}
	}
	return env
}
