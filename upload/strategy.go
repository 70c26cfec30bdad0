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
	"context"
	"sort"
	"sync"

	"github.com/javierprovecho/google-storage-plugin/protocol"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// Config is the scalar configuration of an upload step.
type Config struct {
	BucketNameWithVars string `mapstructure:"bucket"`
	SharedPublicly     bool   `mapstructure:"shared_publicly"`
	ForFailedJobs      bool   `mapstructure:"for_failed_jobs"`
	SourceGlobWithVars string `mapstructure:"glob"`
}

// Upload holds the settings every strategy shares. Strategies embed it.
type Upload struct {
	BucketNameWithVars string
	SharedPublicly     bool
	ForFailedJobs      bool
}

func (u *Upload) Base() *Upload {
	return u
}

// Strategy selects the files an upload step ships.
type Strategy interface {
	Base() *Upload
	// Details describes the selection in a line, e.g. the glob
	Details() string
	Inclusions(ctx context.Context, build *protocol.Build, fs afero.Fs, listener TaskListener) (*MatchResult, error)
}

type Factory func(cfg Config) (Strategy, error)

// Descriptor registers a strategy under Name.
type Descriptor struct {
	Name        string
	DisplayName string
	New         Factory
	// Validate checks the strategy specific settings, it may be nil
	Validate func(cfg Config) []ValidationResult
}

var registry = struct {
	sync.RWMutex
	descriptors map[string]Descriptor
}{descriptors: make(map[string]Descriptor)}

func Register(d Descriptor) error {
	if d.Name == "" || d.New == nil {
		return errors.New("strategy needs a name and a factory")
	}
	registry.Lock()
	defer registry.Unlock()
	if _, ok := registry.descriptors[d.Name]; ok {
		return errors.Errorf("strategy %v is already registered", d.Name)
	}
	registry.descriptors[d.Name] = d
	return nil
}

func MustRegister(d Descriptor) {
	if err := Register(d); err != nil {
		panic(err)
	}
}

func Lookup(name string) (Descriptor, bool) {
	registry.RLock()
	defer registry.RUnlock()
	d, ok := registry.descriptors[name]
	return d, ok
}

// Descriptors returns every registered strategy sorted by name.
func Descriptors() []Descriptor {
	registry.RLock()
	defer registry.RUnlock()
	ds := make([]Descriptor, 0, len(registry.descriptors))
	for _, d := range registry.descriptors {
		ds = append(ds, d)
	}
	sort.Slice(ds, func(i, j int) bool { return ds[i].Name < ds[j].Name })
	return ds
}

func New(name string, cfg Config) (Strategy, error) {
	d, ok := Lookup(name)
	if !ok {
		return nil, errors.Errorf("unknown upload strategy %q", name)
	}
	return d.New(cfg)
}

// ValidateConfig checks cfg for the named strategy and returns the failed
// checks only, so an empty result means the configuration is usable.
func ValidateConfig(name string, cfg Config) []ValidationResult {
	d, ok := Lookup(name)
	if !ok {
		return []ValidationResult{Invalid("Unknown upload strategy: " + name)}
	}
	results := []ValidationResult{ValidateBucket(cfg.BucketNameWithVars)}
	if d.Validate != nil {
		results = append(results, d.Validate(cfg)...)
	}
	var failed []ValidationResult
	for _, r := range results {
		if !r.IsOK() {
			failed = append(failed, r)
		}
	}
	return failed
}
