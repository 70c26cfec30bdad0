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

	"github.com/javierprovecho/google-storage-plugin/protocol"
	"github.com/spf13/afero"
)

const ClassicStrategy = "classic"

func init() {
	MustRegister(Descriptor{
		Name:        ClassicStrategy,
		DisplayName: "Classic Upload",
		New: func(cfg Config) (Strategy, error) {
			return NewClassicUpload(cfg.BucketNameWithVars, cfg.SharedPublicly, cfg.ForFailedJobs, cfg.SourceGlobWithVars), nil
		},
		Validate: func(cfg Config) []ValidationResult {
			return []ValidationResult{ValidateGlob(cfg.SourceGlobWithVars)}
		},
	})
}

// ClassicUpload uploads the files matching an Ant-style glob, e.g.
// **/*.java, relative to the build workspace. A glob starting with / is
// matched from the root of the workspace filesystem instead.
type ClassicUpload struct {
	Upload
	// SourceGlobWithVars may reference build variables such as $BUILD_NUMBER
	SourceGlobWithVars string
	lister             Lister
}

func NewClassicUpload(bucketNameWithVars string, sharedPublicly, forFailedJobs bool, sourceGlobWithVars string) *ClassicUpload {
	return &ClassicUpload{
		Upload: Upload{
			BucketNameWithVars: bucketNameWithVars,
			SharedPublicly:     sharedPublicly,
			ForFailedJobs:      forFailedJobs,
		},
		SourceGlobWithVars: sourceGlobWithVars,
	}
}

// SetLister replaces the lister, which otherwise lists the filesystem
// handed to Inclusions.
func (c *ClassicUpload) SetLister(lister Lister) *ClassicUpload {
	c.lister = lister
	return c
}

func (c *ClassicUpload) Details() string {
	return c.SourceGlobWithVars
}

func (c *ClassicUpload) Inclusions(ctx context.Context, build *protocol.Build, fs afero.Fs, listener TaskListener) (*MatchResult, error) {
	lister := c.lister
	if lister == nil {
		lister = NewFsLister(fs)
	}
	req := UploadRequest{
		GlobPattern: c.SourceGlobWithVars,
		Workspace:   build.Workspace,
		Env:         build.Environment(),
	}
	return NewGlobResolver(lister).Match(ctx, req, listener)
}
