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
	"path/filepath"
	"strings"

	"github.com/javierprovecho/google-storage-plugin/macro"
	"github.com/sirupsen/logrus"
)

const separator = "/"

// UploadRequest is the input of a single glob resolution.
type UploadRequest struct {
	GlobPattern string
	Workspace   string
	Env         map[string]string
}

// ResolvedGlob is a variable free glob and the directory it is relative to.
type ResolvedGlob struct {
	Root    string
	Pattern string
}

// MatchResult holds the files a glob matched, relative to Root and slash
// separated. An empty result is not an error, see NoMatches.
type MatchResult struct {
	Root  string
	Files []string
}

func (m *MatchResult) NoMatches() bool {
	return len(m.Files) == 0
}

// RootOf returns the top-level root of dir by dropping its last element
// until nothing is left to drop.
func RootOf(dir string) string {
	root := filepath.Clean(dir)
	for {
		parent := filepath.Dir(root)
		if parent == root {
			return root
		}
		root = parent
	}
}

// Resolve substitutes the build environment into the glob of req. A glob
// starting with the separator is absolute: it is rebased onto the root of the
// workspace and loses exactly one leading separator, so "//foo" keeps one.
// Absolute globs are recognised the UNIX way only, drive letters are not.
func Resolve(req UploadRequest) (*ResolvedGlob, error) {
	pattern := macro.Substitute(req.GlobPattern, req.Env)
	root := req.Workspace
	if strings.HasPrefix(pattern, separator) {
		root = RootOf(req.Workspace)
		pattern = pattern[len(separator):]
	}
	if strings.Contains(pattern, "$") {
		return nil, &UnresolvedVariableError{Pattern: pattern, Names: macro.References(pattern)}
	}
	return &ResolvedGlob{Root: root, Pattern: pattern}, nil
}

// GlobResolver resolves globs and matches them with a Lister.
type GlobResolver struct {
	Lister Lister
}

func NewGlobResolver(lister Lister) *GlobResolver {
	return &GlobResolver{Lister: lister}
}

// Match resolves req and lists the files it matches. Finding nothing is
// reported to listener and returned as a result with NoMatches set. Failing
// to resolve or to list is an *UploadError.
func (r *GlobResolver) Match(ctx context.Context, req UploadRequest, listener TaskListener) (*MatchResult, error) {
	glob, err := Resolve(req)
	if err != nil {
		return nil, NewUploadError(msgIncludeException, err)
	}
	logrus.WithFields(logrus.Fields{
		"root":    glob.Root,
		"pattern": glob.Pattern,
	}).Debug("listing files")

	files, err := r.Lister.List(ctx, glob.Root, glob.Pattern)
	if err != nil {
		return nil, NewUploadError(msgIncludeException, err)
	}
	if len(files) == 0 {
		listener.Error(msgNoArtifacts(glob.Pattern))
		return &MatchResult{Root: glob.Root}, nil
	}
	listener.Info(msgFoundForPattern(len(files), req.GlobPattern))
	return &MatchResult{Root: glob.Root, Files: files}, nil
}
