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
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// DefaultExcludes are never uploaded: editor backups and version control
// metadata, as Ant leaves them out of every file set.
var DefaultExcludes = []string{
	"**/*~",
	"**/#*#",
	"**/.#*",
	"**/%*%",
	"**/._*",
	"**/CVS/**",
	"**/.cvsignore",
	"**/SCCS/**",
	"**/vssver.scc",
	"**/.svn/**",
	"**/.DS_Store",
	"**/.git/**",
	"**/.gitattributes",
	"**/.gitignore",
	"**/.gitmodules",
	"**/.hg/**",
	"**/.hgignore",
	"**/.hgsub",
	"**/.hgsubstate",
	"**/.hgtags",
	"**/.bzr/**",
	"**/.bzrignore",
}

// Lister finds the files below root matching an Ant-style glob.
type Lister interface {
	List(ctx context.Context, root, pattern string) ([]string, error)
}

// FsLister lists regular files of an afero filesystem. The pattern is an
// Ant include list: globs separated by commas or spaces, where a glob ending
// in / stands for everything below that directory. Matches are slash
// separated, relative to root, without duplicates and sorted.
type FsLister struct {
	Fs       afero.Fs
	Excludes []string
}

func NewFsLister(fs afero.Fs) *FsLister {
	return &FsLister{Fs: fs, Excludes: DefaultExcludes}
}

// Includes splits an include list into root relative globs. Separators
// inside {a,b} alternatives do not split.
func Includes(pattern string) ([]string, error) {
	var includes []string
	for _, f := range splitIncludes(pattern) {
		if strings.HasSuffix(f, "/") {
			f += "**"
		}
		include := path.Clean(f)
		if path.IsAbs(include) || include == ".." || strings.HasPrefix(include, "../") {
			return nil, errors.Wrapf(doublestar.ErrBadPattern, "%v is not relative to the upload root", f)
		}
		includes = append(includes, include)
	}
	return includes, nil
}

func splitIncludes(pattern string) []string {
	fields := []string{}
	depth, start := 0, 0
	for i, r := range pattern {
		switch r {
		case '{':
			depth++
		case '}':
			if depth > 0 {
				depth--
			}
		case ',', ' ', '\t', '\n', '\r':
			if depth == 0 {
				if i > start {
					fields = append(fields, pattern[start:i])
				}
				start = i + 1
			}
		}
	}
	if len(pattern) > start {
		fields = append(fields, pattern[start:])
	}
	return fields
}

func (l *FsLister) List(ctx context.Context, root, pattern string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	includes, err := Includes(pattern)
	if err != nil {
		return nil, err
	}
	fsys := afero.NewIOFS(afero.NewBasePathFs(l.Fs, root))
	seen := make(map[string]bool)
	var files []string
	for _, include := range includes {
		matches, err := doublestar.Glob(fsys, include, doublestar.WithFailOnIOErrors(), doublestar.WithFilesOnly())
		if err != nil {
			return nil, errors.Wrapf(err, "failed to list %v in %v", include, root)
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for _, m := range matches {
			m = path.Clean(m)
			if seen[m] || l.excluded(m) {
				continue
			}
			seen[m] = true
			files = append(files, m)
		}
	}
	sort.Strings(files)
	return files, nil
}

func (l *FsLister) excluded(file string) bool {
	for _, exclude := range l.Excludes {
		if ok, _ := doublestar.Match(exclude, file); ok {
			return true
		}
	}
	return false
}
