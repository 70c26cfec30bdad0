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

package upload_test

import (
	"context"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/javierprovecho/google-storage-plugin/protocol"
	. "github.com/javierprovecho/google-storage-plugin/upload"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveAbsoluteGlob(t *testing.T) {
	glob, err := Resolve(UploadRequest{GlobPattern: "/tmp/out/*.log", Workspace: "/home/build/ws"})
	require.NoError(t, err)
	assert.Equal(t, "/", glob.Root)
	assert.Equal(t, "tmp/out/*.log", glob.Pattern)
}

func TestResolveRelativeGlob(t *testing.T) {
	glob, err := Resolve(UploadRequest{
		GlobPattern: "**/*.jar",
		Workspace:   "/home/build/ws",
		Env:         map[string]string{"UNUSED": "x"},
	})
	require.NoError(t, err)
	assert.Equal(t, "/home/build/ws", glob.Root)
	assert.Equal(t, "**/*.jar", glob.Pattern)
}

func TestResolveStripsOneSeparator(t *testing.T) {
	workspaces := []string{"/home/build/ws", "/ws", "/", "/a/b/c/d/e"}
	patterns := []string{"/x", "/tmp/*.log", "/**/*.txt", "//foo", "///bar/*"}
	for _, ws := range workspaces {
		for _, p := range patterns {
			glob, err := Resolve(UploadRequest{GlobPattern: p, Workspace: ws})
			require.NoError(t, err)
			assert.Equal(t, p[1:], glob.Pattern, "%v in %v", p, ws)
			assert.Equal(t, "/", glob.Root, "%v in %v", p, ws)
			assert.Equal(t, glob.Root, RootOf(glob.Root))
		}
	}
}

func TestResolveKeepsWorkspaceForRelativeGlobs(t *testing.T) {
	for _, ws := range []string{"/home/build/ws", "/ws", "/a/b/../c"} {
		for _, p := range []string{"*.txt", "target/**/*.jar", "a/b/c", "./x"} {
			glob, err := Resolve(UploadRequest{GlobPattern: p, Workspace: ws})
			require.NoError(t, err)
			assert.Equal(t, ws, glob.Root)
			assert.Equal(t, p, glob.Pattern)
		}
	}
}

func TestResolveDoubledSeparatorKeepsOne(t *testing.T) {
	glob, err := Resolve(UploadRequest{GlobPattern: "//foo", Workspace: "/home/build/ws"})
	require.NoError(t, err)
	assert.Equal(t, "/foo", glob.Pattern)
}

func TestResolveSubstitutesEnvironment(t *testing.T) {
	glob, err := Resolve(UploadRequest{
		GlobPattern: "$OUT/${BUILD_NUMBER}/*.log",
		Workspace:   "/home/build/ws",
		Env:         map[string]string{"OUT": "/var/out", "BUILD_NUMBER": "42"},
	})
	require.NoError(t, err)
	assert.Equal(t, "/", glob.Root)
	assert.Equal(t, "var/out/42/*.log", glob.Pattern)
}

func TestResolveUnresolvedVariable(t *testing.T) {
	_, err := Resolve(UploadRequest{GlobPattern: "build-$UNRESOLVED.txt", Workspace: "/ws"})
	require.Error(t, err)
	unresolved, ok := err.(*UnresolvedVariableError)
	require.True(t, ok, "%T", err)
	assert.Equal(t, []string{"UNRESOLVED"}, unresolved.Names)
	assert.Contains(t, err.Error(), "UNRESOLVED")

	_, err = Resolve(UploadRequest{GlobPattern: "cost$", Workspace: "/ws"})
	assert.IsType(t, &UnresolvedVariableError{}, err)
}

func TestRootOf(t *testing.T) {
	assert.Equal(t, "/", RootOf("/home/build/ws"))
	assert.Equal(t, "/", RootOf("/home/build/ws/"))
	assert.Equal(t, "/", RootOf("/"))
	assert.Equal(t, RootOf("/home"), RootOf(RootOf("/home")))
}

func TestMatchNoMatches(t *testing.T) {
	listener := &recordingListener{}
	resolver := NewGlobResolver(listerFunc(func(ctx context.Context, root, pattern string) ([]string, error) {
		return nil, nil
	}))

	result, err := resolver.Match(context.Background(), UploadRequest{GlobPattern: "missing/*.zip", Workspace: "/ws"}, listener)
	require.NoError(t, err)
	assert.True(t, result.NoMatches())
	assert.Equal(t, "/ws", result.Root)
	assert.Equal(t, []string{"No artifacts found for pattern: missing/*.zip"}, listener.errors)
	assert.Empty(t, listener.infos)
}

func TestMatchReportsCountWithRawGlob(t *testing.T) {
	listener := &recordingListener{}
	var gotRoot, gotPattern string
	resolver := NewGlobResolver(listerFunc(func(ctx context.Context, root, pattern string) ([]string, error) {
		gotRoot, gotPattern = root, pattern
		return []string{"out/7/a.log", "out/7/b.log"}, nil
	}))

	req := UploadRequest{GlobPattern: "out/$BUILD_NUMBER/*.log", Workspace: "/ws", Env: map[string]string{"BUILD_NUMBER": "7"}}
	result, err := resolver.Match(context.Background(), req, listener)
	require.NoError(t, err)
	assert.False(t, result.NoMatches())
	assert.Equal(t, []string{"out/7/a.log", "out/7/b.log"}, result.Files)
	assert.Equal(t, "/ws", gotRoot)
	assert.Equal(t, "out/7/*.log", gotPattern)
	assert.Equal(t, []string{"Found 2 files to upload from pattern: out/$BUILD_NUMBER/*.log"}, listener.infos)
}

func TestMatchWrapsListerFailure(t *testing.T) {
	ioErr := errors.New("input/output error")
	resolver := NewGlobResolver(listerFunc(func(ctx context.Context, root, pattern string) ([]string, error) {
		return nil, ioErr
	}))

	_, err := resolver.Match(context.Background(), UploadRequest{GlobPattern: "*.txt", Workspace: "/ws"}, &recordingListener{})
	require.Error(t, err)
	assert.IsType(t, &UploadError{}, err)
	assert.Equal(t, ioErr, errors.Cause(err))
	assert.Equal(t, "Exception while including files: input/output error", err.Error())
}

func TestMatchUnresolvedVariableIsUploadError(t *testing.T) {
	called := false
	resolver := NewGlobResolver(listerFunc(func(ctx context.Context, root, pattern string) ([]string, error) {
		called = true
		return nil, nil
	}))

	_, err := resolver.Match(context.Background(), UploadRequest{GlobPattern: "$NOPE/*.txt", Workspace: "/ws"}, &recordingListener{})
	require.Error(t, err)
	assert.IsType(t, &UploadError{}, err)
	assert.IsType(t, &UnresolvedVariableError{}, errors.Cause(err))
	assert.False(t, called)
}

func TestFsListerRelativeGlob(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/home/build/ws/target/app.jar", "jar")
	writeFile(t, fs, "/home/build/ws/lib/nested/dep.jar", "jar")
	writeFile(t, fs, "/home/build/ws/README.md", "md")
	require.NoError(t, fs.MkdirAll("/home/build/ws/empty.jar", 0755))

	files, err := NewFsLister(fs).List(context.Background(), "/home/build/ws", "**/*.jar")
	require.NoError(t, err)
	assert.Equal(t, []string{"lib/nested/dep.jar", "target/app.jar"}, files)
}

func TestFsListerAbsoluteGlob(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/tmp/out/b.log", "b")
	writeFile(t, fs, "/tmp/out/a.log", "a")
	writeFile(t, fs, "/tmp/out/c.txt", "c")
	listener := &recordingListener{}

	result, err := NewGlobResolver(NewFsLister(fs)).Match(context.Background(),
		UploadRequest{GlobPattern: "/tmp/out/*.log", Workspace: "/home/build/ws"}, listener)
	require.NoError(t, err)
	assert.Equal(t, "/", result.Root)
	assert.Equal(t, []string{"tmp/out/a.log", "tmp/out/b.log"}, result.Files)
}

func TestFsListerBadPattern(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/ws/a.txt", "a")

	_, err := NewGlobResolver(NewFsLister(fs)).Match(context.Background(),
		UploadRequest{GlobPattern: "[", Workspace: "/ws"}, &recordingListener{})
	require.Error(t, err)
	assert.IsType(t, &UploadError{}, err)
	assert.True(t, errors.Is(err, doublestar.ErrBadPattern))
}

func TestFsListerCanceled(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/ws/a.txt", "a")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGlobResolver(NewFsLister(fs)).Match(ctx, UploadRequest{GlobPattern: "*.txt", Workspace: "/ws"}, &recordingListener{})
	require.Error(t, err)
	assert.IsType(t, &UploadError{}, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestIncludes(t *testing.T) {
	var tests = []struct {
		pattern  string
		includes []string
	}{
		{"**/*.jar", []string{"**/*.jar"}},
		{"**/*.jar,**/*.war", []string{"**/*.jar", "**/*.war"}},
		{"*.jar, *.war  docs/*.md", []string{"*.jar", "*.war", "docs/*.md"}},
		{"dir/", []string{"dir/**"}},
		{"**/*.{jar,war},docs/", []string{"**/*.{jar,war}", "docs/**"}},
		{"./a.jar", []string{"a.jar"}},
		{"./", []string{"**"}},
		{"a//b/./c.txt", []string{"a/b/c.txt"}},
		{" , ", nil},
	}
	for _, test := range tests {
		includes, err := Includes(test.pattern)
		require.NoError(t, err, test.pattern)
		assert.Equal(t, test.includes, includes, test.pattern)
	}
}

func TestIncludesOutsideRoot(t *testing.T) {
	for _, pattern := range []string{"/foo", "*.jar,/etc/*", "../x", "a/../../x", ".."} {
		_, err := Includes(pattern)
		require.Error(t, err, pattern)
		assert.True(t, errors.Is(err, doublestar.ErrBadPattern), pattern)
	}
}

func TestFsListerIncludeList(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/ws/a.jar", "a")
	writeFile(t, fs, "/ws/b.war", "b")
	writeFile(t, fs, "/ws/dir/c.txt", "c")
	writeFile(t, fs, "/ws/dir/sub/d.txt", "d")

	var tests = []struct {
		pattern string
		files   []string
	}{
		{"*.jar,*.war", []string{"a.jar", "b.war"}},
		{"*.war *.jar", []string{"a.jar", "b.war"}},
		{"*.{jar,war}", []string{"a.jar", "b.war"}},
		{"dir/", []string{"dir/c.txt", "dir/sub/d.txt"}},
		{"./a.jar", []string{"a.jar"}},
		{"./*.jar", []string{"a.jar"}},
		{"*.jar,./a.jar,**/*.jar", []string{"a.jar"}},
		{"dir/*.txt,nothing/**", []string{"dir/c.txt"}},
	}
	for _, test := range tests {
		files, err := NewFsLister(fs).List(context.Background(), "/ws", test.pattern)
		require.NoError(t, err, test.pattern)
		assert.Equal(t, test.files, files, test.pattern)
	}
}

func TestFsListerDefaultExcludes(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/ws/src/main.go", "package main")
	writeFile(t, fs, "/ws/src/main.go~", "backup")
	writeFile(t, fs, "/ws/.git/config", "git")
	writeFile(t, fs, "/ws/.gitignore", "*.o")
	writeFile(t, fs, "/ws/src/.svn/entries", "svn")
	writeFile(t, fs, "/ws/src/CVS/Root", "cvs")
	writeFile(t, fs, "/ws/.DS_Store", "mac")

	lister := NewFsLister(fs)
	files, err := lister.List(context.Background(), "/ws", "**")
	require.NoError(t, err)
	assert.Equal(t, []string{"src/main.go"}, files)

	lister.Excludes = nil
	files, err = lister.List(context.Background(), "/ws", "**")
	require.NoError(t, err)
	assert.Len(t, files, 7)
}

func TestMatchWithListerOverride(t *testing.T) {
	var listed string
	s := NewClassicUpload("gs://b", false, false, "out/$BUILD_ID/*").SetLister(listerFunc(
		func(ctx context.Context, root, pattern string) ([]string, error) {
			listed = root + ":" + pattern
			return []string{"out/3/a"}, nil
		}))

	result, err := s.Inclusions(context.Background(), protocol.NewBuild("3", "/ws"), afero.NewMemMapFs(), &recordingListener{})
	require.NoError(t, err)
	assert.Equal(t, "/ws:out/3/*", listed)
	assert.Equal(t, []string{"out/3/a"}, result.Files)
}
