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
	"bytes"
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/javierprovecho/google-storage-plugin/storage"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

type recordingListener struct {
	infos  []string
	errors []string
}

func (l *recordingListener) Info(msg string) {
	l.infos = append(l.infos, msg)
}

func (l *recordingListener) Error(msg string) {
	l.errors = append(l.errors, msg)
}

type listerFunc func(ctx context.Context, root, pattern string) ([]string, error)

func (f listerFunc) List(ctx context.Context, root, pattern string) ([]string, error) {
	return f(ctx, root, pattern)
}

type put struct {
	object  string
	content string
	opts    storage.PutOptions
}

type fakeBucket struct {
	puts   []put
	closed bool
}

func (b *fakeBucket) Put(ctx context.Context, object string, reader io.Reader, size int64, opts storage.PutOptions) error {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, reader); err != nil {
		return err
	}
	b.puts = append(b.puts, put{object: object, content: buf.String(), opts: opts})
	return nil
}

func (b *fakeBucket) Close() error {
	b.closed = true
	return nil
}

type fakeOpener struct {
	bucket *fakeBucket
	opened []*storage.URI
	err    error
}

func (o *fakeOpener) Open(ctx context.Context, uri *storage.URI) (storage.Bucket, error) {
	o.opened = append(o.opened, uri)
	if o.err != nil {
		return nil, o.err
	}
	return o.bucket, nil
}

func writeFile(t *testing.T, fs afero.Fs, path, content string) {
	require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0644))
}
