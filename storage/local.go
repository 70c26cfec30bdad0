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

package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

const (
	publicFileMode  os.FileMode = 0644
	privateFileMode os.FileMode = 0600
)

// LocalBucket stores objects as files under a directory. Public objects are
// world readable, the rest are readable by the owner only.
type LocalBucket struct {
	fs  afero.Fs
	dir string
}

func NewLocalBucket(fs afero.Fs, dir string) *LocalBucket {
	return &LocalBucket{fs: fs, dir: dir}
}

func (b *LocalBucket) Put(ctx context.Context, object string, reader io.Reader, size int64, opts PutOptions) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	target := filepath.Join(b.dir, filepath.FromSlash(object))
	if err := b.fs.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return errors.Wrapf(err, "failed to create directory for %v", object)
	}
	mode := privateFileMode
	if opts.Public {
		mode = publicFileMode
	}
	f, err := b.fs.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return errors.Wrapf(err, "failed to create %v", target)
	}
	n, err := io.Copy(f, reader)
	if err != nil {
		f.Close()
		return errors.Wrapf(err, "failed to write %v", target)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "failed to close %v", target)
	}
	if size >= 0 && n != size {
		return errors.Errorf("short write to %v: wrote %d of %d bytes", target, n, size)
	}
	return b.fs.Chmod(target, mode)
}

func (b *LocalBucket) Close() error {
	return nil
}
