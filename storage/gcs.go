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

	gcs "cloud.google.com/go/storage"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

const publicReadACL = "publicRead"

type objectWriterFunc func(ctx context.Context, object string, opts PutOptions) io.WriteCloser

// GCSBucket writes objects to a Google Cloud Storage bucket.
type GCSBucket struct {
	name      string
	newWriter objectWriterFunc
	close     func() error
}

func NewGCSBucket(ctx context.Context, name string, opts ...option.ClientOption) (*GCSBucket, error) {
	client, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create GCS client")
	}
	handle := client.Bucket(name)
	newWriter := func(ctx context.Context, object string, opts PutOptions) io.WriteCloser {
		w := handle.Object(object).NewWriter(ctx)
		w.ContentType = opts.ContentType
		if opts.Public {
			w.PredefinedACL = publicReadACL
		}
		return w
	}
	return &GCSBucket{name: name, newWriter: newWriter, close: client.Close}, nil
}

func (b *GCSBucket) Name() string {
	return b.name
}

func (b *GCSBucket) Put(ctx context.Context, object string, reader io.Reader, size int64, opts PutOptions) error {
	if opts.ContentType == "" {
		opts.ContentType = ContentType(object)
	}
	w := b.newWriter(ctx, object, opts)
	if _, err := io.Copy(w, reader); err != nil {
		w.Close()
		return errors.Wrapf(err, "failed to write gs://%v/%v", b.name, object)
	}
	// the object only exists once the writer is closed
	if err := w.Close(); err != nil {
		return errors.Wrapf(err, "failed to finalize gs://%v/%v", b.name, object)
	}
	return nil
}

func (b *GCSBucket) Close() error {
	if b.close == nil {
		return nil
	}
	return b.close()
}
