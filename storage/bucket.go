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
	"mime"
	"path"
)

// PutOptions are applied to each object written by Bucket.Put
type PutOptions struct {
	ContentType string
	// Public makes the object readable by anyone
	Public bool
}

// Bucket is a destination objects are written to.
type Bucket interface {
	Put(ctx context.Context, object string, reader io.Reader, size int64, opts PutOptions) error
	Close() error
}

// Opener opens the bucket a URI points at.
type Opener interface {
	Open(ctx context.Context, uri *URI) (Bucket, error)
}

// ContentType guesses the content type of an object from its name.
func ContentType(object string) string {
	if t := mime.TypeByExtension(path.Ext(object)); t != "" {
		return t
	}
	return "application/octet-stream"
}
