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

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"google.golang.org/api/option"
)

// Factory opens buckets by scheme: gs:// through the GCS client, file://
// on Fs.
type Factory struct {
	Fs            afero.Fs
	ClientOptions []option.ClientOption
}

func NewFactory(fs afero.Fs, opts ...option.ClientOption) *Factory {
	return &Factory{Fs: fs, ClientOptions: opts}
}

// CredentialsOption returns the client option for a service account key
// file, or nothing when the file is not set.
func CredentialsOption(credentialsFile string) []option.ClientOption {
	if credentialsFile == "" {
		return nil
	}
	return []option.ClientOption{option.WithCredentialsFile(credentialsFile)}
}

func (f *Factory) Open(ctx context.Context, uri *URI) (Bucket, error) {
	switch uri.Scheme {
	case SchemeGS:
		return NewGCSBucket(ctx, uri.Bucket, f.ClientOptions...)
	case SchemeFile:
		fs := f.Fs
		if fs == nil {
			fs = afero.NewOsFs()
		}
		return NewLocalBucket(fs, uri.Bucket), nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedScheme, "%v", uri.Scheme)
	}
}
