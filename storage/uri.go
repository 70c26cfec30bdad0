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
	"net/url"
	"path"
	"strings"

	"github.com/pkg/errors"
)

const (
	SchemeGS   = "gs"
	SchemeFile = "file"
)

// URI names the destination of an upload: a bucket and an optional object
// prefix. For the file scheme Bucket is the destination directory.
type URI struct {
	Scheme string
	Bucket string
	Prefix string
}

// ParseURI parses gs://bucket/prefix and file:///dir destinations.
func ParseURI(s string) (*URI, error) {
	if strings.TrimSpace(s) == "" {
		return nil, errors.Wrap(ErrInvalidURI, "empty bucket URI")
	}
	u, err := url.Parse(s)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidURI, "%v: %v", s, err)
	}
	switch u.Scheme {
	case SchemeGS:
		if u.Host == "" {
			return nil, errors.Wrapf(ErrInvalidURI, "%v: missing bucket name", s)
		}
		return &URI{Scheme: SchemeGS, Bucket: u.Host, Prefix: strings.Trim(u.Path, "/")}, nil
	case SchemeFile:
		if u.Host != "" || !strings.HasPrefix(u.Path, "/") {
			return nil, errors.Wrapf(ErrInvalidURI, "%v: file URI must be file:///absolute/dir", s)
		}
		return &URI{Scheme: SchemeFile, Bucket: path.Clean(u.Path)}, nil
	case "":
		return nil, errors.Wrapf(ErrInvalidURI, "%v: missing scheme, expected gs://bucket", s)
	default:
		return nil, errors.Wrapf(ErrUnsupportedScheme, "%v", u.Scheme)
	}
}

// ObjectName maps a slash separated path relative to the upload root to the
// name of the object it is stored under.
func (u *URI) ObjectName(rel string) string {
	rel = strings.TrimPrefix(rel, "/")
	if u.Prefix == "" {
		return rel
	}
	return u.Prefix + "/" + rel
}

func (u *URI) String() string {
	switch u.Scheme {
	case SchemeFile:
		return SchemeFile + "://" + u.Bucket
	default:
		if u.Prefix == "" {
			return u.Scheme + "://" + u.Bucket
		}
		return u.Scheme + "://" + u.Bucket + "/" + u.Prefix
	}
}

// ObjectURI is the full address of object in the bucket.
func (u *URI) ObjectURI(object string) string {
	return u.Scheme + "://" + u.Bucket + "/" + object
}
