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

	"github.com/javierprovecho/google-storage-plugin/protocol"
	"github.com/javierprovecho/google-storage-plugin/storage"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Sink ships matched files from Fs to the bucket Opener opens.
type Sink struct {
	Fs     afero.Fs
	Opener storage.Opener
}

func NewSink(fs afero.Fs, opener storage.Opener) *Sink {
	return &Sink{Fs: fs, Opener: opener}
}

// Perform runs one upload step of build. A failed build is skipped unless
// the step is configured for failed jobs. Errors are *UploadError and only
// concern this step.
func Perform(ctx context.Context, s Strategy, build *protocol.Build, listener TaskListener, sink *Sink) error {
	base := s.Base()
	if !build.Passed() && !base.ForFailedJobs {
		listener.Info(msgSkipFailed(build.Result))
		return nil
	}
	uri, err := storage.ParseURI(base.BucketNameWithVars)
	if err != nil {
		return NewUploadError(msgBadBucket, err)
	}
	inclusions, err := s.Inclusions(ctx, build, sink.Fs, listener)
	if err != nil {
		return err
	}
	if inclusions.NoMatches() {
		return nil
	}
	return sink.Ship(ctx, uri, inclusions, base.SharedPublicly, listener)
}

// Ship puts every file of match into the bucket at uri, in order. The first
// failure stops the upload.
func (k *Sink) Ship(ctx context.Context, uri *storage.URI, match *MatchResult, public bool, listener TaskListener) error {
	bucket, err := k.Opener.Open(ctx, uri)
	if err != nil {
		return NewUploadError(msgUploadException, err)
	}
	defer bucket.Close()

	for _, rel := range match.Files {
		if err := ctx.Err(); err != nil {
			return NewUploadError(msgUploadException, err)
		}
		object := uri.ObjectName(rel)
		listener.Info(msgUploading(rel, uri.ObjectURI(object)))
		local := filepath.Join(match.Root, filepath.FromSlash(rel))
		if err := k.put(ctx, bucket, local, object, public); err != nil {
			return NewUploadError(msgUploadException, err)
		}
	}
	listener.Info(msgUploaded(len(match.Files), uri.String()))
	return nil
}

func (k *Sink) put(ctx context.Context, bucket storage.Bucket, local, object string, public bool) error {
	f, err := k.Fs.Open(local)
	if err != nil {
		return err
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"file":   local,
		"object": object,
		"size":   info.Size(),
	}).Debug("uploading file")
	return bucket.Put(ctx, object, f, info.Size(), storage.PutOptions{Public: public})
}
