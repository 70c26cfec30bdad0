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

package agent

import (
	"context"
	"os"

	"github.com/javierprovecho/google-storage-plugin/protocol"
	"github.com/javierprovecho/google-storage-plugin/storage"
	"github.com/javierprovecho/google-storage-plugin/upload"
	"github.com/pkg/errors"
	"github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Initialize sets up process logging and checks the working directory exists.
func Initialize(config *Config) error {
	if _, err := MakeLogger(config.LogDir, config.LogFile, config.OutputDebugLog); err != nil {
		return err
	}
	LogInfo(">>>>>>> google-storage-plugin >>>>>>>")
	LogInfo("working directory: %v", config.WorkDir)
	if _, err := os.Stat(config.WorkDir); err != nil {
		return errors.Wrap(err, "working directory is not accessible")
	}
	return nil
}

// Publisher runs the configured upload step against builds.
type Publisher struct {
	Fs     afero.Fs
	Opener storage.Opener
}

// NewPublisher publishes from the local disk, authenticating to GCS with the
// configured credentials file or the application default credentials.
func NewPublisher(config *Config) *Publisher {
	fs := afero.NewOsFs()
	return &Publisher{
		Fs:     fs,
		Opener: storage.NewFactory(fs, storage.CredentialsOption(config.CredentialsFile)...),
	}
}

// Publish runs one upload step for build. A failure is written to console
// and returned; it concerns this step only.
func (p *Publisher) Publish(ctx context.Context, config *Config, build *protocol.Build, console *BuildConsole) error {
	for _, name := range config.Secrets {
		console.Mask(build.Envs[name])
	}
	s, err := upload.New(config.Strategy, config.Upload)
	if err != nil {
		console.Error(err.Error())
		return err
	}
	runId := uuid.NewV4().String()
	log := logger.WithFields(logrus.Fields{
		"run":      runId,
		"build":    build.BuildId,
		"strategy": config.Strategy,
	})
	log.WithField("details", s.Details()).Info("upload started")

	err = upload.Perform(ctx, s, build, console, upload.NewSink(p.Fs, p.Opener))
	if err != nil {
		console.Error(err.Error())
		log.WithError(err).Error("upload failed")
		return err
	}
	log.Info("upload finished")
	return nil
}
