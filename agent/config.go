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
	"os"
	"strings"

	"github.com/javierprovecho/google-storage-plugin/upload"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable the publisher reads, e.g.
// GSP_UPLOAD_BUCKET for upload.bucket.
const EnvPrefix = "GSP"

type Config struct {
	WorkDir         string
	LogDir          string
	LogFile         string
	OutputDebugLog  bool
	CredentialsFile string
	Strategy        string
	Upload          upload.Config

	// Secrets names build variables whose values are masked on the console.
	Secrets []string
}

// NewViper returns a viper reading GSP_ prefixed environment variables on
// top of the defaults.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("log_file", "google-storage-plugin.log")
	v.SetDefault("strategy", upload.ClassicStrategy)
	v.SetDefault("upload.shared_publicly", false)
	v.SetDefault("upload.for_failed_jobs", false)
	return v
}

// LoadConfig reads configFile, when given, into v and builds the Config.
// Environment variables and bound flags take precedence over the file.
func LoadConfig(v *viper.Viper, configFile string) (*Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %v", configFile)
		}
	}

	config := &Config{
		WorkDir:         v.GetString("work_dir"),
		LogDir:          v.GetString("log_dir"),
		LogFile:         v.GetString("log_file"),
		OutputDebugLog:  v.GetBool("debug"),
		CredentialsFile: v.GetString("credentials_file"),
		Strategy:        v.GetString("strategy"),
		Secrets:         v.GetStringSlice("secrets"),
		Upload: upload.Config{
			BucketNameWithVars: v.GetString("upload.bucket"),
			SharedPublicly:     v.GetBool("upload.shared_publicly"),
			ForFailedJobs:      v.GetBool("upload.for_failed_jobs"),
			SourceGlobWithVars: v.GetString("upload.glob"),
		},
	}
	if config.WorkDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		config.WorkDir = wd
	}
	return config, nil
}
