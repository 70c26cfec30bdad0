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

package main

import (
	"github.com/javierprovecho/google-storage-plugin/agent"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func newRootCmd() *cobra.Command {
	v := agent.NewViper()
	cmd := &cobra.Command{
		Use:           "google-storage-plugin",
		Short:         "Publish build artifacts to Google Cloud Storage",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.PersistentFlags().String("config", "", "Config file (yaml, json or toml)")
	cmd.PersistentFlags().Bool("debug", false, "Write debug messages to the process log")
	cmd.PersistentFlags().String("log-dir", "", "Directory of the process log, stdout when empty")
	bindFlags(v, cmd.PersistentFlags(), map[string]string{
		"debug":   "debug",
		"log-dir": "log_dir",
	})

	cmd.AddCommand(
		newUploadCmd(v),
		newValidateCmd(v),
		newStrategiesCmd(),
	)
	return cmd
}

var uploadKeys = map[string]string{
	"strategy":        "strategy",
	"bucket":          "upload.bucket",
	"glob":            "upload.glob",
	"shared-publicly": "upload.shared_publicly",
	"for-failed-jobs": "upload.for_failed_jobs",
}

// uploadFlags adds the upload step settings shared by upload and validate.
// Both commands define the same keys, so they are bound to viper when the
// command runs rather than here.
func uploadFlags(flags *pflag.FlagSet) {
	flags.String("strategy", "", "Upload strategy, see the strategies command")
	flags.String("bucket", "", "Destination, gs://bucket[/prefix] or file:///dir")
	flags.String("glob", "", "Ant-style glob of the files to upload, may reference $VARIABLES")
	flags.Bool("shared-publicly", false, "Make uploaded objects publicly readable")
	flags.Bool("for-failed-jobs", false, "Upload even when the build failed")
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) {
	for flag, key := range keys {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(err)
		}
	}
}

func loadConfig(cmd *cobra.Command, v *viper.Viper, keys map[string]string) (*agent.Config, error) {
	bindFlags(v, cmd.Flags(), keys)
	configFile, _ := cmd.Flags().GetString("config")
	return agent.LoadConfig(v, configFile)
}
