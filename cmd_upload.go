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
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/javierprovecho/google-storage-plugin/agent"
	"github.com/javierprovecho/google-storage-plugin/protocol"
	"github.com/javierprovecho/google-storage-plugin/upload"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newUploadCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upload",
		Short: "Upload the files matching the glob of a build to a bucket",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runUpload(cmd, v)
		},
	}
	uploadFlags(cmd.Flags())
	cmd.Flags().String("workspace", "", "Build workspace, the working directory when empty")
	cmd.Flags().String("credentials-file", "", "Service account key file, application default credentials when empty")
	cmd.Flags().String("build-id", "", "Id of the build, available as $BUILD_ID")
	cmd.Flags().String("result", protocol.BuildPassed, "Result of the build: Passed, Failed or Cancelled")
	cmd.Flags().StringArray("env", nil, "Build variable NAME=VALUE, may be repeated")
	cmd.Flags().Bool("no-os-env", false, "Do not pass the process environment to the build")
	cmd.Flags().StringArray("secret", nil, "Build variable whose value is masked in the output, may be repeated")
	return cmd
}

func runUpload(cmd *cobra.Command, v *viper.Viper) error {
	keys := map[string]string{
		"workspace":        "work_dir",
		"credentials-file": "credentials_file",
		"secret":           "secrets",
	}
	for flag, key := range uploadKeys {
		keys[flag] = key
	}
	config, err := loadConfig(cmd, v, keys)
	if err != nil {
		return err
	}
	if err := agent.Initialize(config); err != nil {
		return err
	}

	buildId, _ := cmd.Flags().GetString("build-id")
	result, _ := cmd.Flags().GetString("result")
	pairs, _ := cmd.Flags().GetStringArray("env")
	noOsEnv, _ := cmd.Flags().GetBool("no-os-env")

	build := protocol.NewBuild(buildId, config.WorkDir).SetResult(result)
	if !noOsEnv {
		build.SetEnvs(protocol.ParseEnv(os.Environ()))
	}
	build.SetEnvs(protocol.ParseEnv(pairs))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	console := agent.MakeBuildConsole(cmd.OutOrStdout(), upload.ModulePrefix)
	return agent.NewPublisher(config).Publish(ctx, config, build, console)
}
