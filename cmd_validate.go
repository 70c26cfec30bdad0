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
	"fmt"

	"github.com/javierprovecho/google-storage-plugin/upload"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newValidateCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [glob]",
		Short: "Check upload settings before a build runs",
		Long: "Check upload settings before a build runs. With a glob argument only the\n" +
			"glob is checked, otherwise the whole configured upload step.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, v, args)
		},
	}
	uploadFlags(cmd.Flags())
	return cmd
}

func runValidate(cmd *cobra.Command, v *viper.Viper, args []string) error {
	out := cmd.OutOrStdout()
	var failed []upload.ValidationResult
	if len(args) == 1 {
		if r := upload.ValidateGlob(args[0]); !r.IsOK() {
			failed = append(failed, r)
		}
	} else {
		config, err := loadConfig(cmd, v, uploadKeys)
		if err != nil {
			return err
		}
		failed = upload.ValidateConfig(config.Strategy, config.Upload)
	}

	if len(failed) == 0 {
		fmt.Fprintln(out, upload.OK())
		return nil
	}
	for _, r := range failed {
		fmt.Fprintln(out, r)
	}
	return errors.Errorf("%d invalid settings", len(failed))
}
