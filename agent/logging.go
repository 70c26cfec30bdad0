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
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var logger = logrus.StandardLogger()

func LogDebug(format string, v ...interface{}) {
	logger.Debugf(format, v...)
}

func LogInfo(format string, v ...interface{}) {
	logger.Infof(format, v...)
}

// MakeLogger sends the process log to file in logDir, or to stdout when no
// directory is set. Debug messages are only written when debug is on.
func MakeLogger(logDir, file string, debug bool) (*logrus.Logger, error) {
	var output io.Writer = os.Stdout
	if logDir != "" {
		fpath := filepath.Join(logDir, file)
		f, err := os.OpenFile(fpath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open log file %v", fpath)
		}
		output = f
	}

	l := logrus.StandardLogger()
	l.SetOutput(output)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: logDir != ""})
	if debug {
		l.SetLevel(logrus.DebugLevel)
	} else {
		l.SetLevel(logrus.InfoLevel)
	}
	logger = l
	return l, nil
}
