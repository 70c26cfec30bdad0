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

import "fmt"

// ModulePrefix starts every line the plugin writes to a build console.
const ModulePrefix = "[Google Cloud Storage Plugin] "

const (
	msgEmptyGlob        = "Empty glob"
	msgDollarSuggest    = "Check that all variable names are correct."
	msgEmptyBucket      = "Empty bucket name"
	msgIncludeException = "Exception while including files"
	msgUploadException  = "Exception while uploading file"
	msgBadBucket        = "Invalid bucket URI"
)

func msgNoArtifacts(pattern string) string {
	return fmt.Sprintf("No artifacts found for pattern: %v", pattern)
}

func msgFoundForPattern(count int, pattern string) string {
	return fmt.Sprintf("Found %d files to upload from pattern: %v", count, pattern)
}

func msgBadGlobChar(char, suggestion string) string {
	return fmt.Sprintf("Glob contains bad character '%v'. %v", char, suggestion)
}

func msgBadBucketChar(char, suggestion string) string {
	return fmt.Sprintf("Bucket name contains bad character '%v'. %v", char, suggestion)
}

func msgSkipFailed(result string) string {
	return fmt.Sprintf("Skipping upload, build result is %v", result)
}

func msgUploading(file, target string) string {
	return fmt.Sprintf("Uploading %v to %v", file, target)
}

func msgUploaded(count int, target string) string {
	return fmt.Sprintf("Uploaded %d files to %v", count, target)
}
