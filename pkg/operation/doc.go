// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

/*
Package operation runs the format pipeline over a batch of files.

	+-----------+      +-----------+      +-----------+
	|   files   | ---> |  Runner   | ---> | pipeline  |
	| (cli args)|      | (errgroup)|      |   .Run    |
	+-----------+      +-----+-----+      +-----------+
	                         |
	          +--------------+--------------+
	          |              |              |
	      print mode     write mode     check mode
	      (stdout)      (fileutil)    (exit status)

🎯 Purpose:
- Read each file, run it through the pipeline concurrently
- Decide per file what the outcome means for the chosen mode
- Report every file through pkg/log and return a summary

⚡ Concurrency:
At most Jobs files are in flight. A failing file never cancels the others;
only a cancelled context stops the batch.

🔍 Example:

	runner := operation.NewRunner(pipeline.NewOS(), afero.NewOsFs(), operation.Options{
		Mode:       operation.ModeWrite,
		Jobs:       4,
		CurrentDir: cwd,
	})
	summary, err := runner.Run(ctx, files)
*/
package operation
