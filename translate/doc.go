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

// Package translate emits one HACK assembly output from a list of VM
// translation units, per the single-output-file contract: directory inputs
// enumerate every *.vm file inside them (bootstrap prepended, the multi-unit
// case); a single file input is translated alone, with no bootstrap.
//
//	caller                              produces
//	------                              --------
//	Discover(path)                      one unit per path/*.vm, sorted by
//	                                    filename, or a singleton unit for a
//	                                    file, plus the derived output path
//	Emit(w, units, counter, bootstrap)  streams bootstrap (if any) then every
//	                                    unit's commands through
//	                                    codegen.Generate into w
//	Translate(path, opts...)            Discover then Emit into the output file
package translate
