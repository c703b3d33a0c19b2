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

// Package codegen lowers a command.Command to a block of HACK assembly
// text. Generate is a pure function of its argument: the only state a
// Command carries that influences the output is its own Ordinal (used to
// build fresh label suffixes for comparisons and calls) and Stem (used to
// mangle static-segment symbols) — there is no generator-side state at all.
//
// Generated symbols:
//
//	form                    used by
//	----                    -------
//	IfEq<ordinal>           eq/lt/gt, the taken-branch label
//	Else<ordinal>           eq/lt/gt, the join-point label
//	<name>.decl.locals      function <name> k, the zero-push loop label
//	<name>.decl.skiplocals  function <name> k, the loop-skip label (k == 0)
//	<name>.ret.<ordinal>    call <name> n, the return-address label
//	<stem>.<index>          static <index> in translation unit <stem>
//
// Every expansion is self-contained: it leaves SP, LCL, ARG, THIS and THAT
// exactly as required by the calling convention and clobbers no VM-visible
// state beyond what the operation specifies. No expansion is optimized —
// each VM command maps to one fixed, legible block of instructions.
package codegen
