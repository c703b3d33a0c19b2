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

// Command vmtranslate translates Nand2Tetris VM intermediate code into HACK
// assembly. Usage:
//
//	vmtranslate [-bootstrap auto|true|false] path
//
// path names either a single .vm file or a directory of them; see
// translate.Discover for the output-naming and bootstrap rules.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joeyjoejoejr/nand2tetris/translate"
	"github.com/pkg/errors"
)

func main() {
	var err error
	defer func() { atExit(err) }()

	bootstrap := flag.String("bootstrap", "auto", "prepend the SP/Sys.init bootstrap: `auto`, `true`, or `false`")
	output := flag.String("o", "", "output `path` (defaults to the derived sibling or ⟨dir⟩/⟨dir_basename⟩.asm)")
	flag.Parse()

	if flag.NArg() != 1 {
		err = errors.Errorf("usage: vmtranslate [-bootstrap auto|true|false] path")
		return
	}

	var opts []translate.Option
	switch *bootstrap {
	case "auto":
	case "true":
		opts = append(opts, translate.WithBootstrap(true))
	case "false":
		opts = append(opts, translate.WithBootstrap(false))
	default:
		err = errors.Errorf("-bootstrap: %q is not one of auto, true, false", *bootstrap)
		return
	}
	if *output != "" {
		opts = append(opts, translate.WithOutput(*output))
	}

	var out string
	out, err = translate.Translate(flag.Arg(0), opts...)
	if err == nil {
		fmt.Fprintln(os.Stderr, out)
	}
}

func atExit(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "%+v\n", err)
	os.Exit(1)
}
