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

package codegen

import (
	"fmt"

	"github.com/joeyjoejoejr/nand2tetris/command"
	"github.com/pkg/errors"
)

// branching expands label/goto/if-goto. Labels are emitted verbatim; any
// scoping against function names is left to the VM-language writer, per
// spec.md §4.3.
func branching(cmd command.Command) (string, error) {
	switch cmd.Branch {
	case command.Label:
		return fmt.Sprintf("// label %s\n(%s)\n", cmd.Label, cmd.Label), nil
	case command.Goto:
		return fmt.Sprintf("// goto %s\n@%s\n0;JMP\n", cmd.Label, cmd.Label), nil
	case command.IfGoto:
		return fmt.Sprintf(
			"// if-goto %s\n@SP\nAM=M-1\nD=M\n@%s\nD;JNE\n",
			cmd.Label, cmd.Label,
		), nil
	default:
		return "", errors.Errorf("codegen: unrecognized branch operator %v", cmd.Branch)
	}
}
