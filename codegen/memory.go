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

// segmentBase maps the four base-pointer segments to their HACK register
// symbol. Constant, temp, pointer and static are handled separately: they
// either have no base pointer (temp is RAM[5..12] directly), alias a fixed
// cell (pointer) or symbol (static), or are a literal value (constant).
var segmentBase = map[command.Segment]string{
	command.Local:    "LCL",
	command.Argument: "ARG",
	command.This:     "THIS",
	command.That:     "THAT",
}

func memoryAccess(cmd command.Command) (string, error) {
	original := fmt.Sprintf("// %s %s %d\n", cmd.Direction, cmd.Segment, cmd.Index)

	switch cmd.Segment {
	case command.Constant:
		// Parser rejects pop constant; push is the only valid direction.
		return original + fmt.Sprintf("@%d\nD=A\n@SP\nA=M\nM=D\n@SP\nM=M+1\n", cmd.Index), nil

	case command.Local, command.Argument, command.This, command.That:
		base := segmentBase[cmd.Segment]
		if cmd.Direction == command.Push {
			return original + fmt.Sprintf(
				"@%s\nD=M\n@%d\nA=D+A\nD=M\n@SP\nA=M\nM=D\n@SP\nM=M+1\n",
				base, cmd.Index,
			), nil
		}
		return original + fmt.Sprintf(
			"@%s\nD=M\n@%d\nD=D+A\n@R13\nM=D\n@SP\nAM=M-1\nD=M\n@R13\nA=M\nM=D\n",
			base, cmd.Index,
		), nil

	case command.Temp:
		addr := 5 + cmd.Index
		if cmd.Direction == command.Push {
			return original + fmt.Sprintf("@%d\nD=M\n@SP\nA=M\nM=D\n@SP\nM=M+1\n", addr), nil
		}
		return original + fmt.Sprintf("@SP\nAM=M-1\nD=M\n@%d\nM=D\n", addr), nil

	case command.Pointer:
		// Parser rejects any index other than 0 or 1.
		sym := "THIS"
		if cmd.Index == 1 {
			sym = "THAT"
		}
		if cmd.Direction == command.Push {
			return original + fmt.Sprintf("@%s\nD=M\n@SP\nA=M\nM=D\n@SP\nM=M+1\n", sym), nil
		}
		return original + fmt.Sprintf("@SP\nAM=M-1\nD=M\n@%s\nM=D\n", sym), nil

	case command.Static:
		sym := fmt.Sprintf("%s.%d", cmd.Stem, cmd.Index)
		if cmd.Direction == command.Push {
			return original + fmt.Sprintf("@%s\nD=M\n@SP\nA=M\nM=D\n@SP\nM=M+1\n", sym), nil
		}
		return original + fmt.Sprintf("@SP\nAM=M-1\nD=M\n@%s\nM=D\n", sym), nil

	default:
		return "", errors.Errorf("codegen: unrecognized segment %v", cmd.Segment)
	}
}
