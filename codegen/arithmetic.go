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

// arithmetic expands add/sub/neg/and/or/not/eq/lt/gt. Binary operators pop
// the right-hand operand into D and leave the left-hand operand addressable
// through M, so D and M compositions below read as "left <op> right" —
// preserving the operand order spec.md requires for sub, lt and gt.
func arithmetic(cmd command.Command) (string, error) {
	switch cmd.Arith {
	case command.Add:
		return "// add\n@SP\nAM=M-1\nD=M\nA=A-1\nM=D+M\n", nil
	case command.Sub:
		return "// sub\n@SP\nAM=M-1\nD=M\nA=A-1\nM=M-D\n", nil
	case command.Neg:
		return "// neg\n@SP\nA=M-1\nM=-M\n", nil
	case command.And:
		return "// and\n@SP\nAM=M-1\nD=M\nA=A-1\nM=D&M\n", nil
	case command.Or:
		return "// or\n@SP\nAM=M-1\nD=M\nA=A-1\nM=D|M\n", nil
	case command.Not:
		return "// not\n@SP\nA=M-1\nM=!M\n", nil
	case command.Eq:
		return comparison("eq", "JEQ", cmd.Ordinal), nil
	case command.Lt:
		return comparison("lt", "JLT", cmd.Ordinal), nil
	case command.Gt:
		return comparison("gt", "JGT", cmd.Ordinal), nil
	default:
		return "", errors.Errorf("codegen: unrecognized arithmetic operator %v", cmd.Arith)
	}
}

// comparison expands eq/lt/gt. D = left - right; jump takes the true branch
// when the jump mnemonic's condition on D holds.
func comparison(name, jump string, ordinal int) string {
	return fmt.Sprintf(
		"// %s\n"+
			"@SP\n"+
			"AM=M-1\n"+
			"D=M\n"+
			"A=A-1\n"+
			"D=M-D\n"+
			"@IfEq%d\n"+
			"D;%s\n"+
			"@SP\n"+
			"A=M-1\n"+
			"M=0\n"+
			"@Else%d\n"+
			"0;JMP\n"+
			"(IfEq%d)\n"+
			"@SP\n"+
			"A=M-1\n"+
			"M=-1\n"+
			"(Else%d)\n",
		name, jump, ordinal, ordinal, ordinal, ordinal,
	)
}
