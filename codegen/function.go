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
	"strings"

	"github.com/joeyjoejoejr/nand2tetris/command"
	"github.com/pkg/errors"
)

func function(cmd command.Command) (string, error) {
	switch cmd.Func {
	case command.Decl:
		return decl(cmd.Name, cmd.NLocals), nil
	case command.Call:
		return call(cmd.Name, cmd.NArgs, cmd.Ordinal), nil
	case command.Return:
		return ret(), nil
	default:
		return "", errors.Errorf("codegen: unrecognized function operator %v", cmd.Func)
	}
}

// decl expands "function name nLocals". The zero-push loop is guarded by an
// upfront JEQ so that nLocals == 0 falls straight through to
// name.decl.skiplocals without emitting a single push, per spec.md §4.5.
func decl(name string, nLocals int) string {
	return fmt.Sprintf(
		"// function %s %d\n"+
			"(%s)\n"+
			"@%d\n"+
			"D=A\n"+
			"@%s.decl.skiplocals\n"+
			"D;JEQ\n"+
			"(%s.decl.locals)\n"+
			"@SP\n"+
			"A=M\n"+
			"M=0\n"+
			"@SP\n"+
			"M=M+1\n"+
			"D=D-1\n"+
			"@%s.decl.locals\n"+
			"D;JNE\n"+
			"(%s.decl.skiplocals)\n",
		name, nLocals, name, nLocals, name, name, name, name,
	)
}

// call expands "call name nArgs" at a call site identified by ordinal, the
// globally fresh integer that keeps the generated return label unique
// across the whole compilation (spec.md §3, §4.5).
func call(name string, nArgs, ordinal int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "// call %s %d\n", name, nArgs)
	retLabel := fmt.Sprintf("%s.ret.%d", name, ordinal)

	// push the return address
	fmt.Fprintf(&b, "@%s\nD=A\n@SP\nA=M\nM=D\n@SP\nM=M+1\n", retLabel)
	// push LCL, ARG, THIS, THAT
	for _, seg := range []string{"LCL", "ARG", "THIS", "THAT"} {
		fmt.Fprintf(&b, "@%s\nD=M\n@SP\nA=M\nM=D\n@SP\nM=M+1\n", seg)
	}
	// ARG = SP - 5 - nArgs
	fmt.Fprintf(&b, "@SP\nD=M\n@%d\nD=D-A\n@ARG\nM=D\n", 5+nArgs)
	// LCL = SP
	b.WriteString("@SP\nD=M\n@LCL\nM=D\n")
	// jump to callee, return-address label follows immediately
	fmt.Fprintf(&b, "@%s\n0;JMP\n(%s)\n", name, retLabel)

	return b.String()
}

// ret expands "return". R13 holds the caller's saved frame base (endFrame);
// R14 holds the return address, fetched before the return value overwrites
// ARG[0] — the only correctness-critical ordering in the whole translator,
// since a zero-argument call aliases ARG[0] with the return-address slot.
func ret() string {
	var b strings.Builder
	b.WriteString("// return\n")
	// R13 = LCL (endFrame)
	b.WriteString("@LCL\nD=M\n@R13\nM=D\n")
	// R14 = *(endFrame - 5), fetched before ARG[0] is clobbered below
	b.WriteString("@R13\nD=M\n@5\nA=D-A\nD=M\n@R14\nM=D\n")
	// *ARG = pop()
	b.WriteString("@SP\nAM=M-1\nD=M\n@ARG\nA=M\nM=D\n")
	// SP = ARG + 1
	b.WriteString("@ARG\nD=M\n@SP\nM=D+1\n")
	// restore THAT, THIS, ARG, LCL from endFrame-1..endFrame-4
	for offset, seg := range []string{"THAT", "THIS", "ARG", "LCL"} {
		fmt.Fprintf(&b, "@R13\nD=M\n@%d\nA=D-A\nD=M\n@%s\nM=D\n", offset+1, seg)
	}
	// jump to the return address
	b.WriteString("@R14\nA=M\n0;JMP\n")
	return b.String()
}
