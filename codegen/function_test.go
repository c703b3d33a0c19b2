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

package codegen_test

import (
	"strings"
	"testing"

	"github.com/joeyjoejoejr/nand2tetris/codegen"
	"github.com/joeyjoejoejr/nand2tetris/command"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateFunctionDeclZeroLocalsGuardsTheLoop(t *testing.T) {
	out, err := codegen.Generate(command.Command{
		Kind: command.KindFunction, Func: command.Decl, Name: "f", NLocals: 0,
	})
	require.NoError(t, err)
	assert.Contains(t, out, "(f)")
	assert.Contains(t, out, "@f.decl.skiplocals\nD;JEQ\n")
	assert.Contains(t, out, "(f.decl.skiplocals)")
	// exactly one push template regardless of nLocals: the guard, not
	// unrolling, is what keeps k == 0 from pushing anything at runtime.
	assert.Equal(t, 1, strings.Count(out, "M=0\n"))
}

func TestGenerateFunctionDeclLabelsScopedToName(t *testing.T) {
	a, err := codegen.Generate(command.Command{Kind: command.KindFunction, Func: command.Decl, Name: "Foo.bar", NLocals: 2})
	require.NoError(t, err)
	assert.Contains(t, a, "(Foo.bar)")
	assert.Contains(t, a, "(Foo.bar.decl.locals)")
	assert.Contains(t, a, "(Foo.bar.decl.skiplocals)")
}

func TestGenerateCallOrdinalMakesReturnLabelsUnique(t *testing.T) {
	a, err := codegen.Generate(command.Command{Kind: command.KindFunction, Func: command.Call, Name: "Mult.mult", NArgs: 2, Ordinal: 5})
	require.NoError(t, err)
	b, err := codegen.Generate(command.Command{Kind: command.KindFunction, Func: command.Call, Name: "Mult.mult", NArgs: 2, Ordinal: 6})
	require.NoError(t, err)

	assert.Contains(t, a, "(Mult.mult.ret.5)")
	assert.Contains(t, b, "(Mult.mult.ret.6)")
	assert.NotEqual(t, a, b)
	assert.Contains(t, a, "@Mult.mult\n0;JMP\n")
}

func TestGenerateCallRepositionsArgBelowSavedFrame(t *testing.T) {
	out, err := codegen.Generate(command.Command{Kind: command.KindFunction, Func: command.Call, Name: "f", NArgs: 2, Ordinal: 0})
	require.NoError(t, err)
	// ARG = SP - 5 - nArgs
	assert.Contains(t, out, "@7\nD=D-A\n@ARG\nM=D\n")
}

func TestGenerateCallZeroArgsStillOffsetsByFive(t *testing.T) {
	out, err := codegen.Generate(command.Command{Kind: command.KindFunction, Func: command.Call, Name: "f", NArgs: 0, Ordinal: 0})
	require.NoError(t, err)
	assert.Contains(t, out, "@5\nD=D-A\n@ARG\nM=D\n")
}

func TestGenerateReturnFetchesReturnAddressBeforeOverwritingArg(t *testing.T) {
	out, err := codegen.Generate(command.Command{Kind: command.KindFunction, Func: command.Return})
	require.NoError(t, err)

	fetchIdx := strings.Index(out, "@R14\nM=D\n")
	overwriteIdx := strings.Index(out, "@ARG\nA=M\nM=D\n")
	require.True(t, fetchIdx >= 0 && overwriteIdx >= 0)
	assert.Less(t, fetchIdx, overwriteIdx, "return address must be read out of R13-5 before *ARG is clobbered")

	assert.Contains(t, out, "@R14\nA=M\n0;JMP\n")
	// restores happen in THAT, THIS, ARG, LCL order from endFrame-1..-4
	thatIdx := strings.Index(out, "@THAT\nM=D\n")
	thisIdx := strings.Index(out, "@THIS\nM=D\n")
	argIdx := strings.Index(out, "@ARG\nM=D\n")
	lclIdx := strings.Index(out, "@LCL\nM=D\n")
	assert.True(t, thatIdx < thisIdx && thisIdx < argIdx && argIdx < lclIdx)
}

func TestGenerateUnrecognizedFuncOp(t *testing.T) {
	_, err := codegen.Generate(command.Command{Kind: command.KindFunction, Func: command.FuncOp(99)})
	assert.Error(t, err)
}
