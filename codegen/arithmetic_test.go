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
	"testing"

	"github.com/joeyjoejoejr/nand2tetris/codegen"
	"github.com/joeyjoejoejr/nand2tetris/command"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAdd(t *testing.T) {
	out, err := codegen.Generate(command.Command{Kind: command.KindArithmetic, Arith: command.Add})
	require.NoError(t, err)
	assert.Equal(t, "// add\n@SP\nAM=M-1\nD=M\nA=A-1\nM=D+M\n", out)
}

func TestGenerateSub(t *testing.T) {
	out, err := codegen.Generate(command.Command{Kind: command.KindArithmetic, Arith: command.Sub})
	require.NoError(t, err)
	assert.Equal(t, "// sub\n@SP\nAM=M-1\nD=M\nA=A-1\nM=M-D\n", out)
}

func TestGenerateNeg(t *testing.T) {
	out, err := codegen.Generate(command.Command{Kind: command.KindArithmetic, Arith: command.Neg})
	require.NoError(t, err)
	assert.Equal(t, "// neg\n@SP\nA=M-1\nM=-M\n", out)
}

func TestGenerateComparisonUsesOrdinalForFreshLabels(t *testing.T) {
	a, err := codegen.Generate(command.Command{Kind: command.KindArithmetic, Arith: command.Eq, Ordinal: 3})
	require.NoError(t, err)
	b, err := codegen.Generate(command.Command{Kind: command.KindArithmetic, Arith: command.Eq, Ordinal: 7})
	require.NoError(t, err)

	assert.Contains(t, a, "(IfEq3)")
	assert.Contains(t, a, "(Else3)")
	assert.Contains(t, b, "(IfEq7)")
	assert.NotEqual(t, a, b)
}

func TestGenerateComparisonJumpMnemonics(t *testing.T) {
	eq, err := codegen.Generate(command.Command{Kind: command.KindArithmetic, Arith: command.Eq, Ordinal: 0})
	require.NoError(t, err)
	lt, err := codegen.Generate(command.Command{Kind: command.KindArithmetic, Arith: command.Lt, Ordinal: 1})
	require.NoError(t, err)
	gt, err := codegen.Generate(command.Command{Kind: command.KindArithmetic, Arith: command.Gt, Ordinal: 2})
	require.NoError(t, err)

	assert.Contains(t, eq, "D;JEQ")
	assert.Contains(t, lt, "D;JLT")
	assert.Contains(t, gt, "D;JGT")

	// left - right, not right - left: D=M-D after AM=M-1 pops the
	// right-hand (last pushed) operand into D and leaves the left operand
	// addressable through M.
	for _, out := range []string{eq, lt, gt} {
		assert.Contains(t, out, "D=M-D")
	}
}

func TestGenerateUnrecognizedArithOp(t *testing.T) {
	_, err := codegen.Generate(command.Command{Kind: command.KindArithmetic, Arith: command.ArithOp(99)})
	assert.Error(t, err)
}
