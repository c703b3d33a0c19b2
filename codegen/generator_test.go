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

func TestGenerateNoop(t *testing.T) {
	out, err := codegen.Generate(command.Noop(command.Position{}))
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestGenerateUnrecognizedKind(t *testing.T) {
	_, err := codegen.Generate(command.Command{Kind: command.Kind(99)})
	assert.Error(t, err)
}
