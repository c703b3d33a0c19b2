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
	"github.com/joeyjoejoejr/nand2tetris/command"
	"github.com/pkg/errors"
)

// Generate expands cmd into a block of HACK assembly text. It returns an
// empty string, nil for a Noop command.
func Generate(cmd command.Command) (string, error) {
	switch cmd.Kind {
	case command.KindNoop:
		return "", nil
	case command.KindArithmetic:
		return arithmetic(cmd)
	case command.KindMemoryAccess:
		return memoryAccess(cmd)
	case command.KindBranching:
		return branching(cmd)
	case command.KindFunction:
		return function(cmd)
	default:
		return "", errors.Errorf("codegen: unrecognized command kind %v", cmd.Kind)
	}
}
