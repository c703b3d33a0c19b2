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

package translate

import (
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joeyjoejoejr/nand2tetris/codegen"
	"github.com/joeyjoejoejr/nand2tetris/command"
	"github.com/joeyjoejoejr/nand2tetris/internal/asmio"
	"github.com/pkg/errors"
)

// Unit names one translation unit: the path to a .vm file and the stem
// (extension-stripped base name) used to mangle its static symbols.
type Unit struct {
	Path string
	Stem string
}

// config holds the resolved options for a Translate call. The zero value
// selects the spec-mandated default: bootstrap iff directory mode.
type config struct {
	bootstrap *bool
	output    string
}

// Option configures a Translate call, the db47h/ngaro vm.Option shape applied
// to this package's own settings struct instead of a VM instance.
type Option func(*config)

// WithBootstrap overrides the default bootstrap-iff-directory-mode rule.
// Passing true or false always prepends or withholds the bootstrap
// regardless of whether path names a directory or a single file; the
// library's default behavior with no Option applied remains spec-compliant.
func WithBootstrap(b bool) Option {
	return func(c *config) { c.bootstrap = &b }
}

// WithOutput overrides the output path that Discover would otherwise derive
// from the input path.
func WithOutput(path string) Option {
	return func(c *config) { c.output = path }
}

// Discover resolves path to its ordered list of translation units and the
// output path, per the naming rule of §4.6: a directory yields one unit per
// immediate *.vm child (sorted by filename) and an output at
// ⟨dir⟩/⟨dir_basename⟩.asm; a single file yields a singleton unit and a
// sibling output with its extension replaced by .asm. The second return
// value reports whether this is directory mode, which selects the default
// bootstrap behavior.
func Discover(path string) (units []Unit, outPath string, dirMode bool, err error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, "", false, errors.Wrapf(err, "%s: cannot stat input path", path)
	}

	if !info.IsDir() {
		stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		out := strings.TrimSuffix(path, filepath.Ext(path)) + ".asm"
		return []Unit{{Path: path, Stem: stem}}, out, false, nil
	}

	entries, err := ioutil.ReadDir(path)
	if err != nil {
		return nil, "", false, errors.Wrapf(err, "%s: cannot enumerate directory", path)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".vm" {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	units = make([]Unit, len(names))
	for i, name := range names {
		units[i] = Unit{Path: filepath.Join(path, name), Stem: strings.TrimSuffix(name, ".vm")}
	}
	base := filepath.Base(filepath.Clean(path))
	return units, filepath.Join(path, base+".asm"), true, nil
}

// Emit is the Emitter contract of §4.6: stream bootstrap (when requested)
// followed by every parser's commands, in list order, to w. Noop commands
// contribute no bytes. counter must be shared across every parser in units
// so that comparison and call-site labels stay fresh across the whole
// compilation (the "Global freshness counter" design note).
func Emit(w io.Writer, units []Unit, counter *command.Counter, bootstrap bool) error {
	ew := asmio.NewErrWriter(w)

	if bootstrap {
		ew.WriteString("// bootstrap\n@256\nD=A\n@SP\nM=D\n")
		text, err := codegen.Generate(command.Command{
			Kind: command.KindFunction, Func: command.Call,
			Name: "Sys.init", NArgs: 0, Ordinal: counter.Next(),
		})
		if err != nil {
			return errors.Wrap(err, "bootstrap")
		}
		ew.WriteString(text)
	}

	for _, u := range units {
		f, err := os.Open(u.Path)
		if err != nil {
			return errors.Wrapf(err, "%s: cannot open input", u.Path)
		}
		err = emitUnit(ew, u, f, counter)
		f.Close()
		if err != nil {
			return err
		}
	}

	return ew.Err
}

func emitUnit(ew *asmio.ErrWriter, u Unit, r io.Reader, counter *command.Counter) error {
	p := command.NewParser(u.Path, u.Stem, r, counter)
	for {
		cmd, err := p.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrapf(err, "%s", u.Path)
		}
		text, err := codegen.Generate(cmd)
		if err != nil {
			return errors.Wrapf(err, "%s", cmd.Pos)
		}
		if text == "" {
			continue
		}
		if _, err := ew.WriteString(text); err != nil {
			return err
		}
	}
}

// Translate resolves path, translates every unit it names, and writes the
// combined result to its derived output path. The output is staged in a
// sibling temp file and renamed into place only on success, so a failure
// midway through the compilation never leaves a partial .asm file behind
// (§7's quality-of-implementation note). It returns the path written.
func Translate(path string, opts ...Option) (string, error) {
	units, outPath, dirMode, err := Discover(path)
	if err != nil {
		return "", err
	}

	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	bootstrap := dirMode && len(units) > 0
	if cfg.bootstrap != nil {
		bootstrap = *cfg.bootstrap
	}
	if cfg.output != "" {
		outPath = cfg.output
	}

	tmp, err := ioutil.TempFile(filepath.Dir(outPath), filepath.Base(outPath)+".tmp*")
	if err != nil {
		return "", errors.Wrapf(err, "%s: cannot create output", outPath)
	}
	tmpName := tmp.Name()

	counter := command.NewCounter()
	err = Emit(tmp, units, counter, bootstrap)
	closeErr := tmp.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(tmpName)
		return "", err
	}

	if err := os.Rename(tmpName, outPath); err != nil {
		os.Remove(tmpName)
		return "", errors.Wrapf(err, "%s: cannot finalize output", outPath)
	}
	return outPath, nil
}
